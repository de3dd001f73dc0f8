package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var attendanceCols = []string{"id", "user_id", "date", "check_in", "check_out"}

func TestAttendanceRepository_GetByUserAndDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery("FROM attendance WHERE user_id").
		WithArgs("u1", "2024-05-01").
		WillReturnRows(pgxmock.NewRows(attendanceCols).AddRow("a1", "u1", "2024-05-01", strPtr("08:00:00"), nil))

	rec, err := repo.GetByUserAndDate(context.Background(), "u1", "2024-05-01")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "08:00:00", *rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_GetByUserAndDate_None(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery("FROM attendance WHERE user_id").
		WithArgs("u1", "2024-05-01").
		WillReturnError(pgx.ErrNoRows)

	rec, err := repo.GetByUserAndDate(context.Background(), "u1", "2024-05-01")
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)
	checkIn := "08:00:00"

	mock.ExpectQuery("INSERT INTO attendance").
		WithArgs(pgxmock.AnyArg(), "u1", "2024-05-01", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(attendanceCols).AddRow("a1", "u1", "2024-05-01", &checkIn, nil))

	created, err := repo.Create(context.Background(), attendance.Attendance{UserID: "u1", Date: "2024-05-01", CheckIn: &checkIn})
	require.NoError(t, err)
	assert.Equal(t, "a1", created.ID)
	assert.Equal(t, &checkIn, created.CheckIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery("INSERT INTO attendance").
		WithArgs(pgxmock.AnyArg(), "u1", "2024-05-01", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(pgError("23505"))

	_, err := repo.Create(context.Background(), attendance.Attendance{UserID: "u1", Date: "2024-05-01", CheckIn: strPtr("08:00:00")})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_UpdateCheckOut(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery("UPDATE attendance").
		WithArgs("17:00:00", "a1").
		WillReturnRows(pgxmock.NewRows(attendanceCols).AddRow("a1", "u1", "2024-05-01", strPtr("08:00:00"), strPtr("17:00:00")))
	mock.ExpectQuery("UPDATE attendance").
		WithArgs("17:00:00", "missing").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("FROM attendance WHERE id").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	updated, err := repo.UpdateCheckOut(context.Background(), "a1", "17:00:00")
	require.NoError(t, err)
	assert.Equal(t, "17:00:00", *updated.CheckOut)

	_, err = repo.UpdateCheckOut(context.Background(), "missing", "17:00:00")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_UpdateCheckOut_AlreadyCheckedOut(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery(`UPDATE attendance\s+SET check_out = \$1::time\s+WHERE id = \$2 AND check_out IS NULL`).
		WithArgs("18:00:00", "a1").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("FROM attendance WHERE id").
		WithArgs("a1").
		WillReturnRows(pgxmock.NewRows(attendanceCols).AddRow("a1", "u1", "2024-05-01", strPtr("08:00:00"), strPtr("17:00:00")))

	_, err := repo.UpdateCheckOut(context.Background(), "a1", "18:00:00")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_ListByDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery("FROM attendance WHERE date").
		WithArgs("2024-05-01").
		WillReturnRows(pgxmock.NewRows(attendanceCols).
			AddRow("a1", "u1", "2024-05-01", strPtr("08:00:00"), nil).
			AddRow("a2", "u2", "2024-05-01", strPtr("08:05:00"), strPtr("17:00:00")))

	records, err := repo.ListByDate(context.Background(), "2024-05-01")
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "u2", records[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_ListByDate_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery("FROM attendance WHERE date").
		WithArgs("2024-05-01").
		WillReturnError(errors.New("timeout"))

	_, err := repo.ListByDate(context.Background(), "2024-05-01")
	assert.ErrorContains(t, err, "list attendance")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery("FROM attendance WHERE id").
		WithArgs("a1").
		WillReturnRows(pgxmock.NewRows(attendanceCols).AddRow("a1", "u1", "2024-05-01", strPtr("08:00:00"), nil))
	mock.ExpectQuery("FROM attendance WHERE id").
		WithArgs("nope").
		WillReturnError(pgx.ErrNoRows)

	rec, err := repo.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "u1", rec.UserID)

	_, err = repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
