package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var leaveCols = []string{"id", "user_id", "start_date", "end_date", "reason", "status", "created_at"}

func TestLeaveRequestRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeaveRequestRepository(db)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO leave_requests").
		WithArgs(pgxmock.AnyArg(), "u1", "2024-05-02", "2024-05-03", "family", "pending").
		WillReturnRows(pgxmock.NewRows(leaveCols).AddRow("l1", "u1", "2024-05-02", "2024-05-03", "family", "pending", now))

	created, err := repo.Create(context.Background(), leave.LeaveRequest{
		UserID:    "u1",
		StartDate: "2024-05-02",
		EndDate:   "2024-05-03",
		Reason:    "family",
		Status:    leave.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, "l1", created.ID)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveRequestRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeaveRequestRepository(db)
	now := time.Now()

	mock.ExpectQuery("FROM leave_requests WHERE user_id").
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(leaveCols).
			AddRow("l2", "u1", "2024-06-01", "2024-06-02", "trip", "approved", now).
			AddRow("l1", "u1", "2024-05-02", "2024-05-03", "family", "cancelled", now))

	requests, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, leave.StatusApproved, requests[0].Status)
	assert.Equal(t, leave.Status("cancelled"), requests[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveRequestRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeaveRequestRepository(db)

	mock.ExpectQuery("FROM leave_requests ORDER BY created_at DESC").
		WillReturnRows(pgxmock.NewRows(leaveCols))

	requests, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, requests)
	assert.Empty(t, requests)
	assert.NoError(t, mock.ExpectationsWereMet())
}
