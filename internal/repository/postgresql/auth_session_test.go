package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce/internal/domain/credential"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionCols = []string{"id", "user_id", "expires_at", "revoked_at", "created_at"}

func TestAuthSessionRepository_CreateAndGet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthSessionRepository(db)
	now := time.Now()
	expires := now.Add(24 * time.Hour)

	mock.ExpectQuery("INSERT INTO auth_sessions").
		WithArgs(pgxmock.AnyArg(), "u1", expires).
		WillReturnRows(pgxmock.NewRows(sessionCols).AddRow("s1", "u1", expires, nil, now))
	mock.ExpectQuery("FROM auth_sessions WHERE id").
		WithArgs("s1").
		WillReturnRows(pgxmock.NewRows(sessionCols).AddRow("s1", "u1", expires, nil, now))
	mock.ExpectQuery("FROM auth_sessions WHERE id").
		WithArgs("s2").
		WillReturnError(pgx.ErrNoRows)

	created, err := repo.Create(context.Background(), credential.AuthSession{UserID: "u1", ExpiresAt: expires})
	require.NoError(t, err)
	assert.Equal(t, "s1", created.ID)

	got, err := repo.GetByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, got.Active(now))

	_, err = repo.GetByID(context.Background(), "s2")
	assert.ErrorIs(t, err, credential.ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthSessionRepository_Revoke(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthSessionRepository(db)
	at := time.Now()

	mock.ExpectExec("UPDATE auth_sessions SET revoked_at").
		WithArgs(at, "s1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Revoke(context.Background(), "s1", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
