package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func TestWithTransaction_Commit(t *testing.T) {
	db, mock := newMockDB(t)
	accounts := NewAccountRepository(db)
	at := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts SET last_sign_in_at").
		WithArgs(at, "u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := WithTransaction(context.Background(), db, func(ctx context.Context) error {
		return accounts.UpdateLastSignIn(ctx, "u1", at)
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := WithTransaction(context.Background(), db, func(ctx context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuerier_OutsideTransaction(t *testing.T) {
	db, _ := newMockDB(t)
	assert.Equal(t, db.Pool, GetQuerier(context.Background(), db))
}
