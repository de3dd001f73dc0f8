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

var accountCols = []string{"id", "email", "password_hash", "last_sign_in_at", "created_at", "updated_at"}

func TestAccountRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(pgxmock.AnyArg(), "a@b.com", "hash").
		WillReturnRows(pgxmock.NewRows(accountCols).AddRow("u1", "a@b.com", "hash", nil, now, now))
	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(pgxmock.AnyArg(), "a@b.com", "hash").
		WillReturnError(pgError("23505"))

	created, err := repo.Create(context.Background(), credential.Account{Email: "a@b.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.ID)
	assert.Nil(t, created.LastSignInAt)

	_, err = repo.Create(context.Background(), credential.Account{Email: "a@b.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, credential.ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	now := time.Now()

	mock.ExpectQuery("FROM accounts WHERE email").
		WithArgs("a@b.com").
		WillReturnRows(pgxmock.NewRows(accountCols).AddRow("u1", "a@b.com", "hash", &now, now, now))
	mock.ExpectQuery("FROM accounts WHERE email").
		WithArgs("x@b.com").
		WillReturnError(pgx.ErrNoRows)

	account, err := repo.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, account.LastSignInAt)

	_, err = repo.GetByEmail(context.Background(), "x@b.com")
	assert.ErrorIs(t, err, credential.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_UpdateLastSignIn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	at := time.Now()

	mock.ExpectExec("UPDATE accounts SET last_sign_in_at").
		WithArgs(at, "u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateLastSignIn(context.Background(), "u1", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
