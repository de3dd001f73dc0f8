package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce/internal/domain/credential"
	"github.com/cmlabs-hris/workforce/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, email, password_hash, last_sign_in_at, created_at, updated_at`

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) credential.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

func scanAccount(row pgx.Row) (credential.Account, error) {
	var a credential.Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.LastSignInAt, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// Create implements credential.AccountRepository.
func (r *accountRepositoryImpl) Create(ctx context.Context, account credential.Account) (credential.Account, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return credential.Account{}, fmt.Errorf("generate account id: %w", err)
	}

	query := `
		INSERT INTO accounts (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + accountColumns

	created, err := scanAccount(q.QueryRow(ctx, query, id.String(), account.Email, account.PasswordHash))
	if err != nil {
		if hasCode(err, codeUniqueViolation) {
			return credential.Account{}, credential.ErrEmailExists
		}
		return credential.Account{}, fmt.Errorf("create account: %w", err)
	}
	return created, nil
}

// GetByEmail implements credential.AccountRepository.
func (r *accountRepositoryImpl) GetByEmail(ctx context.Context, email string) (credential.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	a, err := scanAccount(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return credential.Account{}, credential.ErrAccountNotFound
		}
		return credential.Account{}, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// GetByID implements credential.AccountRepository.
func (r *accountRepositoryImpl) GetByID(ctx context.Context, id string) (credential.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	a, err := scanAccount(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return credential.Account{}, credential.ErrAccountNotFound
		}
		return credential.Account{}, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// UpdateLastSignIn implements credential.AccountRepository.
func (r *accountRepositoryImpl) UpdateLastSignIn(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE accounts SET last_sign_in_at = $1, updated_at = NOW() WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("update last sign in: %w", err)
	}
	return nil
}
