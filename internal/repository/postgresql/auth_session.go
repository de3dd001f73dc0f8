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

type authSessionRepositoryImpl struct {
	db *database.DB
}

func NewAuthSessionRepository(db *database.DB) credential.AuthSessionRepository {
	return &authSessionRepositoryImpl{db: db}
}

// Create implements credential.AuthSessionRepository.
func (r *authSessionRepositoryImpl) Create(ctx context.Context, session credential.AuthSession) (credential.AuthSession, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return credential.AuthSession{}, fmt.Errorf("generate session id: %w", err)
	}

	query := `
		INSERT INTO auth_sessions (id, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, expires_at, revoked_at, created_at
	`

	var created credential.AuthSession
	err = q.QueryRow(ctx, query, id.String(), session.UserID, session.ExpiresAt).Scan(
		&created.ID,
		&created.UserID,
		&created.ExpiresAt,
		&created.RevokedAt,
		&created.CreatedAt,
	)
	if err != nil {
		return credential.AuthSession{}, fmt.Errorf("create auth session: %w", err)
	}
	return created, nil
}

// GetByID implements credential.AuthSessionRepository.
func (r *authSessionRepositoryImpl) GetByID(ctx context.Context, id string) (credential.AuthSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, user_id, expires_at, revoked_at, created_at FROM auth_sessions WHERE id = $1`

	var s credential.AuthSession
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.UserID, &s.ExpiresAt, &s.RevokedAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return credential.AuthSession{}, credential.ErrSessionNotFound
		}
		return credential.AuthSession{}, fmt.Errorf("get auth session: %w", err)
	}
	return s, nil
}

// Revoke implements credential.AuthSessionRepository.
func (r *authSessionRepositoryImpl) Revoke(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE auth_sessions SET revoked_at = $1 WHERE id = $2 AND revoked_at IS NULL`, at, id)
	if err != nil {
		return fmt.Errorf("revoke auth session: %w", err)
	}
	return nil
}
