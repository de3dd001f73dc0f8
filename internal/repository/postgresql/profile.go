package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/workforce/internal/domain/credential"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/record"
	"github.com/cmlabs-hris/workforce/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) record.ProfileStore {
	return &profileRepositoryImpl{db: db}
}

// GetByID implements identity.ProfileRepository.
func (r *profileRepositoryImpl) GetByID(ctx context.Context, id string) (identity.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, role, email FROM users WHERE id = $1`

	var p identity.Profile
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Role, &p.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return identity.Profile{}, identity.ErrProfileNotFound
		}
		return identity.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// GetByIDs implements identity.ProfileRepository. Unknown ids are skipped.
func (r *profileRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]identity.Profile, error) {
	if len(ids) == 0 {
		return []identity.Profile{}, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, role, email FROM users WHERE id::text = ANY($1) ORDER BY name`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]identity.Profile, 0, len(ids))
	for rows.Next() {
		var p identity.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Role, &p.Email); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return profiles, nil
}

// Create implements identity.ProfileRepository.
func (r *profileRepositoryImpl) Create(ctx context.Context, profile identity.Profile) (identity.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, name, role, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, role, email
	`

	var created identity.Profile
	err := q.QueryRow(ctx, query, profile.ID, profile.Name, profile.Role, profile.Email).
		Scan(&created.ID, &created.Name, &created.Role, &created.Email)
	if err != nil {
		switch {
		case hasCode(err, codeUniqueViolation):
			return identity.Profile{}, record.ErrProfileExists
		case hasCode(err, codeForeignKeyViolation):
			return identity.Profile{}, credential.ErrAccountNotFound
		}
		return identity.Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return created, nil
}

// UpdateRoleByEmail implements record.ProfileStore.
func (r *profileRepositoryImpl) UpdateRoleByEmail(ctx context.Context, email string, role identity.Role) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET role = $1 WHERE lower(email) = lower($2)`, string(role), email)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return identity.ErrProfileNotFound
	}
	return nil
}
