package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/record"
)

type ProfileRepository struct {
	store *Store
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (identity.Profile, error) {
	s := r.store
	if err := s.begin(ctx, OpProfileGet); err != nil {
		return identity.Profile{}, err
	}
	defer s.mu.Unlock()

	p, ok := s.profiles[id]
	if !ok {
		return identity.Profile{}, identity.ErrProfileNotFound
	}
	return p, nil
}

func (r *ProfileRepository) GetByIDs(ctx context.Context, ids []string) ([]identity.Profile, error) {
	s := r.store
	if err := s.begin(ctx, OpProfileList); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	profiles := []identity.Profile{}
	for _, id := range ids {
		if p, ok := s.profiles[id]; ok {
			profiles = append(profiles, p)
		}
	}
	return profiles, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile identity.Profile) (identity.Profile, error) {
	s := r.store
	if err := s.begin(ctx, OpProfileCreate); err != nil {
		return identity.Profile{}, err
	}
	defer s.mu.Unlock()

	if _, exists := s.profiles[profile.ID]; exists {
		return identity.Profile{}, record.ErrProfileExists
	}
	s.profiles[profile.ID] = profile
	return profile, nil
}

func (r *ProfileRepository) UpdateRoleByEmail(ctx context.Context, email string, role identity.Role) error {
	s := r.store
	if err := s.begin(ctx, OpProfilePromote); err != nil {
		return err
	}
	defer s.mu.Unlock()

	for id, p := range s.profiles {
		if strings.EqualFold(p.Email, email) {
			p.Role = string(role)
			s.profiles[id] = p
			return nil
		}
	}
	return identity.ErrProfileNotFound
}
