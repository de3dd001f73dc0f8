package identity

import "context"

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (Profile, error)
	GetByIDs(ctx context.Context, ids []string) ([]Profile, error)
	Create(ctx context.Context, profile Profile) (Profile, error)
}
