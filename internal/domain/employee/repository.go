package employee

import "context"

// Repository is the read-only roster access the engine needs.
type Repository interface {
	GetActive(ctx context.Context) ([]Profile, error)
	GetByID(ctx context.Context, id string) (Profile, error)
}
