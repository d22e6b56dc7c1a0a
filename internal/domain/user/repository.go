package user

import "context"

// UserRepository is the users-collection contract. List returns users ordered
// by creation time descending.
type UserRepository interface {
	Create(ctx context.Context, u AppUser) (AppUser, error)
	GetByID(ctx context.Context, id string) (AppUser, error)
	GetByEmail(ctx context.Context, email string) (AppUser, error)
	List(ctx context.Context) ([]AppUser, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
