package role

import "context"

// RoleRepository is the roles-collection contract. List returns roles ordered
// by creation time descending.
type RoleRepository interface {
	Create(ctx context.Context, r Role) (Role, error)
	GetByID(ctx context.Context, id string) (Role, error)
	List(ctx context.Context) ([]Role, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
