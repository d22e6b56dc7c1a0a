package role

import "time"

// PermissionAdmin unlocks admin mode: destructive bulk operations and the
// role/user administration surface.
const PermissionAdmin = "admin"

// Role is one document in the roles collection.
type Role struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Permissions []string  `bson:"permissions" json:"permissions"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// HasPermission reports whether the role grants the named permission.
func (r *Role) HasPermission(permission string) bool {
	for _, p := range r.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
