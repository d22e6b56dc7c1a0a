package role

import (
	"github.com/li-cell/election-backend-go/internal/pkg/validator"
)

// CreateRoleRequest represents the request structure for creating a role.
type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}
	for _, p := range r.Permissions {
		if validator.IsEmpty(p) {
			errs = append(errs, validator.ValidationError{
				Field:   "permissions",
				Message: "permissions must not contain empty entries",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRoleRequest represents the request structure for updating a role.
// Nil fields are left untouched.
type UpdateRoleRequest struct {
	ID          string    `json:"-"`
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
