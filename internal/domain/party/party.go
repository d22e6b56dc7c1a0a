// Package party models the open party enumeration: the static table from
// refdata plus labels registered at runtime in the metadata collection.
package party

import (
	"context"

	"github.com/li-cell/election-backend-go/internal/pkg/validator"
)

// CustomPartyDoc is the metadata collection document holding runtime-registered
// party labels. Appends use set-union semantics; names are never removed.
const CustomPartyDoc = "custom_parties"

// PartyRepository is the metadata-collection contract for custom parties.
type PartyRepository interface {
	Names(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
}

// RegisterPartyRequest carries a new custom party label.
type RegisterPartyRequest struct {
	Name string `json:"name"`
}

func (r *RegisterPartyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 200 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
