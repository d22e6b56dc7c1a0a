package seat

import (
	"github.com/li-cell/election-backend-go/internal/pkg/validator"
)

// EnterResultRequest carries a vote entry for one party in one seat.
type EnterResultRequest struct {
	Party     string `json:"party"`
	Votes     int64  `json:"votes"`
	Candidate string `json:"candidate,omitempty"`
	Symbol    string `json:"symbol,omitempty"`
}

func (r *EnterResultRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Party) {
		errs = append(errs, validator.ValidationError{
			Field:   "party",
			Message: "party is required",
		})
	}
	if r.Votes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "votes",
			Message: "votes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PartyRequest names the party for declare, revoke, and delete actions.
type PartyRequest struct {
	Party string `json:"party"`
}

func (r *PartyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Party) {
		errs = append(errs, validator.ValidationError{
			Field:   "party",
			Message: "party is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ConfirmRequest gates the irreversible bulk operations behind a typed
// confirmation phrase.
type ConfirmRequest struct {
	Confirmation string `json:"confirmation"`
}

func (r *ConfirmRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Confirmation) {
		errs = append(errs, validator.ValidationError{
			Field:   "confirmation",
			Message: "confirmation is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
