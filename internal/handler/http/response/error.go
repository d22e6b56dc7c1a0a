package response

import (
	"errors"
	"net/http"

	"github.com/li-cell/election-backend-go/internal/domain/role"
	"github.com/li-cell/election-backend-go/internal/domain/seat"
	"github.com/li-cell/election-backend-go/internal/domain/user"
	"github.com/li-cell/election-backend-go/internal/pkg/validator"
	"github.com/li-cell/election-backend-go/internal/service/report"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Seat domain errors
	case errors.Is(err, seat.ErrUnknownSeat):
		NotFound(w, "Seat is not in the constituency catalog")
	case errors.Is(err, seat.ErrUnknownParty):
		BadRequest(w, "Party is not registered", nil)
	case errors.Is(err, seat.ErrSeatSuspended):
		Conflict(w, "Seat is suspended")
	case errors.Is(err, seat.ErrResultNotFound):
		NotFound(w, "Party has no result row in this seat")
	case errors.Is(err, seat.ErrConfirmationMismatch):
		BadRequest(w, "Confirmation phrase does not match", nil)

	// Report domain errors
	case errors.Is(err, report.ErrNoWinnersInScope):
		NotFound(w, "No declared winners in scope for the summary parties")

	// Role domain errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleNameExists):
		Conflict(w, "Role name already exists")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
