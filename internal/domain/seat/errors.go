package seat

import "errors"

var (
	ErrUnknownSeat          = errors.New("seat is not in the constituency catalog")
	ErrUnknownParty         = errors.New("party is not registered")
	ErrSeatSuspended        = errors.New("seat is suspended")
	ErrResultNotFound       = errors.New("party has no result row in this seat")
	ErrConfirmationMismatch = errors.New("confirmation phrase does not match")
)
