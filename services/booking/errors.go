package booking

import (
	"errors"
	"fmt"

	"shopsphere/models"
)

var (
	// ErrEmptyBookingID guards Cancel before any store call.
	ErrEmptyBookingID = errors.New("booking ID is required to cancel a booking")
	// ErrInvalidOTP means the entered code does not match the booking's code.
	ErrInvalidOTP = errors.New("invalid OTP")
	// ErrBookingNotFound means no booking has the given id.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidTransition matches every *TransitionError.
	ErrInvalidTransition = errors.New("invalid booking transition")
)

// TransitionError reports a status change that the stored booking does not allow.
// It is also what the loser of a concurrent transition receives.
type TransitionError struct {
	BookingID string
	Current   models.BookingStatus
	Target    models.BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition for booking %s: %s -> %s", e.BookingID, e.Current, e.Target)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}
