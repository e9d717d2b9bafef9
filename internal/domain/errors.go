package domain

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotOwner         = errors.New("booking does not belong to user")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

// ErrValidation marks caller mistakes rejected before any storage access.
// Wrap it with context: fmt.Errorf("%w: quantity must be positive", ErrValidation).
var ErrValidation = errors.New("validation error")

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
