package ledger

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel for user input rejected by validation.
var ErrInvalidInput = errors.New("invalid input")

// ErrCalculationFailed wraps failures while deriving balances, settlements or
// analytics, including store read errors.
var ErrCalculationFailed = errors.New("calculation failed")

// ValidationError reports the first invalid field of a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns ErrInvalidInput for errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
