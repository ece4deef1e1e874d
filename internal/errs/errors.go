package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	ErrNotFound = errors.New("not_found")
	// ErrInvalid marks caller input that breaks a ledger invariant (HTTP 400).
	ErrInvalid = errors.New("invalid_argument")
)

// ValidationError is the InvalidArgument failure produced before any write.
// It matches ErrInvalid under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// Invalid builds a ValidationError for field.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
