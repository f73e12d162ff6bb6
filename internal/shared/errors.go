package shared

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicate indicates a uniqueness violation (slug, email).
	ErrDuplicate = errors.New("duplicate entry")
	// ErrValidation indicates the input failed shape or range checks.
	ErrValidation = errors.New("validation failed")
)

// UserSafeMessage returns a message that can be surfaced to API callers.
// Validation and conflict errors carry caller-actionable detail; anything
// else collapses to a generic message so store internals never leak.
func UserSafeMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation), errors.Is(err, ErrDuplicate), errors.Is(err, ErrNotFound):
		return err.Error()
	default:
		return "something went wrong, please try again"
	}
}
