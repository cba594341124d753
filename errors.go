package optics

import (
	"errors"
	"fmt"
)

// Core error definitions. Optics themselves never return errors (a miss
// is an empty result, and a shape mismatch is a miss), so these surface
// only from the typed codec layer and explicit parse helpers.
var (
	ErrInvalidJSON  = errors.New("invalid JSON format")
	ErrDecodeFailed = errors.New("decode failed")
)

// OpticsError carries the failing operation and a human-readable message
// alongside the underlying sentinel.
type OpticsError struct {
	Op      string
	Message string
	Err     error
}

func (e *OpticsError) Error() string {
	return fmt.Sprintf("optics %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *OpticsError) Unwrap() error {
	return e.Err
}

// Is matches either another OpticsError with the same operation and
// sentinel, or the sentinel itself.
func (e *OpticsError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*OpticsError); ok {
		return e.Op == targetErr.Op && errors.Is(e.Err, targetErr.Err)
	}
	return errors.Is(e.Err, target)
}

// newDecodeError creates an OpticsError for decode failures.
func newDecodeError(op, message string, err error) error {
	return &OpticsError{
		Op:      op,
		Message: message,
		Err:     err,
	}
}
