package booking

import "fmt"

// ValidationError reports malformed booking input, such as a past-dated
// slot.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid booking request: %s", e.Message)
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
