package czml

import (
	"errors"
	"fmt"
)

// UsageError reports a violation of the writer protocol. It is raised with
// panic: the protocol has no recoverable failures, only programming errors.
//
// Usage errors include:
//   - Writing to or closing a writer that is not open
//   - Writing to a parent while one of its child writers is open
//   - Writing a second value after a value was written in place of the property
//   - Sample slices of different lengths or an out-of-range sub-range
type UsageError struct {
	// Op is the attempted operation.
	Op string

	// Property is the property name of the writer, if any.
	Property string

	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("czml: %s %q: %s", e.Op, e.Property, e.Message)
	}
	return fmt.Sprintf("czml: %s: %s", e.Op, e.Message)
}

// IsUsageError reports whether err, or a value recovered from a panic, is a
// *UsageError.
func IsUsageError(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var ue *UsageError
	return errors.As(err, &ue)
}

func usagePanic(op, property, format string, args ...any) {
	panic(&UsageError{Op: op, Property: property, Message: fmt.Sprintf(format, args...)})
}
