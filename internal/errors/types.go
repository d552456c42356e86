// Package errors classifies transport failures for the client SDK so callers
// can tell transient failures from permanent ones.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory tells callers whether a failed call may succeed if repeated.
type ErrorCategory int

const (
	// Recoverable failures are transient: 5xx, 408, 429, network errors.
	Recoverable ErrorCategory = iota

	// Irrecoverable failures will fail again: 400, 401, 403, 404, ...
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps a failed API call with its category.
type ClassifiedError struct {
	Category   ErrorCategory
	Operation  string // e.g. "search", "get brand"
	StatusCode int    // HTTP status code (0 for network errors)
	Body       string // truncated response body for debugging
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// IsRecoverable reports whether err carries a Recoverable classification.
func IsRecoverable(err error) bool {
	var ce *ClassifiedError
	return stderrors.As(err, &ce) && ce.Category == Recoverable
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var ce *ClassifiedError
	if stderrors.As(err, &ce) {
		return ce.StatusCode
	}
	return 0
}
