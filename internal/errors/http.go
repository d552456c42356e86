package errors

import (
	"fmt"
	"net/http"
)

// NewHTTPError classifies a non-success response of operation.
func NewHTTPError(operation string, statusCode int, body string) *ClassifiedError {
	return &ClassifiedError{
		Category:   categoryFor(statusCode),
		Operation:  operation,
		StatusCode: statusCode,
		Body:       body,
		Underlying: fmt.Errorf("%s failed: HTTP %d", operation, statusCode),
	}
}

// NewNetworkError classifies a failure to reach the service at all.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Operation:  operation,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}

func categoryFor(statusCode int) ErrorCategory {
	switch {
	case statusCode == http.StatusRequestTimeout, statusCode == http.StatusTooManyRequests:
		return Recoverable
	case statusCode >= 400 && statusCode < 500:
		return Irrecoverable
	default:
		// 5xx and anything unexpected
		return Recoverable
	}
}
