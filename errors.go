package client

import (
	"github.com/opencommercesearch/opencommercesearch/client/internal/errors"
	"github.com/opencommercesearch/opencommercesearch/client/internal/types"
	"github.com/opencommercesearch/opencommercesearch/client/request"
)

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrNotFound        = types.ErrNotFound
	ErrInvalidArgument = request.ErrInvalidArgument
)

// IsRecoverable reports whether err is a transient failure (network error,
// 5xx, 408 or 429) that may succeed if the caller tries again.
func IsRecoverable(err error) bool { return errors.IsRecoverable(err) }

// StatusCode returns the HTTP status of a failed call, or 0 when the call
// never got a response.
func StatusCode(err error) int { return errors.StatusCode(err) }
