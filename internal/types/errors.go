package types

import "errors"

// ErrNotFound is returned when the service answers successfully but the
// requested entity is not in the payload.
var ErrNotFound = errors.New("not found")
