package inputevent

import "errors"

// ErrSizeMismatch reports a chunk that is not exactly one event record long.
var ErrSizeMismatch = errors.New("input event record size mismatch")
