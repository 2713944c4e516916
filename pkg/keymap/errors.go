package keymap

import (
	"errors"
	"fmt"
)

// ErrOutOfRange matches any *OutOfRangeError via errors.Is.
var ErrOutOfRange = errors.New("key code out of range")

// OutOfRangeError reports a code above KeyMax.
type OutOfRangeError struct {
	Code uint16
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("key code %d out of range (max %d)", e.Code, KeyMax)
}

// Is lets errors.Is(err, ErrOutOfRange) succeed.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
