package keylog

import "fmt"

// StreamError wraps a read or write failure on the device or log stream.
// The loop cannot recover from it.
type StreamError struct {
	Op  string
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("%s stream: %v", e.Op, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}
