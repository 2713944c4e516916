// Package keylog runs the capture loop: it reads input_event records from a
// device stream, tracks Shift, resolves each key press to a display string,
// and appends the strings to a log with no separators.
package keylog
