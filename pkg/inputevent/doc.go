// Package inputevent decodes the fixed-size records a Linux evdev character
// device emits (struct input_event on 64-bit little-endian hosts).
package inputevent
