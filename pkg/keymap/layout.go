package keymap

import (
	evdev "github.com/holoplot/go-evdev"
)

// KeyMax is the highest code a layout resolves. Layout tables hold exactly
// KeyMax+1 entries, so the bound check in Resolve is the only gate.
const KeyMax = 122

// Unknown is returned for codes within range that carry no symbol.
const Unknown = "<KR>"

// Shift-class key codes.
const (
	CodeLeftShift  = uint16(evdev.KEY_LEFTSHIFT)
	CodeRightShift = uint16(evdev.KEY_RIGHTSHIFT)
)

// Entry is the pair of display strings bound to one code.
type Entry struct {
	Code    uint16
	Normal  string
	Shifted string
}

// Layout is an immutable code-to-symbol table.
type Layout struct {
	name string
	keys [KeyMax + 1]Entry
}

var us = newLayout("us", usKeys)

// US returns the built-in US QWERTY layout.
func US() *Layout {
	return us
}

// Resolve looks code up in the US layout.
func Resolve(code uint16, shifted bool) (string, error) {
	return us.Resolve(code, shifted)
}

// IsShift reports whether code is the left or right Shift key.
func IsShift(code uint16) bool {
	return code == CodeLeftShift || code == CodeRightShift
}

func newLayout(name string, src [KeyMax + 1]Entry) *Layout {
	l := &Layout{name: name}
	for code, e := range src {
		e.Code = uint16(code)
		if e.Normal == "" {
			e.Normal = Unknown
		}
		if e.Shifted == "" {
			e.Shifted = e.Normal
		}
		l.keys[code] = e
	}
	return l
}

// Name identifies the layout.
func (l *Layout) Name() string {
	return l.name
}

// Resolve returns the display string for code. Codes above KeyMax fail with
// *OutOfRangeError; codes in range always resolve, possibly to Unknown.
func (l *Layout) Resolve(code uint16, shifted bool) (string, error) {
	if code > KeyMax {
		return "", &OutOfRangeError{Code: code}
	}
	e := l.keys[code]
	if shifted {
		return e.Shifted, nil
	}
	return e.Normal, nil
}

// Entries returns every entry in code order.
func (l *Layout) Entries() []Entry {
	out := make([]Entry, len(l.keys))
	copy(out, l.keys[:])
	return out
}
