package keylog

import (
	"github.com/offlinefirst/keytrace/pkg/inputevent"
	"github.com/offlinefirst/keytrace/pkg/keymap"
)

// ShiftTracker counts held Shift keys. Holding both Shift keys needs both
// released before the state clears.
//
// A release that never reaches the stream leaves the tracker shifted until
// a further Shift release arrives.
type ShiftTracker struct {
	depth int
}

// Observe applies ev and reports whether a release arrived with no Shift
// held; such a release is ignored.
func (s *ShiftTracker) Observe(ev inputevent.RawEvent) (underflow bool) {
	if !ev.IsKey() || !keymap.IsShift(ev.Code) {
		return false
	}
	switch ev.Value {
	case inputevent.ValuePress:
		s.depth++
	case inputevent.ValueRelease:
		if s.depth == 0 {
			return true
		}
		s.depth--
	}
	return false
}

// Shifted reports whether any Shift key is held.
func (s *ShiftTracker) Shifted() bool {
	return s.depth != 0
}

// Depth returns the number of held Shift keys.
func (s *ShiftTracker) Depth() int {
	return s.depth
}

// Reset clears the tracker.
func (s *ShiftTracker) Reset() {
	s.depth = 0
}
