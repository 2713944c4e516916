package inputevent

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Size is the byte length of one record: two 8-byte timeval words, the
// 16-bit type and code, and the 32-bit value.
const Size = 24

// Field offsets within a record.
const (
	offSeconds      = 0
	offMicroseconds = 8
	offKind         = 16
	offCode         = 18
	offValue        = 20
)

// KindKey is the EV_KEY event class.
const KindKey uint16 = 0x01

// Key event values.
const (
	ValueRelease int32 = 0
	ValuePress   int32 = 1
	ValueRepeat  int32 = 2
)

// RawEvent is one decoded input_event record.
type RawEvent struct {
	Seconds      int64
	Microseconds int64
	Kind         uint16
	Code         uint16
	Value        int32
}

// New builds an event stamped with t.
func New(t time.Time, kind, code uint16, value int32) RawEvent {
	return RawEvent{
		Seconds:      t.Unix(),
		Microseconds: int64(t.Nanosecond() / int(time.Microsecond)),
		Kind:         kind,
		Code:         code,
		Value:        value,
	}
}

// Decode reads one record. The buffer must be exactly Size bytes long;
// otherwise ErrSizeMismatch is returned together with a zero event.
func Decode(buf []byte) (RawEvent, error) {
	if len(buf) != Size {
		return RawEvent{}, errors.Wrapf(ErrSizeMismatch, "got %d bytes, want %d", len(buf), Size)
	}
	le := binary.LittleEndian
	return RawEvent{
		Seconds:      int64(le.Uint64(buf[offSeconds:])),
		Microseconds: int64(le.Uint64(buf[offMicroseconds:])),
		Kind:         le.Uint16(buf[offKind:]),
		Code:         le.Uint16(buf[offCode:]),
		Value:        int32(le.Uint32(buf[offValue:])),
	}, nil
}

// Encode returns the wire form of ev.
func Encode(ev RawEvent) []byte {
	return ev.AppendTo(make([]byte, 0, Size))
}

// AppendTo appends the wire form of ev to dst.
func (ev RawEvent) AppendTo(dst []byte) []byte {
	le := binary.LittleEndian
	dst = le.AppendUint64(dst, uint64(ev.Seconds))
	dst = le.AppendUint64(dst, uint64(ev.Microseconds))
	dst = le.AppendUint16(dst, ev.Kind)
	dst = le.AppendUint16(dst, ev.Code)
	return le.AppendUint32(dst, uint32(ev.Value))
}

// Time returns the event timestamp.
func (ev RawEvent) Time() time.Time {
	return time.Unix(ev.Seconds, ev.Microseconds*int64(time.Microsecond))
}

// IsKey reports whether the event belongs to the EV_KEY class.
func (ev RawEvent) IsKey() bool {
	return ev.Kind == KindKey
}

// IsPress reports a key press. Autorepeat is not a press.
func (ev RawEvent) IsPress() bool {
	return ev.IsKey() && ev.Value == ValuePress
}

// IsRelease reports a key release.
func (ev RawEvent) IsRelease() bool {
	return ev.IsKey() && ev.Value == ValueRelease
}

func (ev RawEvent) String() string {
	state := "other"
	switch ev.Value {
	case ValueRelease:
		state = "release"
	case ValuePress:
		state = "press"
	case ValueRepeat:
		state = "repeat"
	}
	return fmt.Sprintf("event kind=%d code=%d value=%d (%s)", ev.Kind, ev.Code, ev.Value, state)
}
