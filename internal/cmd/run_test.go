package cmd

import (
	"bytes"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benbjohnson/clock"

	"github.com/offlinefirst/keytrace/pkg/config"
	"github.com/offlinefirst/keytrace/pkg/inputevent"
	"github.com/offlinefirst/keytrace/pkg/keymap"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRunFlags(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	newRunCommand().configure(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return fs
}

func writeDump(t *testing.T, path string, events ...inputevent.RawEvent) {
	t.Helper()
	var buf []byte
	for _, ev := range events {
		buf = ev.AppendTo(buf)
	}
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		t.Fatalf("write dump: %v", err)
	}
}

func keyEvent(code uint16, value int32) inputevent.RawEvent {
	return inputevent.RawEvent{Kind: inputevent.KindKey, Code: code, Value: value}
}

// typedHi is "Hi" typed with the left shift held for the first letter.
func typedHi() []inputevent.RawEvent {
	return []inputevent.RawEvent{
		keyEvent(keymap.CodeLeftShift, inputevent.ValuePress),
		keyEvent(35, inputevent.ValuePress),
		keyEvent(35, inputevent.ValueRelease),
		keyEvent(keymap.CodeLeftShift, inputevent.ValueRelease),
		keyEvent(23, inputevent.ValuePress),
		keyEvent(23, inputevent.ValueRepeat),
		keyEvent(23, inputevent.ValueRelease),
	}
}

func TestRunCommandPlanOnly(t *testing.T) {
	ctx := &AppContext{Config: config.Default(), Logger: newTestLogger()}

	var stdout bytes.Buffer
	if err := runCapture(newRunFlags(t, "-plan-only", "-device", "/dev/input/event5"), nil, ctx, &stdout, io.Discard); err != nil {
		t.Fatalf("runCapture returned error: %v", err)
	}

	if !strings.Contains(stdout.String(), "Resolved configuration") {
		t.Fatalf("expected plan output, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "device.path: /dev/input/event5") {
		t.Fatalf("expected device override in plan, got %q", stdout.String())
	}
}

func TestRunCommandCapturesRecordedStream(t *testing.T) {
	dir := t.TempDir()
	devicePath := filepath.Join(dir, "event2")
	writeDump(t, devicePath, typedHi()...)
	outputPath := filepath.Join(dir, "keys", "log.txt")

	origClock := newClock
	newClock = func() clock.Clock { return clock.NewMock() }
	defer func() { newClock = origClock }()

	ctx := &AppContext{Config: config.Default(), Logger: newTestLogger()}
	fs := newRunFlags(t, "-device", devicePath, "-output", outputPath)

	for i := 0; i < 2; i++ {
		var stdout bytes.Buffer
		if err := runCapture(fs, nil, ctx, &stdout, io.Discard); err != nil {
			t.Fatalf("runCapture returned error: %v", err)
		}
		if !strings.Contains(stdout.String(), "Events: 7 read, 3 presses") {
			t.Fatalf("expected event summary, got %q", stdout.String())
		}
		if !strings.Contains(stdout.String(), "termination: eof") {
			t.Fatalf("expected eof termination, got %q", stdout.String())
		}
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read key log: %v", err)
	}
	if got := string(data); got != "<LSHIFT>Hi<LSHIFT>Hi" {
		t.Fatalf("expected appended key log, got %q", got)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		t.Fatalf("stat key log: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected key log mode 0600, got %v", info.Mode().Perm())
	}
}

func TestRunCommandTruncatedStreamFails(t *testing.T) {
	dir := t.TempDir()
	devicePath := filepath.Join(dir, "event2")
	data := keyEvent(16, inputevent.ValuePress).AppendTo(nil)
	data = append(data, 0x01, 0x02, 0x03)
	if err := os.WriteFile(devicePath, data, 0o600); err != nil {
		t.Fatalf("write dump: %v", err)
	}

	ctx := &AppContext{Config: config.Default(), Logger: newTestLogger()}
	fs := newRunFlags(t, "-device", devicePath, "-output", filepath.Join(dir, "log.txt"))
	err := runCapture(fs, nil, ctx, io.Discard, io.Discard)
	if err == nil {
		t.Fatalf("expected error for truncated record")
	}
	if !strings.Contains(err.Error(), "size mismatch") {
		t.Fatalf("expected size mismatch, got %v", err)
	}
}

func TestRunCommandMissingDevice(t *testing.T) {
	dir := t.TempDir()
	ctx := &AppContext{Config: config.Default(), Logger: newTestLogger()}
	fs := newRunFlags(t, "-device", filepath.Join(dir, "absent"), "-output", filepath.Join(dir, "log.txt"))
	if err := runCapture(fs, nil, ctx, io.Discard, io.Discard); err == nil {
		t.Fatalf("expected error for missing device")
	}
	if _, err := os.Stat(filepath.Join(dir, "log.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected key log not to be created, got %v", err)
	}
}

func TestReplayWritesKeysToStdout(t *testing.T) {
	dumpPath := filepath.Join(t.TempDir(), "dump.bin")
	writeDump(t, dumpPath, typedHi()...)

	ctx := &AppContext{Config: config.Default(), Logger: newTestLogger()}
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	newReplayCommand().configure(fs)

	var stdout, stderr bytes.Buffer
	if err := runReplay(fs, []string{dumpPath}, ctx, &stdout, &stderr); err != nil {
		t.Fatalf("runReplay returned error: %v", err)
	}
	if got := stdout.String(); got != "<LSHIFT>Hi" {
		t.Fatalf("expected only resolved keys on stdout, got %q", got)
	}
	if !strings.Contains(stderr.String(), "Events: 7 read") {
		t.Fatalf("expected summary on stderr, got %q", stderr.String())
	}
}

func TestReplayRequiresPath(t *testing.T) {
	ctx := &AppContext{Config: config.Default(), Logger: newTestLogger()}
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	newReplayCommand().configure(fs)
	if err := runReplay(fs, nil, ctx, io.Discard, io.Discard); err == nil {
		t.Fatalf("expected error without dump path")
	}
}
