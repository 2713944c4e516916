package device

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	evdev "github.com/holoplot/go-evdev"
	"go.viam.com/test"
)

func TestOpenExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event0")
	test.That(t, os.WriteFile(path, []byte("abc"), 0o600), test.ShouldBeNil)

	f, err := Open(context.Background(), Options{Path: path})
	test.That(t, err, test.ShouldBeNil)
	defer f.Close()

	data, err := io.ReadAll(f)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual, "abc")
}

func TestOpenMissingWithoutWait(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event9")
	_, err := Open(context.Background(), Options{Path: path})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, os.ErrNotExist), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "event9")
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open(context.Background(), Options{})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestOpenWaitsForNode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "event3")

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = os.WriteFile(path, []byte("x"), 0o600)
	}()

	f, err := Open(context.Background(), Options{Path: path, Wait: true, WaitTimeout: 5 * time.Second})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, f.Close(), test.ShouldBeNil)
}

func TestWaitForTimesOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never")
	err := WaitFor(context.Background(), path, 50*time.Millisecond)
	test.That(t, errors.Is(err, context.DeadlineExceeded), test.ShouldBeTrue)
}

func TestWaitForReturnsWhenPresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event1")
	test.That(t, os.WriteFile(path, nil, 0o600), test.ShouldBeNil)
	test.That(t, WaitFor(context.Background(), path, time.Second), test.ShouldBeNil)
}

func TestListMapsPaths(t *testing.T) {
	orig := listPaths
	defer func() { listPaths = orig }()

	listPaths = func() ([]evdev.InputPath, error) {
		return []evdev.InputPath{
			{Name: "AT Translated Set 2 keyboard", Path: "/dev/input/event2"},
			{Name: "Power Button", Path: "/dev/input/event0"},
		}, nil
	}

	infos, err := List()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, infos, test.ShouldResemble, []Info{
		{Path: "/dev/input/event2", Name: "AT Translated Set 2 keyboard"},
		{Path: "/dev/input/event0", Name: "Power Button"},
	})

	listPaths = func() ([]evdev.InputPath, error) { return nil, errors.New("no sysfs") }
	_, err = List()
	test.That(t, err, test.ShouldNotBeNil)
}
