// Package device opens evdev character devices for reading.
package device

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	evdev "github.com/holoplot/go-evdev"
	"github.com/pkg/errors"
)

// Options controls how a device node is opened.
type Options struct {
	Path string
	// Wait makes Open block until a missing node appears.
	Wait        bool
	WaitTimeout time.Duration
}

// Info describes an input device node.
type Info struct {
	Path string
	Name string
}

// Open returns a read-only handle on the device node.
func Open(ctx context.Context, opts Options) (*os.File, error) {
	if opts.Path == "" {
		return nil, errors.New("device path must not be empty")
	}
	f, err := os.Open(opts.Path)
	if err == nil {
		return f, nil
	}
	if !opts.Wait || !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(err, "open device %q", opts.Path)
	}

	if err := WaitFor(ctx, opts.Path, opts.WaitTimeout); err != nil {
		return nil, err
	}
	f, err = os.Open(opts.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "open device %q", opts.Path)
	}
	return f, nil
}

// WaitFor blocks until path exists. A zero timeout waits until ctx is done.
func WaitFor(ctx context.Context, path string, timeout time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create device watcher")
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "watch %q", filepath.Dir(target))
	}
	// the node may have appeared before the watch was registered
	if _, err := os.Stat(target); err == nil {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "wait for device %q", path)
		case ev, ok := <-watcher.Events:
			if !ok {
				return errors.Errorf("device watcher closed while waiting for %q", path)
			}
			if filepath.Clean(ev.Name) == target && ev.Has(fsnotify.Create) {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.Errorf("device watcher closed while waiting for %q", path)
			}
			return errors.Wrap(err, "device watcher")
		}
	}
}

// listPaths is swapped in tests.
var listPaths = evdev.ListDevicePaths

// List reports the evdev nodes the kernel exposes, with their names.
func List() ([]Info, error) {
	paths, err := listPaths()
	if err != nil {
		return nil, errors.Wrap(err, "list input devices")
	}
	out := make([]Info, 0, len(paths))
	for _, p := range paths {
		out = append(out, Info{Path: p.Path, Name: p.Name})
	}
	return out, nil
}
