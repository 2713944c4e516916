package permissions

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

type fakeLookup map[string]string

func (f fakeLookup) get(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

func TestInterpretPermissionFlag(t *testing.T) {
	cases := map[string]struct {
		value    string
		expected Status
	}{
		"granted":     {"granted", StatusGranted},
		"denied":      {"denied", StatusDenied},
		"missing":     {"missing", StatusMissing},
		"unsupported": {"unsupported", StatusUnavailable},
		"unknown":     {"", StatusUnknown},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			res := interpretPermissionFlag("test", tc.value)
			if res.Status != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, res.Status)
			}
		})
	}
}

func TestProbeDeviceHonoursEnv(t *testing.T) {
	lookup := fakeLookup{EnvDeviceAccess: "denied"}
	res := ProbeDevice("/dev/input/event2", lookup.get)
	if res.Status != StatusDenied {
		t.Fatalf("expected denied, got %s", res.Status)
	}
	if res.Guidance == "" {
		t.Fatalf("expected guidance when denied")
	}
}

func TestProbeDeviceReadableFile(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("access probe is linux only")
	}
	path := filepath.Join(t.TempDir(), "event0")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	res := ProbeDevice(path, fakeLookup{}.get)
	if res.Status != StatusGranted {
		t.Fatalf("expected granted, got %s (%s)", res.Status, res.Message)
	}
}

func TestProbeDeviceMissing(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("access probe is linux only")
	}
	res := ProbeDevice(filepath.Join(t.TempDir(), "nope"), fakeLookup{}.get)
	if res.Status != StatusMissing {
		t.Fatalf("expected missing, got %s", res.Status)
	}
	if res.StatusString() != "missing" {
		t.Fatalf("unexpected status string %q", res.StatusString())
	}
}
