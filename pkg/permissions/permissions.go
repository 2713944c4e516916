package permissions

import (
	"os"
	"strings"
)

// Status enumerates coarse permission results for device access.
type Status string

const (
	// StatusUnknown indicates no explicit signal about permission state.
	StatusUnknown Status = "unknown"
	// StatusGranted signals the device can be read.
	StatusGranted Status = "granted"
	// StatusDenied indicates the process lacks read access.
	StatusDenied Status = "denied"
	// StatusMissing reports that the device node does not exist.
	StatusMissing Status = "missing"
	// StatusUnavailable reports that the capability is not supported.
	StatusUnavailable Status = "unavailable"
)

// EnvDeviceAccess overrides the probe result, for testing setups without
// real input devices.
const EnvDeviceAccess = "KEYTRACE_DEVICE_ACCESS"

// ProbeResult represents the coarse state for a permission surface.
type ProbeResult struct {
	Status   Status
	Message  string
	Guidance string
}

// LookupEnvFunc exposes environment probing for testability.
type LookupEnvFunc func(string) (string, bool)

// lookupEnv is declared for swapping in tests.
var lookupEnv = func(key string) (string, bool) {
	return os.LookupEnv(key)
}

// ProbeDevice reports whether the process can read the input device at path.
func ProbeDevice(path string, lookup LookupEnvFunc) ProbeResult {
	if lookup == nil {
		lookup = lookupEnv
	}
	if value, ok := lookup(EnvDeviceAccess); ok {
		return interpretPermissionFlag("input device", value)
	}
	return probeReadable(path)
}

func interpretPermissionFlag(name, value string) ProbeResult {
	normalised := strings.ToLower(strings.TrimSpace(value))
	switch normalised {
	case "granted", "allow", "allowed", "yes", "true":
		return ProbeResult{Status: StatusGranted, Message: name + " access pre-authorised via env override"}
	case "denied", "no", "false", "blocked":
		return ProbeResult{Status: StatusDenied, Message: name + " access denied via env override", Guidance: deniedGuidance}
	case "missing", "absent":
		return ProbeResult{Status: StatusMissing, Message: name + " missing via env override"}
	case "unavailable", "unsupported":
		return ProbeResult{Status: StatusUnavailable, Message: name + " access unavailable on this platform"}
	default:
		return ProbeResult{Status: StatusUnknown, Message: name + " access state unknown"}
	}
}

const deniedGuidance = "run as root or add the user to the 'input' group"

// StatusString returns the string representation for diagnostics output.
func (p ProbeResult) StatusString() string {
	if p.Status == "" {
		return string(StatusUnknown)
	}
	return string(p.Status)
}
