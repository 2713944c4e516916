//go:build linux

package permissions

import (
	"errors"

	"golang.org/x/sys/unix"
)

func probeReadable(path string) ProbeResult {
	err := unix.Access(path, unix.R_OK)
	switch {
	case err == nil:
		return ProbeResult{Status: StatusGranted, Message: "input device readable"}
	case errors.Is(err, unix.ENOENT):
		return ProbeResult{Status: StatusMissing, Message: "input device " + path + " does not exist", Guidance: "list devices with 'keytrace devices'"}
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return ProbeResult{Status: StatusDenied, Message: "no read access to " + path, Guidance: deniedGuidance}
	default:
		return ProbeResult{Status: StatusUnknown, Message: "probe " + path + ": " + err.Error()}
	}
}
