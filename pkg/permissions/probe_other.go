//go:build !linux

package permissions

func probeReadable(path string) ProbeResult {
	return ProbeResult{Status: StatusUnavailable, Message: "evdev input devices are linux only"}
}
