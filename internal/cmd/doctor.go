package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/offlinefirst/keytrace/pkg/permissions"
)

func newDoctorCommand() command {
	return command{
		name:        "doctor",
		description: "Check that the configured input device can be read",
		configure: func(fs *flag.FlagSet) {
			fs.String("device", "", "Input device path (overrides device.path)")
		},
		run: runDoctor,
	}
}

var probeDevice = permissions.ProbeDevice

func runDoctor(fs *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer, stderr io.Writer) error {
	if ctx == nil {
		return fmt.Errorf("application context unavailable")
	}
	path := ctx.Config.Device.Path
	if v := stringFlag(fs, "device"); v != "" {
		path = v
	}

	res := probeDevice(path, nil)
	ctx.Logger.Info("device probe", "device", path, "status", res.StatusString())

	fmt.Fprintf(stdout, "Config: %s\n", ctx.Config.Source)
	fmt.Fprintf(stdout, "Device: %s\n", path)
	fmt.Fprintf(stdout, "  access: %s", res.StatusString())
	if res.Message != "" {
		fmt.Fprintf(stdout, " (%s)", res.Message)
	}
	fmt.Fprintln(stdout)
	if res.Guidance != "" {
		fmt.Fprintf(stdout, "  hint: %s\n", res.Guidance)
	}
	fmt.Fprintf(stdout, "Key log: %s\n", ctx.Config.Output.Path)

	if res.Status == permissions.StatusDenied || res.Status == permissions.StatusMissing {
		return fmt.Errorf("device %s not readable: %s", path, res.StatusString())
	}
	return nil
}
