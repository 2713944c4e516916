package cmd

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/offlinefirst/keytrace/pkg/device"
)

func newDevicesCommand() command {
	return command{
		name:        "devices",
		description: "List input devices exposed by the kernel",
		skipInit:    true,
		run:         runDevices,
	}
}

var listDevices = device.List

func runDevices(fs *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer, stderr io.Writer) error {
	infos, err := listDevices()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintln(stdout, "No input devices found")
		return nil
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tNAME")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\n", info.Path, info.Name)
	}
	return tw.Flush()
}
