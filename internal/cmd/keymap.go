package cmd

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/offlinefirst/keytrace/pkg/keymap"
)

func newKeymapCommand() command {
	return command{
		name:        "keymap",
		description: "Print the key code table",
		skipInit:    true,
		configure: func(fs *flag.FlagSet) {
			fs.Bool("all", false, "Include codes without a symbol")
		},
		run: runKeymap,
	}
}

func runKeymap(fs *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer, stderr io.Writer) error {
	all := boolFlag(fs, "all")
	layout := keymap.US()

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "CODE\tNORMAL\tSHIFTED\n")
	for _, e := range layout.Entries() {
		if !all && e.Normal == keymap.Unknown {
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Code, strconv.Quote(e.Normal), strconv.Quote(e.Shifted))
	}
	fmt.Fprintf(tw, "\nlayout %s, codes above %d are rejected\n", layout.Name(), keymap.KeyMax)
	return tw.Flush()
}
