package cmd

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/offlinefirst/keytrace/pkg/keylog"
)

func newReplayCommand() command {
	return command{
		name:        "replay",
		description: "Resolve a recorded event dump (defaults to stdout)",
		configure: func(fs *flag.FlagSet) {
			fs.String("output", "", "Append resolved keys to this file instead of stdout")
		},
		run: runReplay,
	}
}

func runReplay(fs *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer, stderr io.Writer) (err error) {
	if ctx == nil {
		return errors.New("application context unavailable")
	}
	if len(args) != 1 {
		return errors.New("replay requires exactly one event dump path")
	}

	src, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "open event dump")
	}
	defer func() {
		err = multierr.Combine(err, src.Close())
	}()

	var sink io.Writer = stdout
	output := stringFlag(fs, "output")
	if output != "" {
		file, openErr := openKeyLog(output)
		if openErr != nil {
			return openErr
		}
		defer func() {
			err = multierr.Combine(err, file.Close())
		}()
		sink = file
	}

	pipeline, err := keylog.NewPipeline(keylog.Options{
		Source: src,
		Sink:   sink,
		Logger: ctx.Logger,
		Clock:  newClock(),
	})
	if err != nil {
		return errors.Wrap(err, "initialise pipeline")
	}

	res, err := pipeline.Run(context.Background())
	ctx.Logger.Info("replay finished", "dump", args[0], "termination", res.Termination, "events", res.Events, "presses", res.Presses)
	if output == "" {
		// keep stdout limited to resolved keys
		printRunSummary(stderr, "<stdout>", res)
	} else {
		printRunSummary(stdout, output, res)
	}
	if err != nil {
		return errors.Wrapf(err, "replay %q", args[0])
	}
	return nil
}
