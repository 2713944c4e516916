package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/offlinefirst/keytrace/pkg/device"
	"github.com/offlinefirst/keytrace/pkg/keylog"
)

func newRunCommand() command {
	return command{
		name:        "run",
		description: "Capture key presses from the input device into the key log",
		configure: func(fs *flag.FlagSet) {
			fs.String("device", "", "Input device path (overrides device.path)")
			fs.String("output", "", "Key log path (overrides output.path)")
			fs.Bool("wait", false, "Wait for the device node to appear")
			fs.Bool("plan-only", false, "Print the resolved configuration without starting capture")
		},
		run: runCapture,
	}
}

// newClock is swapped in tests.
var newClock = clock.New

type runPlan struct {
	devicePath  string
	outputPath  string
	wait        bool
	waitTimeout time.Duration
}

func resolveRunPlan(fs *flag.FlagSet, ctx *AppContext) runPlan {
	plan := runPlan{
		devicePath:  ctx.Config.Device.Path,
		outputPath:  ctx.Config.Output.Path,
		wait:        ctx.Config.Device.Wait || boolFlag(fs, "wait"),
		waitTimeout: time.Duration(ctx.Config.Device.WaitTimeoutSeconds) * time.Second,
	}
	if v := stringFlag(fs, "device"); v != "" {
		plan.devicePath = v
	}
	if v := stringFlag(fs, "output"); v != "" {
		plan.outputPath = v
	}
	return plan
}

func runCapture(fs *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer, stderr io.Writer) (err error) {
	if ctx == nil {
		return errors.New("application context unavailable")
	}

	plan := resolveRunPlan(fs, ctx)
	planOnly := boolFlag(fs, "plan-only")
	ctx.Logger.Info("run command invoked", "plan_only", planOnly, "device", plan.devicePath, "output", plan.outputPath, "config_source", ctx.Config.Source)

	if planOnly {
		printRunPlan(ctx, plan, stdout)
		return nil
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev, err := device.Open(sigCtx, device.Options{Path: plan.devicePath, Wait: plan.wait, WaitTimeout: plan.waitTimeout})
	if err != nil {
		return errors.Wrap(err, "open input device")
	}
	closeDevice := sync.OnceValue(dev.Close)
	defer func() {
		err = multierr.Combine(err, closeDevice())
	}()

	out, err := openKeyLog(plan.outputPath)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, out.Close())
	}()

	// a blocked read only returns once the device is closed
	go func() {
		<-sigCtx.Done()
		_ = closeDevice()
	}()

	pipeline, err := keylog.NewPipeline(keylog.Options{
		Source: dev,
		Sink:   out,
		Logger: ctx.Logger,
		Clock:  newClock(),
	})
	if err != nil {
		return errors.Wrap(err, "initialise pipeline")
	}

	ctx.Logger.Info("capture started", "device", plan.devicePath, "output", plan.outputPath)
	res, runErr := pipeline.Run(sigCtx)
	ctx.Logger.Info("capture finished", "termination", res.Termination, "events", res.Events, "presses", res.Presses, "out_of_range", res.OutOfRange, "short_writes", res.ShortWrites)

	printRunSummary(stdout, plan.outputPath, res)

	if runErr != nil && res.Termination != keylog.TerminationCancelled {
		ctx.Logger.Error("capture failed", "error", runErr)
		return errors.Wrap(runErr, "capture")
	}
	return nil
}

func openKeyLog(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "ensure key log directory")
		}
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, "open key log")
	}
	return file, nil
}

func printRunSummary(w io.Writer, output string, res keylog.Result) {
	fmt.Fprintf(w, "Key log: %s\n", output)
	fmt.Fprintf(w, "Events: %d read, %d presses, %d bytes written\n", res.Events, res.Presses, res.Written)
	if res.OutOfRange > 0 || res.ShortWrites > 0 || res.Underflows > 0 {
		fmt.Fprintf(w, "Diagnostics: %d out of range, %d short writes, %d unmatched shift releases\n", res.OutOfRange, res.ShortWrites, res.Underflows)
	}
	fmt.Fprintf(w, "Lifecycle: started %s, ended %s (termination: %s)\n", res.Started.Format(time.RFC3339), res.Finished.Format(time.RFC3339), res.Termination)
}

func printRunPlan(ctx *AppContext, plan runPlan, stdout io.Writer) {
	fmt.Fprintf(stdout, "Resolved configuration (source: %s)\n", ctx.Config.Source)
	fmt.Fprintf(stdout, "  device.path: %s\n", plan.devicePath)
	fmt.Fprintf(stdout, "  device.wait: %t\n", plan.wait)
	fmt.Fprintf(stdout, "  device.wait_timeout: %s\n", plan.waitTimeout)
	fmt.Fprintf(stdout, "  output.path: %s\n", plan.outputPath)
	fmt.Fprintf(stdout, "  logging.level: %s\n", ctx.Config.Logging.Level)
	fmt.Fprintf(stdout, "  logging.format: %s\n", ctx.Config.Logging.Format)
	if ctx.Config.Logging.File != "" {
		fmt.Fprintf(stdout, "  logging.file: %s\n", ctx.Config.Logging.File)
	}
}

func boolFlag(fs *flag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	value, err := strconv.ParseBool(f.Value.String())
	if err != nil {
		return false
	}
	return value
}

func stringFlag(fs *flag.FlagSet, name string) string {
	f := fs.Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}
