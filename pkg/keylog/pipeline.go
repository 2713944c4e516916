package keylog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"

	"github.com/offlinefirst/keytrace/pkg/inputevent"
	"github.com/offlinefirst/keytrace/pkg/keymap"
)

// Termination causes recorded in Result.
const (
	TerminationEOF       = "eof"
	TerminationCancelled = "cancelled"
	TerminationError     = "error"
)

// Options controls pipeline behaviour.
type Options struct {
	Source io.Reader
	Sink   io.Writer
	Layout *keymap.Layout
	Logger *slog.Logger
	Clock  clock.Clock
}

// Result summarises a pipeline run.
type Result struct {
	Events      int
	Presses     int
	Written     int
	OutOfRange  int
	ShortWrites int
	Underflows  int
	Started     time.Time
	Finished    time.Time
	Termination string
}

// Pipeline owns the shift state for one device stream. It is not safe for
// concurrent use.
type Pipeline struct {
	source io.Reader
	sink   io.Writer
	layout *keymap.Layout
	logger *slog.Logger
	clock  clock.Clock

	shift  ShiftTracker
	result Result
}

// NewPipeline validates options and constructs a pipeline.
func NewPipeline(opts Options) (*Pipeline, error) {
	if opts.Source == nil {
		return nil, errors.New("source must be provided")
	}
	if opts.Sink == nil {
		return nil, errors.New("sink must be provided")
	}
	if opts.Logger == nil {
		return nil, errors.New("logger must be provided")
	}
	layout := opts.Layout
	if layout == nil {
		layout = keymap.US()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	return &Pipeline{
		source: opts.Source,
		sink:   opts.Sink,
		layout: layout,
		logger: opts.Logger,
		clock:  clk,
	}, nil
}

// Run reads records until the source fails, ends, or ctx is cancelled.
// A source that ends exactly on a record boundary finishes with a nil error;
// a trailing partial record fails with inputevent.ErrSizeMismatch.
// Cancellation returns ctx.Err().
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	p.result.Started = p.clock.Now().UTC()

	err := p.loop(ctx)

	p.result.Finished = p.clock.Now().UTC()
	switch {
	case err == nil:
		p.result.Termination = TerminationEOF
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		p.result.Termination = TerminationCancelled
	default:
		p.result.Termination = TerminationError
	}
	return p.result, err
}

func (p *Pipeline) loop(ctx context.Context) error {
	buf := make([]byte, inputevent.Size)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := io.ReadFull(p.source, buf)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			// fall through to Decode, which rejects the partial record
		default:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return &StreamError{Op: "read", Err: err}
		}

		ev, err := inputevent.Decode(buf[:n])
		if err != nil {
			return errors.Wrap(err, "decode record")
		}
		if err := p.Step(ev); err != nil {
			return err
		}
	}
}

// Step processes one decoded event. Only write failures are returned;
// out-of-range codes and short writes are logged and counted.
func (p *Pipeline) Step(ev inputevent.RawEvent) error {
	p.result.Events++
	if !ev.IsKey() {
		return nil
	}

	if p.shift.Observe(ev) {
		p.result.Underflows++
		p.logger.Warn("shift release without matching press", "code", ev.Code)
	}
	if !ev.IsPress() {
		return nil
	}
	p.result.Presses++

	sym, err := p.layout.Resolve(ev.Code, p.shift.Shifted())
	if err != nil {
		if errors.Is(err, keymap.ErrOutOfRange) {
			p.result.OutOfRange++
			p.logger.Warn("key code outside layout", "code", ev.Code, "layout", p.layout.Name(), "error", err)
			return nil
		}
		return err
	}
	p.logger.Debug("key press", "code", ev.Code, "shift_depth", p.shift.Depth())
	return p.write(sym)
}

func (p *Pipeline) write(sym string) error {
	n, err := p.sink.Write([]byte(sym))
	p.result.Written += n
	if n < len(sym) && (err == nil || errors.Is(err, io.ErrShortWrite)) {
		p.result.ShortWrites++
		p.logger.Warn("short write to key log", "written", n, "requested", len(sym))
		return nil
	}
	if err != nil {
		return &StreamError{Op: "write", Err: err}
	}
	return nil
}

// Shifted reports the current shift state.
func (p *Pipeline) Shifted() bool {
	return p.shift.Shifted()
}

// Result returns the counters accumulated so far.
func (p *Pipeline) Result() Result {
	return p.result
}
