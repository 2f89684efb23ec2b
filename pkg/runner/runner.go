package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/pushdown"
	"github.com/aretw0/pushdown/pkg/domain"
)

// ExitCommand ends the loop, compared case-insensitively.
const ExitCommand = "exit"

// Runner handles the read-check-print loop using provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Record persists each run to the engine's run store.
	Record bool

	engine *pushdown.Engine
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run executes the loop until input ends, "exit" is entered or ctx is done.
// End of input and "exit" are normal terminations and return nil.
func (r *Runner) Run(ctx context.Context) error {
	if r.engine == nil {
		return errors.New("runner: engine is required (use WithEngine)")
	}
	handler := r.resolveHandler()

	for {
		line, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				r.Logger.Debug("Runner input: Context cancelled", "err", ctx.Err())
				return ctx.Err()
			}
			return fmt.Errorf("input error: %w", err)
		}

		if strings.EqualFold(strings.TrimSpace(line), ExitCommand) {
			return nil
		}

		res, err := r.check(ctx, line)
		if err != nil {
			r.Logger.Warn("failed to record run", "err", err)
			if sysErr := handler.SystemOutput(ctx, fmt.Sprintf("warning: %v", err)); sysErr != nil {
				return fmt.Errorf("output error: %w", sysErr)
			}
		}
		if err := handler.Output(ctx, line, res); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
}

func (r *Runner) check(ctx context.Context, line string) (domain.Result, error) {
	if !r.Record {
		return r.engine.Check(ctx, line), nil
	}
	record, res, err := r.engine.Record(ctx, line)
	if err == nil {
		r.Logger.Debug("run recorded", "id", record.ID)
	}
	return res, err
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r.Handler
}
