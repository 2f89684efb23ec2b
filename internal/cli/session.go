package cli

import (
	"context"
	"io"
	"os"

	"github.com/aretw0/pushdown"
	"github.com/aretw0/pushdown/internal/presentation/tui"
	"github.com/aretw0/pushdown/pkg/runner"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	EngineOptions

	JSON   bool
	Record bool
	Reason bool

	// In and Out default to Stdin and Stdout.
	In  io.Reader
	Out io.Writer
}

// RunSession executes one interactive session against the definition file.
func RunSession(opts RunOptions) error {
	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	logger := NewLogger(opts.Debug)
	interactive := !opts.JSON && isTerminal(out)

	if interactive {
		tui.PrintBanner(out, pushdown.Version)
	}

	engine, closeStore, err := NewEngine(opts.EngineOptions, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	r := runner.NewRunner(
		runner.WithEngine(engine),
		runner.WithLogger(logger),
		runner.WithRecord(opts.Record),
		runner.WithInputHandler(createHandler(opts, in, out, interactive)),
	)

	logger.Info("Session Started", "definition", engine.Name, "states", len(engine.Definition().States()))

	runErr := r.Run(sigCtx)
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}

	logCompletion(out, runErr, !interactive, sigCtx.Signal())
	return handleExecutionError(runErr)
}

func createHandler(opts RunOptions, in io.Reader, out io.Writer, interactive bool) runner.IOHandler {
	if opts.JSON {
		return runner.NewJSONHandler(in, out)
	}

	handlerOpts := []runner.TextHandlerOption{
		runner.WithTextHandlerReason(opts.Reason),
	}
	if interactive {
		profile := termenv.NewOutput(out).ColorProfile()
		handlerOpts = append(handlerOpts, runner.WithTextHandlerVerdict(func(accepted bool) string {
			return tui.Verdict(profile, accepted)
		}))
	}
	return runner.NewTextHandler(in, out, handlerOpts...)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
