package runner

import (
	"log/slog"

	"github.com/aretw0/pushdown"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithEngine configures the engine to check inputs against. Required.
func WithEngine(engine *pushdown.Engine) Option {
	return func(r *Runner) {
		r.engine = engine
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithRecord persists every run through Engine.Record.
func WithRecord(record bool) Option {
	return func(r *Runner) {
		r.Record = record
	}
}
