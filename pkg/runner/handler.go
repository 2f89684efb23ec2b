package runner

import (
	"context"

	"github.com/aretw0/pushdown/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Input reads the next line. It returns io.EOF when the source is exhausted
	// and ctx.Err() when ctx is done first.
	Input(ctx context.Context) (string, error)

	// Output presents the verdict for one input.
	Output(ctx context.Context, input string, res domain.Result) error

	// SystemOutput presents a meta-message (e.g. a rejected line or a persistence failure).
	// This is distinct from verdict rendering.
	SystemOutput(ctx context.Context, msg string) error
}
