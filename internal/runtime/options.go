package runtime

import (
	"log/slog"

	"github.com/aretw0/pushdown/pkg/domain"
)

// DefaultEpsilonLimit bounds consecutive epsilon moves when no repeated configuration is detected,
// which only happens when an epsilon cycle keeps growing the stack.
const DefaultEpsilonLimit = 10000

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a structured logger. A nil logger keeps the no-op default.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithEpsilonLimit overrides DefaultEpsilonLimit. Zero or negative disables the bound;
// repeated configurations are still detected.
func WithEpsilonLimit(limit int) EngineOption {
	return func(e *Engine) {
		e.epsilonLimit = limit
	}
}
