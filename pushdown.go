package pushdown

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/pushdown/internal/runtime"
	"github.com/aretw0/pushdown/pkg/adapters/file"
	"github.com/aretw0/pushdown/pkg/adapters/memory"
	"github.com/aretw0/pushdown/pkg/adapters/text"
	"github.com/aretw0/pushdown/pkg/domain"
	"github.com/aretw0/pushdown/pkg/ports"
	"github.com/google/uuid"
)

// DefaultEpsilonLimit bounds consecutive epsilon moves unless WithEpsilonLimit says otherwise.
const DefaultEpsilonLimit = runtime.DefaultEpsilonLimit

// Engine is the high-level entry point for the pushdown library.
// It wraps the internal runtime and provides a simplified API for consumers.
// Engine is safe for concurrent use.
type Engine struct {
	runtime      *runtime.Engine
	def          *domain.Definition
	loader       ports.DefinitionLoader
	store        ports.RunStore
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	epsilonLimit int
	textOpts     []text.Option
	now          func() time.Time
	Name         string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom DefinitionLoader, bypassing the file loaders.
func WithLoader(l ports.DefinitionLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRunStore sets where Record persists runs (default: in memory).
func WithRunStore(store ports.RunStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithEpsilonLimit bounds consecutive epsilon moves (default: DefaultEpsilonLimit).
func WithEpsilonLimit(limit int) Option {
	return func(e *Engine) {
		e.epsilonLimit = limit
	}
}

// WithAllowRedefinition lets a later text-format line replace an earlier one with the
// same state and trigger. Structured documents use their allow_redefinition key instead.
func WithAllowRedefinition() Option {
	return func(e *Engine) {
		e.textOpts = append(e.textOpts, text.AllowRedefinition())
	}
}

// New loads the definition at path and initializes an Engine.
// If WithLoader is provided, path is only used as a descriptive label and may be empty.
func New(path string, opts ...Option) (*Engine, error) {
	eng := newEngine(opts...)

	if eng.loader == nil {
		if path == "" {
			return nil, fmt.Errorf("path is required when no custom loader is provided")
		}
		eng.loader = file.NewLoader(path, eng.textOpts...)
	}
	if path != "" {
		eng.Name = filepath.Base(path)
	}

	def, err := eng.loader.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load definition: %w", err)
	}
	eng.init(def)
	return eng, nil
}

// NewFromDefinition wraps an already validated definition.
func NewFromDefinition(def *domain.Definition, opts ...Option) *Engine {
	eng := newEngine(opts...)
	eng.init(def)
	return eng
}

func newEngine(opts ...Option) *Engine {
	eng := &Engine{
		epsilonLimit: runtime.DefaultEpsilonLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.store == nil {
		eng.store = memory.NewStore()
	}
	return eng
}

func (e *Engine) init(def *domain.Definition) {
	e.def = def
	if e.Name == "" {
		e.Name = def.Name()
	}
	if e.Name != "" {
		e.logger = e.logger.With("definition", e.Name)
	}
	e.runtime = runtime.NewEngine(def,
		runtime.WithLifecycleHooks(e.hooks),
		runtime.WithLogger(e.logger),
		runtime.WithEpsilonLimit(e.epsilonLimit),
	)
}

// Check simulates the automaton on whitespace-separated input.
// It never fails; a rejection is reported in Result.Err along with the trace so far.
func (e *Engine) Check(ctx context.Context, input string) domain.Result {
	return e.runtime.Check(ctx, input)
}

// CheckSymbols simulates the automaton on pre-tokenized input.
func (e *Engine) CheckSymbols(ctx context.Context, input []domain.Symbol) domain.Result {
	return e.runtime.CheckSymbols(ctx, input)
}

// Record checks input and persists the outcome to the run store.
// The returned error only reports persistence failures; the verdict is in the record.
func (e *Engine) Record(ctx context.Context, input string) (*domain.RunRecord, domain.Result, error) {
	res := e.Check(ctx, input)
	record := &domain.RunRecord{
		ID:         uuid.NewString(),
		Definition: e.Name,
		Input:      input,
		Accepted:   res.Accepted,
		Trace:      res.Trace,
		Reason:     res.Reason(),
		CreatedAt:  e.now().UTC(),
	}
	if err := e.store.Save(ctx, record); err != nil {
		return record, res, fmt.Errorf("failed to record run: %w", err)
	}
	e.logger.Debug("Run recorded", "id", record.ID, "accepted", record.Accepted)
	return record, res, nil
}

// Definition returns the loaded automaton.
func (e *Engine) Definition() *domain.Definition {
	return e.def
}

// Runs returns the run store used by Record.
func (e *Engine) Runs() ports.RunStore {
	return e.store
}

// Loader returns the loader the definition came from, or nil for NewFromDefinition.
func (e *Engine) Loader() ports.DefinitionLoader {
	return e.loader
}
