package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/pushdown"
	"github.com/aretw0/pushdown/pkg/adapters/file"
	"github.com/aretw0/pushdown/pkg/adapters/memory"
	"github.com/aretw0/pushdown/pkg/adapters/redis"
	"github.com/aretw0/pushdown/pkg/domain"
	"github.com/aretw0/pushdown/pkg/ports"
)

// EngineOptions holds the flags shared by every command that loads a definition.
type EngineOptions struct {
	File              string
	Debug             bool
	EpsilonLimit      int
	AllowRedefinition bool

	// Run persistence. RedisURL wins over RunsDir; neither means in memory.
	RunsDir  string
	RedisURL string
	RedisTTL time.Duration
}

// NewEngine initializes an engine with standard CLI conventions.
// The returned closer releases the run store and must be called when done.
func NewEngine(opts EngineOptions, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*pushdown.Engine, func() error, error) {
	store, closeStore, err := createStore(opts)
	if err != nil {
		return nil, nil, err
	}

	if opts.Debug {
		hooks = append([]domain.LifecycleHooks{createDebugHooks(logger)}, hooks...)
	}

	engineOpts := []pushdown.Option{
		pushdown.WithLogger(logger),
		pushdown.WithRunStore(store),
		pushdown.WithEpsilonLimit(opts.EpsilonLimit),
		pushdown.WithLifecycleHooks(domain.MergeHooks(hooks...)),
	}
	if opts.AllowRedefinition {
		engineOpts = append(engineOpts, pushdown.WithAllowRedefinition())
	}

	engine, err := pushdown.New(opts.File, engineOpts...)
	if err != nil {
		_ = closeStore()
		return nil, nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, closeStore, nil
}

func createStore(opts EngineOptions) (ports.RunStore, func() error, error) {
	noop := func() error { return nil }

	switch {
	case opts.RedisURL != "":
		store, err := redis.NewFromURL(opts.RedisURL, redis.WithTTL(opts.RedisTTL))
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case opts.RunsDir != "":
		return file.New(opts.RunsDir), noop, nil
	default:
		return memory.NewStore(), noop, nil
	}
}
