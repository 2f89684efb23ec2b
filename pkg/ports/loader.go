package ports

import (
	"context"

	"github.com/aretw0/pushdown/pkg/domain"
)

// DefinitionLoader defines how the engine retrieves an automaton definition.
// This allows the storage layer (text files, YAML, memory) to be decoupled.
type DefinitionLoader interface {
	// Load reads and validates the definition.
	// A malformed source must fail as a whole; no partial definition is returned.
	Load(ctx context.Context) (*domain.Definition, error)
}
