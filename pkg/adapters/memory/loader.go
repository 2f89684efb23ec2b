package memory

import (
	"context"

	"github.com/aretw0/pushdown/pkg/domain"
)

// Loader implements ports.DefinitionLoader for a definition built in code.
type Loader struct {
	cfg domain.DefinitionConfig
}

// NewLoader wraps cfg. Validation happens on Load, like any other source.
func NewLoader(cfg domain.DefinitionConfig) *Loader {
	return &Loader{cfg: cfg}
}

// Load validates the configuration and returns the definition.
func (l *Loader) Load(ctx context.Context) (*domain.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.NewDefinition(l.cfg)
}
