package dsl

import (
	"context"
	"fmt"

	"github.com/aretw0/pushdown/pkg/adapters/memory"
	"github.com/aretw0/pushdown/pkg/domain"
)

// Builder manages the automaton construction.
type Builder struct {
	cfg    domain.DefinitionConfig
	states map[domain.State]*StateBuilder
}

// New creates a new automaton builder.
func New(name string) *Builder {
	return &Builder{
		cfg:    domain.DefinitionConfig{Name: name},
		states: make(map[domain.State]*StateBuilder),
	}
}

// Alphabet appends input symbols.
func (b *Builder) Alphabet(symbols ...string) *Builder {
	b.cfg.Alphabet = append(b.cfg.Alphabet, domain.Symbols(symbols...)...)
	return b
}

// AllowRedefinition makes a later transition for the same state and trigger replace the earlier one.
func (b *Builder) AllowRedefinition() *Builder {
	b.cfg.AllowRedefinition = true
	return b
}

// State declares a state, or returns the existing builder if it was already declared.
// States keep the order in which they were first mentioned.
func (b *Builder) State(name string) *StateBuilder {
	id := domain.State(name)
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{id: id, builder: b}
	b.states[id] = sb
	b.cfg.States = append(b.cfg.States, id)
	return sb
}

// Config returns the accumulated configuration.
func (b *Builder) Config() domain.DefinitionConfig {
	cfg := b.cfg
	cfg.States = append([]domain.State(nil), b.cfg.States...)
	cfg.Alphabet = append([]domain.Symbol(nil), b.cfg.Alphabet...)
	cfg.Final = append([]domain.State(nil), b.cfg.Final...)
	cfg.Transitions = append([]domain.Transition(nil), b.cfg.Transitions...)
	return cfg
}

// Definition validates and builds the automaton.
func (b *Builder) Definition() (*domain.Definition, error) {
	def, err := domain.NewDefinition(b.Config())
	if err != nil {
		return nil, fmt.Errorf("failed to build %q: %w", b.cfg.Name, err)
	}
	return def, nil
}

// Build compiles the automaton into a memory loader.
// Validation happens here so mistakes surface at build time rather than on first Load.
func (b *Builder) Build() (*memory.Loader, error) {
	loader := memory.NewLoader(b.Config())
	if _, err := loader.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return loader, nil
}

// StateBuilder provides a fluent API for configuring a state and its outgoing transitions.
type StateBuilder struct {
	id      domain.State
	builder *Builder
}

// Start marks the state as the start state.
func (s *StateBuilder) Start() *StateBuilder {
	s.builder.cfg.Start = s.id
	return s
}

// Final marks the state as accepting.
func (s *StateBuilder) Final() *StateBuilder {
	s.builder.cfg.Final = append(s.builder.cfg.Final, s.id)
	return s
}

// On starts a transition triggered by symbol.
func (s *StateBuilder) On(symbol string) *TransitionBuilder {
	return &TransitionBuilder{from: s, trigger: domain.Sym(domain.Symbol(symbol))}
}

// Epsilon starts a transition that consumes no input.
func (s *StateBuilder) Epsilon() *TransitionBuilder {
	return &TransitionBuilder{from: s, trigger: domain.Epsilon}
}

// TransitionBuilder collects the stack operations of one transition until Go names its target.
type TransitionBuilder struct {
	from    *StateBuilder
	trigger domain.Term
	pop     domain.Term
	push    domain.Term
}

// Pop requires symbol on top of the stack and removes it.
func (t *TransitionBuilder) Pop(symbol string) *TransitionBuilder {
	t.pop = domain.Sym(domain.Symbol(symbol))
	return t
}

// Push places symbol on the stack.
func (t *TransitionBuilder) Push(symbol string) *TransitionBuilder {
	t.push = domain.Sym(domain.Symbol(symbol))
	return t
}

// Go completes the transition and returns the source state for chaining.
// The target is declared if it was not mentioned before.
func (t *TransitionBuilder) Go(target string) *StateBuilder {
	b := t.from.builder
	to := b.State(target).id
	b.cfg.Transitions = append(b.cfg.Transitions, domain.Transition{
		From:    t.from.id,
		Trigger: t.trigger,
		Pop:     t.pop,
		Push:    t.push,
		To:      to,
	})
	return t.from
}
