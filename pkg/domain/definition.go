package domain

import (
	"encoding/json"
	"fmt"
	"slices"
)

// DefinitionConfig is the raw material for NewDefinition.
type DefinitionConfig struct {
	Name        string
	States      []State
	Alphabet    []Symbol
	Start       State
	Final       []State
	Transitions []Transition

	// AllowRedefinition makes a later transition with the same (from, trigger) replace an earlier one.
	// When false such a redefinition is rejected with ErrDuplicateTransition.
	AllowRedefinition bool
}

// Definition is an immutable pushdown automaton.
// It is safe to share across concurrent simulation runs.
type Definition struct {
	name     string
	states   []State
	stateSet map[State]struct{}
	alphabet []Symbol
	alphaSet map[Symbol]struct{}
	start    State
	final    []State
	finalSet map[State]struct{}
	table    Table
}

// NewDefinition validates cfg and builds a Definition.
func NewDefinition(cfg DefinitionConfig) (*Definition, error) {
	d := &Definition{
		name:     cfg.Name,
		stateSet: make(map[State]struct{}, len(cfg.States)),
		alphaSet: make(map[Symbol]struct{}, len(cfg.Alphabet)),
		finalSet: make(map[State]struct{}, len(cfg.Final)),
		start:    cfg.Start,
		table:    newTable(),
	}

	for _, s := range cfg.States {
		if s == "" {
			return nil, fmt.Errorf("%w: empty state name", ErrInvalidDefinition)
		}
		if _, dup := d.stateSet[s]; dup {
			continue
		}
		d.stateSet[s] = struct{}{}
		d.states = append(d.states, s)
	}
	if len(d.states) == 0 {
		return nil, fmt.Errorf("%w: no states declared", ErrInvalidDefinition)
	}

	for _, a := range cfg.Alphabet {
		if a == "" {
			return nil, fmt.Errorf("%w: empty alphabet symbol", ErrInvalidDefinition)
		}
		if _, dup := d.alphaSet[a]; dup {
			continue
		}
		d.alphaSet[a] = struct{}{}
		d.alphabet = append(d.alphabet, a)
	}

	if !d.HasState(cfg.Start) {
		return nil, fmt.Errorf("%w: start state %q is not declared", ErrInvalidDefinition, cfg.Start)
	}

	for _, f := range cfg.Final {
		if !d.HasState(f) {
			return nil, fmt.Errorf("%w: final state %q is not declared", ErrInvalidDefinition, f)
		}
		if _, dup := d.finalSet[f]; dup {
			continue
		}
		d.finalSet[f] = struct{}{}
		d.final = append(d.final, f)
	}

	for _, t := range cfg.Transitions {
		if err := d.checkTransition(t); err != nil {
			return nil, err
		}
		if d.table.put(t) && !cfg.AllowRedefinition {
			return nil, fmt.Errorf("%w: %q on %q", ErrDuplicateTransition, t.From, t.Trigger.String())
		}
	}

	return d, nil
}

func (d *Definition) checkTransition(t Transition) error {
	if !d.HasState(t.From) {
		return fmt.Errorf("%w: transition from undeclared state %q", ErrInvalidDefinition, t.From)
	}
	if !d.HasState(t.To) {
		return fmt.Errorf("%w: transition to undeclared state %q", ErrInvalidDefinition, t.To)
	}
	if sym, ok := t.Trigger.Symbol(); ok && !d.InAlphabet(sym) {
		return fmt.Errorf("%w: trigger %q of %q is not in the alphabet", ErrInvalidDefinition, sym, t.From)
	}
	for _, term := range []Term{t.Trigger, t.Pop, t.Push} {
		if sym, ok := term.Symbol(); ok && sym == "" {
			return fmt.Errorf("%w: empty symbol in transition from %q", ErrInvalidDefinition, t.From)
		}
	}
	return nil
}

// Name is a descriptive label (usually the source file name).
func (d *Definition) Name() string { return d.name }

// Start returns the start state.
func (d *Definition) Start() State { return d.start }

// States returns the declared states in declaration order.
func (d *Definition) States() []State { return slices.Clone(d.states) }

// Alphabet returns the input alphabet in declaration order.
func (d *Definition) Alphabet() []Symbol { return slices.Clone(d.alphabet) }

// FinalStates returns the accepting states in declaration order.
func (d *Definition) FinalStates() []State { return slices.Clone(d.final) }

// Transitions returns every transition in declaration order.
func (d *Definition) Transitions() []Transition { return d.table.All() }

// HasState reports whether s is declared.
func (d *Definition) HasState(s State) bool {
	_, ok := d.stateSet[s]
	return ok
}

// IsFinal reports whether s is an accepting state.
func (d *Definition) IsFinal(s State) bool {
	_, ok := d.finalSet[s]
	return ok
}

// InAlphabet reports whether sym belongs to the input alphabet.
func (d *Definition) InAlphabet(sym Symbol) bool {
	_, ok := d.alphaSet[sym]
	return ok
}

// Lookup returns the transition for (from, trigger), if any.
func (d *Definition) Lookup(from State, trigger Term) (Transition, bool) {
	return d.table.Lookup(from, trigger)
}

// Reachable returns the states reachable from the start state, in BFS order.
func (d *Definition) Reachable() []State {
	adj := make(map[State][]State)
	for _, t := range d.table.All() {
		adj[t.From] = append(adj[t.From], t.To)
	}

	visited := map[State]bool{d.start: true}
	queue := []State{d.start}
	var order []State
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		for _, next := range adj[cur] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return order
}

// Document is the serializable shape of a Definition.
type Document struct {
	Name        string       `json:"name,omitempty"`
	States      []State      `json:"states"`
	Alphabet    []Symbol     `json:"alphabet"`
	Start       State        `json:"start"`
	Final       []State      `json:"final"`
	Transitions []Transition `json:"transitions"`
}

// Document returns a copy of the definition in serializable form.
func (d *Definition) Document() Document {
	return Document{
		Name:        d.name,
		States:      d.States(),
		Alphabet:    d.Alphabet(),
		Start:       d.start,
		Final:       d.FinalStates(),
		Transitions: d.Transitions(),
	}
}

// MarshalJSON renders the definition in the structured definition format.
func (d *Definition) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Document())
}
