package domain

import "fmt"

// Transition defines a rule to move from one state to another.
// Pop and Push are applied in that order; either may be Epsilon.
type Transition struct {
	From    State `json:"from"`
	Trigger Term  `json:"trigger"`
	Pop     Term  `json:"pop"`
	Push    Term  `json:"push"`
	To      State `json:"to"`
}

// Key identifies the single transition allowed for a (state, trigger) pair.
type Key struct {
	From    State
	Trigger Term
}

// Key returns the lookup key of t.
func (t Transition) Key() Key {
	return Key{From: t.From, Trigger: t.Trigger}
}

func (t Transition) String() string {
	return fmt.Sprintf("%s --%s [%s/%s]--> %s", t.From, t.Trigger, t.Pop, t.Push, t.To)
}

// Table is a partial function from (state, trigger) to transition.
// It is read-only once built by NewDefinition.
type Table struct {
	rules map[Key]Transition
	order []Key
}

func newTable() Table {
	return Table{rules: make(map[Key]Transition)}
}

// put stores t, reporting whether the key already existed.
func (tb *Table) put(t Transition) bool {
	k := t.Key()
	_, exists := tb.rules[k]
	if !exists {
		tb.order = append(tb.order, k)
	}
	tb.rules[k] = t
	return exists
}

// Lookup returns the transition for (from, trigger). Epsilon and symbol triggers never alias.
func (tb Table) Lookup(from State, trigger Term) (Transition, bool) {
	t, ok := tb.rules[Key{From: from, Trigger: trigger}]
	return t, ok
}

// Len returns the number of transitions.
func (tb Table) Len() int {
	return len(tb.order)
}

// All returns the transitions in declaration order.
func (tb Table) All() []Transition {
	out := make([]Transition, 0, len(tb.order))
	for _, k := range tb.order {
		out = append(out, tb.rules[k])
	}
	return out
}
