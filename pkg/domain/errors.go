package domain

import (
	"errors"
	"fmt"
)

// ErrFormat is returned when a definition source is malformed. Loads fail as a whole.
var ErrFormat = errors.New("malformed definition")

// ErrInvalidDefinition is returned when a definition violates a structural invariant
// (unknown start state, final state outside the state set, ...).
var ErrInvalidDefinition = errors.New("invalid definition")

// ErrDuplicateTransition is returned when two transitions share the same (from, trigger) key.
var ErrDuplicateTransition = errors.New("duplicate transition")

// ErrInvalidSymbol is the cause of a rejection when an input token is outside the alphabet.
var ErrInvalidSymbol = errors.New("symbol not in alphabet")

// ErrNoTransition is the cause of a rejection when neither a symbol nor an epsilon transition applies.
var ErrNoTransition = errors.New("no transition")

// ErrStackMismatch is the cause of a rejection when a pop does not find the expected symbol on top.
var ErrStackMismatch = errors.New("stack mismatch")

// ErrEpsilonCycle is the cause of a rejection when epsilon moves loop without making progress.
var ErrEpsilonCycle = errors.New("epsilon cycle")

// ErrNotAccepted is the cause of a rejection when the run ended without an empty stack,
// an accepting state and fully consumed input.
var ErrNotAccepted = errors.New("input not accepted")

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// FormatError locates a malformed line of a definition source.
type FormatError struct {
	Source string
	Line   int // 1-based, 0 when the error is not tied to a line
	Err    error
}

func (e *FormatError) Error() string {
	switch {
	case e.Source != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	case e.Source != "":
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
	return e.Err.Error()
}

// Unwrap exposes both ErrFormat and the underlying cause to errors.Is.
func (e *FormatError) Unwrap() []error {
	return []error{ErrFormat, e.Err}
}

// InvalidSymbolError reports the offending input token.
type InvalidSymbolError struct {
	Symbol Symbol
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidSymbol, string(e.Symbol))
}

func (e *InvalidSymbolError) Unwrap() error { return ErrInvalidSymbol }

// NoTransitionError reports the state and trigger that had no matching transition.
type NoTransitionError struct {
	State   State
	Trigger Term
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("%v from %q on %q", ErrNoTransition, string(e.State), e.Trigger.String())
}

func (e *NoTransitionError) Unwrap() error { return ErrNoTransition }

// StackMismatchError reports a failed expectation-checked pop.
type StackMismatchError struct {
	Expected Symbol
	Top      Symbol
	Empty    bool
}

func (e *StackMismatchError) Error() string {
	if e.Empty {
		return fmt.Sprintf("%v: expected %q, stack is empty", ErrStackMismatch, string(e.Expected))
	}
	return fmt.Sprintf("%v: expected %q, found %q", ErrStackMismatch, string(e.Expected), string(e.Top))
}

func (e *StackMismatchError) Unwrap() error { return ErrStackMismatch }
