package domain

import (
	"encoding/json"
	"strings"
)

// Symbol is a token of the input alphabet or of the stack alphabet.
type Symbol string

// State identifies a node of the automaton.
type State string

// EpsilonLiteral is how Epsilon is displayed. It is never parsed back into a Term.
const EpsilonLiteral = "λ"

// Term is either a concrete Symbol or Epsilon.
// The zero value is Epsilon, so a Transition that omits Pop or Push is a no-op on the stack.
type Term struct {
	sym   Symbol
	valid bool
}

// Epsilon is the Term that consumes, pops or pushes nothing.
var Epsilon = Term{}

// Sym wraps a concrete symbol.
func Sym(s Symbol) Term {
	return Term{sym: s, valid: true}
}

// IsEpsilon reports whether t carries no symbol.
func (t Term) IsEpsilon() bool {
	return !t.valid
}

// Symbol returns the wrapped symbol and true, or ("", false) for Epsilon.
func (t Term) Symbol() (Symbol, bool) {
	return t.sym, t.valid
}

func (t Term) String() string {
	if !t.valid {
		return EpsilonLiteral
	}
	return string(t.sym)
}

// MarshalJSON encodes Epsilon as null and a symbol as a JSON string.
func (t Term) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte("null"), nil
	}
	return json.Marshal(string(t.sym))
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (t *Term) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		*t = Epsilon
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = Sym(Symbol(s))
	return nil
}

// Symbols converts raw tokens to symbols.
func Symbols(tokens ...string) []Symbol {
	out := make([]Symbol, len(tokens))
	for i, tok := range tokens {
		out[i] = Symbol(tok)
	}
	return out
}

// Tokenize splits whitespace-separated input into symbols.
func Tokenize(input string) []Symbol {
	return Symbols(strings.Fields(input)...)
}

// JoinSymbols renders symbols separated by a single space.
func JoinSymbols(syms []Symbol) string {
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}
