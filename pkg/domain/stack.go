package domain

// Stack is the pushdown store of a single run.
// Only the simulation engine mutates it.
type Stack struct {
	items []Symbol
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends sym on top.
func (s *Stack) Push(sym Symbol) {
	s.items = append(s.items, sym)
}

// Pop removes the top symbol if it equals expected.
// On mismatch (or an empty stack) the stack is left untouched.
func (s *Stack) Pop(expected Symbol) (Symbol, error) {
	n := len(s.items)
	if n == 0 {
		return "", &StackMismatchError{Expected: expected, Empty: true}
	}
	top := s.items[n-1]
	if top != expected {
		return "", &StackMismatchError{Expected: expected, Top: top}
	}
	s.items[n-1] = ""
	s.items = s.items[:n-1]
	return top, nil
}

// IsEmpty reports whether the stack holds no symbols.
func (s *Stack) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the stack depth.
func (s *Stack) Len() int {
	return len(s.items)
}

// Snapshot copies the stack contents, bottom first.
func (s *Stack) Snapshot() []Symbol {
	out := make([]Symbol, len(s.items))
	copy(out, s.items)
	return out
}
