/*
Package domain contains the core domain models of the pushdown automaton engine.

It defines the fundamental entities of the machine: symbols, the stack, the transition
table and the immutable Definition that bundles them. This package is kept pure and free
of external dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Term: either a concrete Symbol or Epsilon (no symbol consumed, popped or pushed).
  - Transition: (From, Trigger) -> (Pop, Push, To). At most one per (From, Trigger).
  - Definition: states, alphabet, start state, accepting states and the transition table.
  - Stack: LIFO of symbols with an expectation-checked Pop.
  - Result: acceptance verdict plus the ordered trace of applied transitions.
*/
package domain
