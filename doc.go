/*
Package pushdown simulates deterministic pushdown automata.

A Definition (states, input alphabet, start state, accepting states and a transition
table keyed by (state, trigger)) is loaded once and checked against any number of
inputs, concurrently if needed. Every check returns a Result with the verdict and the
ordered trace of applied transitions, including the prefix taken before a rejection.

# Execution

A run goes through three phases that share a single "apply one transition" step:

  - consume: read input until it is exhausted or an accepting state is reached. When the
    current symbol has no transition, an epsilon transition is taken without consuming it.
  - closure: follow epsilon transitions until an accepting state or a dead end.
  - drain: read leftover input with symbol transitions only.

The input is accepted when the stack is empty, the state is accepting and no input remains.

# Usage

	eng, err := pushdown.New("testdata/food.pda")
	if err != nil {
		log.Fatal(err)
	}

	res := eng.Check(ctx, "bowl rice chicken")
	if res.Accepted {
		for _, step := range res.Trace {
			fmt.Println(step)
		}
	}

Definitions can be written in the line-oriented text format or as YAML/JSON documents;
New picks the format from the file extension. Use WithLoader to supply one from
elsewhere, or NewFromDefinition for a definition built in code (see pkg/dsl).
*/
package pushdown
