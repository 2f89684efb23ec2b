/*
Package dsl provides a Go DSL for programmatically constructing pushdown automata.

It is a fluent alternative to the text and YAML definition formats, useful for tests,
generated automata and embedding.

Example usage:

	b := dsl.New("anbn").Alphabet("a", "b")

	b.State("q0").Start().
		On("a").Push("A").Go("q0").
		On("b").Pop("A").Go("q1")

	b.State("q1").
		On("b").Pop("A").Go("q1").
		Epsilon().Go("q2")

	b.State("q2").Final()

	def, err := b.Definition()
	// ... pass def to pushdown.NewFromDefinition(...)
*/
package dsl
