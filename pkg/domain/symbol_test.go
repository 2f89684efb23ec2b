package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerm_EpsilonIsDistinctFromLambdaSymbol(t *testing.T) {
	lambda := Sym("lambda")

	assert.True(t, Epsilon.IsEpsilon())
	assert.False(t, lambda.IsEpsilon())
	assert.NotEqual(t, Epsilon, lambda)

	sym, ok := lambda.Symbol()
	assert.True(t, ok)
	assert.Equal(t, Symbol("lambda"), sym)

	_, ok = Epsilon.Symbol()
	assert.False(t, ok)
}

func TestTerm_ZeroValueIsEpsilon(t *testing.T) {
	var tr Transition
	assert.True(t, tr.Trigger.IsEpsilon())
	assert.True(t, tr.Pop.IsEpsilon())
	assert.True(t, tr.Push.IsEpsilon())
}

func TestTerm_JSON(t *testing.T) {
	step := Step{From: "a", Trigger: Epsilon, To: "b"}
	data, err := json.Marshal(step)
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"a","trigger":null,"to":"b"}`, string(data))

	var back Step
	require.NoError(t, json.Unmarshal([]byte(`{"from":"a","trigger":"bowl","to":"b"}`), &back))
	assert.Equal(t, Sym("bowl"), back.Trigger)

	require.NoError(t, json.Unmarshal([]byte(`{"from":"a","trigger":null,"to":"b"}`), &back))
	assert.True(t, back.Trigger.IsEpsilon())
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []Symbol{"bowl", "rice", "chicken"}, Tokenize("  bowl\trice  chicken \n"))
	assert.Empty(t, Tokenize("   "))
	assert.Equal(t, "bowl rice", JoinSymbols([]Symbol{"bowl", "rice"}))
}
