package structured_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/pushdown/pkg/adapters/structured"
	"github.com/aretw0/pushdown/pkg/adapters/text"
	"github.com/aretw0/pushdown/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_YAML(t *testing.T) {
	doc := `
name: lambda-symbol
states: [q0, q1]
alphabet: [lambda, 1]
start: q0
final: [q1]
transitions:
  - {from: q0, trigger: lambda, push: L, to: q0}
  - {from: q0, trigger: "1", pop: L, to: q0}
  - {from: q0, trigger: null, to: q1}
`
	def, err := structured.Parse([]byte(doc), structured.YAML, "inline.yaml")
	require.NoError(t, err)
	assert.Equal(t, "lambda-symbol", def.Name())
	assert.True(t, def.InAlphabet("lambda"))
	assert.True(t, def.InAlphabet("1"), "numbers are weakly typed into symbols")

	lit, ok := def.Lookup("q0", domain.Sym("lambda"))
	require.True(t, ok, "a symbol spelled lambda is an ordinary symbol")
	assert.Equal(t, domain.Sym("L"), lit.Push)

	eps, ok := def.Lookup("q0", domain.Epsilon)
	require.True(t, ok)
	assert.Equal(t, domain.State("q1"), eps.To)
	assert.True(t, eps.Pop.IsEpsilon())
}

func TestParse_JSONRoundTrip(t *testing.T) {
	src, err := text.NewLoader("../../../testdata/food.pda").Load(context.Background())
	require.NoError(t, err)

	data, err := json.Marshal(src)
	require.NoError(t, err)

	def, err := structured.Parse(data, structured.JSON, "food.json")
	require.NoError(t, err)
	assert.Equal(t, src.Transitions(), def.Transitions())
	assert.Equal(t, src.States(), def.States())
	assert.Equal(t, "food.pda", def.Name())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"Bad YAML", "states: [q0", domain.ErrFormat},
		{"Empty Document", "", domain.ErrFormat},
		{"Unknown Key", "states: [q0]\nstart: q0\ncolour: red\n", domain.ErrFormat},
		{"Invalid Definition", "states: [q0]\nstart: q9\n", domain.ErrInvalidDefinition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := structured.Parse([]byte(tt.doc), structured.YAML, "bad.yaml")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrFormat)
		})
	}
}

func TestLoader_MatchesTextFormat(t *testing.T) {
	ctx := context.Background()
	fromYAML, err := structured.NewLoader("../../../testdata/food.yaml").Load(ctx)
	require.NoError(t, err)
	fromText, err := text.NewLoader("../../../testdata/food.pda").Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, "food-order", fromYAML.Name())
	assert.Equal(t, fromText.Transitions(), fromYAML.Transitions())
	assert.Equal(t, fromText.Alphabet(), fromYAML.Alphabet())
	assert.Equal(t, fromText.FinalStates(), fromYAML.FinalStates())
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, structured.JSON, structured.FormatFor("a/b.JSON"))
	assert.Equal(t, structured.YAML, structured.FormatFor("a/b.yml"))
}
