package text_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/pushdown/pkg/adapters/text"
	"github.com/aretw0/pushdown/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const anbn = `q0 q1 q2
a b
q0
q2
q0 a lambda A q0

q0 b A lambda q1
q1 b A lambda q1
q1 lambda lambda lambda q2
`

func TestParse_Valid(t *testing.T) {
	def, err := text.Parse(strings.NewReader(anbn), text.WithName("anbn"))
	require.NoError(t, err)

	assert.Equal(t, "anbn", def.Name())
	assert.Equal(t, []domain.State{"q0", "q1", "q2"}, def.States())
	assert.Equal(t, []domain.Symbol{"a", "b"}, def.Alphabet())
	assert.Equal(t, domain.State("q0"), def.Start())
	assert.Equal(t, []domain.State{"q2"}, def.FinalStates())
	assert.Len(t, def.Transitions(), 4)

	tr, ok := def.Lookup("q0", domain.Sym("a"))
	require.True(t, ok)
	assert.True(t, tr.Pop.IsEpsilon())
	assert.Equal(t, domain.Sym("A"), tr.Push)

	eps, ok := def.Lookup("q1", domain.Epsilon)
	require.True(t, ok)
	assert.Equal(t, domain.State("q2"), eps.To)
}

func TestParse_WhitespaceOnlyLinesAreBlank(t *testing.T) {
	src := "q0 q1\na\nq0\nq1\n   \t\nq0 a lambda lambda q1\n\n"
	def, err := text.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, def.Transitions(), 1)
}

func TestParse_FormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine int
		wantErr  error
	}{
		{
			name:     "Short Transition",
			src:      "q0 q1\na\nq0\nq1\nq0 a lambda q1\n",
			wantLine: 5,
		},
		{
			name:     "Long Transition",
			src:      "q0 q1\na\nq0\nq1\nq0 a lambda lambda q1\nq1 a lambda lambda q0 extra\n",
			wantLine: 6,
		},
		{
			name:     "Missing Header",
			src:      "q0 q1\na\n",
			wantLine: 3,
		},
		{
			name:     "Two Start States",
			src:      "q0 q1\na\nq0 q1\nq1\n",
			wantLine: 3,
		},
		{
			name:     "Duplicate Transition",
			src:      "q0 q1\na\nq0\nq1\nq0 a lambda lambda q1\nq0 a lambda lambda q0\n",
			wantLine: 6,
			wantErr:  domain.ErrDuplicateTransition,
		},
		{
			name:    "Undeclared State",
			src:     "q0 q1\na\nq0\nq1\nq0 a lambda lambda q9\n",
			wantErr: domain.ErrInvalidDefinition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := text.Parse(strings.NewReader(tt.src), text.WithName("test.pda"))
			require.Error(t, err)
			assert.Nil(t, def, "no partial definition on failure")
			assert.ErrorIs(t, err, domain.ErrFormat)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			var fe *domain.FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, "test.pda", fe.Source)
			if tt.wantLine > 0 {
				assert.Equal(t, tt.wantLine, fe.Line)
				assert.Contains(t, err.Error(), "test.pda:")
			}
		})
	}
}

func TestParse_AllowRedefinition(t *testing.T) {
	src := "q0 q1\na\nq0\nq1\nq0 a lambda lambda q1\nq0 a lambda lambda q0\n"
	def, err := text.Parse(strings.NewReader(src), text.AllowRedefinition())
	require.NoError(t, err)

	tr, ok := def.Lookup("q0", domain.Sym("a"))
	require.True(t, ok)
	assert.Equal(t, domain.State("q0"), tr.To)
}

func TestWrite_RoundTrip(t *testing.T) {
	def, err := text.Parse(strings.NewReader(anbn))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, text.Write(&buf, def))

	again, err := text.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, def.Transitions(), again.Transitions())
	assert.Equal(t, def.States(), again.States())
}

func TestWrite_RejectsLambdaSymbol(t *testing.T) {
	def, err := domain.NewDefinition(domain.DefinitionConfig{
		States:      []domain.State{"q0"},
		Alphabet:    []domain.Symbol{"lambda"},
		Start:       "q0",
		Transitions: []domain.Transition{{From: "q0", Trigger: domain.Sym("lambda"), To: "q0"}},
	})
	require.NoError(t, err)

	assert.Error(t, text.Write(&bytes.Buffer{}, def))
}

func TestLoader_Load(t *testing.T) {
	def, err := text.NewLoader("../../../testdata/food.pda").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "food.pda", def.Name())
	assert.True(t, def.IsFinal("done"))

	_, err = text.NewLoader("../../../testdata/missing.pda").Load(context.Background())
	assert.Error(t, err)
}
