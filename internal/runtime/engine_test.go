package runtime_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/pushdown/internal/runtime"
	"github.com/aretw0/pushdown/pkg/adapters/text"
	"github.com/aretw0/pushdown/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, name string) *domain.Definition {
	t.Helper()
	f, err := os.Open(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	defer f.Close()

	def, err := text.Parse(f, text.WithName(name))
	require.NoError(t, err)
	return def
}

func parse(t *testing.T, src string) *domain.Definition {
	t.Helper()
	def, err := text.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return def
}

func step(from string, trigger string, to string) domain.Step {
	trig := domain.Epsilon
	if trigger != "λ" {
		trig = domain.Sym(domain.Symbol(trigger))
	}
	return domain.Step{From: domain.State(from), Trigger: trig, To: domain.State(to)}
}

func TestEngine_FoodTraces(t *testing.T) {
	engine := runtime.NewEngine(load(t, "food.pda"))
	ctx := context.Background()

	tests := []struct {
		name      string
		input     string
		accepted  bool
		trace     []domain.Step
		wantErr   error
		remaining []domain.Symbol
	}{
		{
			name:     "Bare Bowl Closes On Epsilon",
			input:    "bowl",
			accepted: true,
			trace:    []domain.Step{step("start", "bowl", "bowl"), step("bowl", "λ", "done")},
		},
		{
			name:      "Epsilon Fallback Leaves Symbol Unread",
			input:     "bowl bowl",
			trace:     []domain.Step{step("start", "bowl", "bowl"), step("bowl", "λ", "done")},
			wantErr:   domain.ErrNotAccepted,
			remaining: []domain.Symbol{"bowl"},
		},
		{
			name:     "Drain Consumes Add-Ons",
			input:    "bowl rice chicken soda",
			accepted: true,
			trace: []domain.Step{
				step("start", "bowl", "bowl"),
				step("bowl", "rice", "bowl_base"),
				step("bowl_base", "chicken", "bowl_protein"),
				step("bowl_protein", "λ", "done"),
				step("done", "soda", "done"),
			},
		},
		{
			name:     "Epsilon Without Stack Operation",
			input:    "sandwich sub beef",
			accepted: true,
			trace: []domain.Step{
				step("start", "sandwich", "sandwich"),
				step("sandwich", "sub", "sandwich_sub"),
				step("sandwich_sub", "λ", "sandwich_bread"),
				step("sandwich_bread", "beef", "sandwich_protein"),
				step("sandwich_protein", "λ", "done"),
			},
		},
		{
			name:    "Dead End Without Epsilon",
			input:   "sandwich",
			trace:   []domain.Step{step("start", "sandwich", "sandwich")},
			wantErr: domain.ErrNotAccepted,
		},
		{
			name:      "No Transition Keeps Prefix",
			input:     "sandwich beef",
			trace:     []domain.Step{step("start", "sandwich", "sandwich")},
			wantErr:   domain.ErrNoTransition,
			remaining: []domain.Symbol{"beef"},
		},
		{
			name:      "Unknown Symbol",
			input:     "pizza",
			trace:     []domain.Step{},
			wantErr:   domain.ErrInvalidSymbol,
			remaining: []domain.Symbol{"pizza"},
		},
		{
			name:  "Unknown Symbol While Draining",
			input: "bowl soda pizza",
			trace: []domain.Step{
				step("start", "bowl", "bowl"),
				step("bowl", "λ", "done"),
				step("done", "soda", "done"),
			},
			wantErr:   domain.ErrInvalidSymbol,
			remaining: []domain.Symbol{"pizza"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := engine.Check(ctx, tt.input)
			assert.Equal(t, tt.accepted, res.Accepted)
			assert.Equal(t, tt.trace, res.Trace)
			if tt.wantErr != nil {
				assert.ErrorIs(t, res.Err, tt.wantErr)
				assert.NotEmpty(t, res.Reason())
			} else {
				assert.NoError(t, res.Err)
				assert.Empty(t, res.Stack)
				assert.Empty(t, res.Remaining)
			}
			if tt.remaining != nil {
				assert.Equal(t, tt.remaining, res.Remaining)
			}
		})
	}
}

func TestEngine_EpsilonOnlyAcceptsEmptyInput(t *testing.T) {
	engine := runtime.NewEngine(load(t, "epsilon.pda"))

	res := engine.Check(context.Background(), "")
	require.True(t, res.Accepted, res.Reason())
	assert.Equal(t, []domain.Step{step("a", "λ", "b"), step("b", "λ", "c")}, res.Trace)

	res = engine.Check(context.Background(), "x")
	assert.False(t, res.Accepted)
	assert.Equal(t, []domain.Symbol{"x"}, res.Remaining, "epsilon fallback never consumes")
	assert.Equal(t, domain.State("c"), res.State)
}

func TestEngine_EpsilonCycle(t *testing.T) {
	engine := runtime.NewEngine(load(t, "epsilon_cycle.pda"))

	res := engine.Check(context.Background(), "")
	assert.False(t, res.Accepted)
	assert.ErrorIs(t, res.Err, domain.ErrEpsilonCycle)
	assert.Equal(t, []domain.Step{step("a", "λ", "b"), step("b", "λ", "a")}, res.Trace)
}

func TestEngine_GrowingEpsilonCycleHitsLimit(t *testing.T) {
	def := parse(t, "q0 q1\na\nq0\nq1\nq0 lambda lambda X q0\n")
	engine := runtime.NewEngine(def, runtime.WithEpsilonLimit(50))

	res := engine.Check(context.Background(), "")
	assert.False(t, res.Accepted)
	assert.ErrorIs(t, res.Err, domain.ErrEpsilonCycle)
	assert.Len(t, res.Trace, 50)
	assert.Len(t, res.Stack, 50)
}

func TestEngine_SymbolResetsEpsilonGuard(t *testing.T) {
	// No accepting state: every "a" is followed by the same epsilon move out of q1.
	def := parse(t, "q0 q1\na\nq0\n\nq0 a lambda lambda q1\nq1 lambda lambda lambda q0\n")
	engine := runtime.NewEngine(def)

	res := engine.Check(context.Background(), "a a a")
	assert.NotErrorIs(t, res.Err, domain.ErrEpsilonCycle)
	assert.Len(t, res.Trace, 6)
}

func TestEngine_StackMismatch(t *testing.T) {
	def := parse(t, "q0 q1\na\nq0\nq1\nq0 a X lambda q1\n")
	engine := runtime.NewEngine(def)

	res := engine.Check(context.Background(), "a")
	assert.False(t, res.Accepted)
	assert.ErrorIs(t, res.Err, domain.ErrStackMismatch)
	assert.Empty(t, res.Trace, "a failed pop records nothing")
	assert.Equal(t, domain.State("q0"), res.State)
	assert.Equal(t, []domain.Symbol{"a"}, res.Remaining)
}

func TestEngine_AcceptanceNeedsEmptyStack(t *testing.T) {
	def := parse(t, "q0 q1\na\nq0\nq1\nq0 a lambda X q1\n")
	engine := runtime.NewEngine(def)

	res := engine.Check(context.Background(), "a")
	assert.False(t, res.Accepted)
	assert.ErrorIs(t, res.Err, domain.ErrNotAccepted)
	assert.Equal(t, domain.State("q1"), res.State)
	assert.Equal(t, []domain.Symbol{"X"}, res.Stack)
}

func TestEngine_Hooks(t *testing.T) {
	var (
		steps     []*domain.StepEvent
		rejects   []*domain.RejectEvent
		completes []*domain.RunEvent
	)
	hooks := domain.LifecycleHooks{
		OnStep:     func(_ context.Context, e *domain.StepEvent) { steps = append(steps, e) },
		OnReject:   func(_ context.Context, e *domain.RejectEvent) { rejects = append(rejects, e) },
		OnComplete: func(_ context.Context, e *domain.RunEvent) { completes = append(completes, e) },
	}
	engine := runtime.NewEngine(load(t, "food.pda"), runtime.WithLifecycleHooks(hooks))
	ctx := context.Background()

	res := engine.Check(ctx, "bowl rice chicken soda")
	require.True(t, res.Accepted)
	require.Len(t, steps, len(res.Trace))
	assert.Empty(t, rejects)
	require.Len(t, completes, 1)
	assert.True(t, completes[0].Result.Accepted)

	assert.Equal(t, domain.PhaseConsume, steps[0].Phase)
	assert.Equal(t, []domain.Symbol{"B"}, steps[0].Stack)
	assert.Equal(t, []domain.Symbol{"rice", "chicken", "soda"}, steps[0].Remaining)
	assert.Equal(t, domain.PhaseConsume, steps[3].Phase, "epsilon fallback happens while consuming")
	assert.Equal(t, []domain.Symbol{"soda"}, steps[3].Remaining)
	assert.Equal(t, domain.PhaseDrain, steps[4].Phase)
	assert.Empty(t, steps[4].Remaining)

	steps, completes = nil, nil
	res = engine.Check(ctx, "bowl")
	require.Len(t, steps, 2)
	assert.Equal(t, domain.PhaseClosure, steps[1].Phase)

	res = engine.Check(ctx, "sandwich beef")
	require.Len(t, rejects, 1)
	assert.Equal(t, domain.PhaseConsume, rejects[0].Phase)
	assert.ErrorIs(t, rejects[0].Err, domain.ErrNoTransition)
	assert.Equal(t, res.Trace, rejects[0].Trace)
}

func TestEngine_HookCannotMutateRun(t *testing.T) {
	hooks := domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			if len(e.Stack) > 0 {
				e.Stack[0] = "Z"
			}
			e.Remaining = nil
		},
	}
	engine := runtime.NewEngine(load(t, "food.pda"), runtime.WithLifecycleHooks(hooks))

	res := engine.Check(context.Background(), "wrap tortilla chicken")
	assert.True(t, res.Accepted, res.Reason())
}

func TestEngine_Deterministic(t *testing.T) {
	engine := runtime.NewEngine(load(t, "food.pda"))
	ctx := context.Background()

	for _, input := range []string{"bowl noodle beef marinara", "wrap lamb", "sandwich sub toasted beef onions cheese"} {
		first := engine.Check(ctx, input)
		second := engine.Check(ctx, input)
		assert.Equal(t, first.Accepted, second.Accepted, input)
		assert.Equal(t, first.Trace, second.Trace, input)
	}
}

func TestEngine_CheckSymbolsDoesNotMutateInput(t *testing.T) {
	engine := runtime.NewEngine(load(t, "food.pda"))
	input := []domain.Symbol{"bowl", "rice"}

	res := engine.CheckSymbols(context.Background(), input)
	assert.True(t, res.Accepted)
	assert.Equal(t, []domain.Symbol{"bowl", "rice"}, input)
	assert.Same(t, engine.Definition(), engine.Definition())
}
