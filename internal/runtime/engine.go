package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/pushdown/pkg/domain"
)

// Engine is the core pushdown automaton runner.
// It holds no per-run state, so Check may be called concurrently.
type Engine struct {
	def          *domain.Definition
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	epsilonLimit int
}

// NewEngine creates a new engine bound to an immutable definition.
func NewEngine(def *domain.Definition, opts ...EngineOption) *Engine {
	e := &Engine{
		def:          def,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		epsilonLimit: DefaultEpsilonLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Definition returns the definition the engine runs.
func (e *Engine) Definition() *domain.Definition {
	return e.def
}

// Check tokenizes input on whitespace and simulates the automaton on it.
func (e *Engine) Check(ctx context.Context, input string) domain.Result {
	return e.CheckSymbols(ctx, domain.Tokenize(input))
}

// CheckSymbols simulates the automaton on an already tokenized input.
// It never fails: local errors become a rejected Result carrying the trace so far.
func (e *Engine) CheckSymbols(ctx context.Context, input []domain.Symbol) domain.Result {
	r := &run{
		engine: e,
		ctx:    ctx,
		state:  e.def.Start(),
		input:  append([]domain.Symbol(nil), input...),
		stack:  domain.NewStack(),
		guard:  newEpsilonGuard(e.epsilonLimit),
	}

	var failure error
	for _, phase := range domain.Phases {
		if err := r.runPhase(phase); err != nil {
			failure = err
			e.logger.Debug("Run rejected", "phase", phase.String(), "state", string(r.state), "err", err)
			if e.hooks.OnReject != nil {
				e.hooks.OnReject(ctx, &domain.RejectEvent{Phase: phase, Err: err, Trace: r.traceCopy()})
			}
			break
		}
	}

	res := domain.Result{
		Trace:     r.trace,
		State:     r.state,
		Stack:     r.stack.Snapshot(),
		Remaining: r.input,
	}
	if failure != nil {
		res.Err = failure
	} else if r.stack.IsEmpty() && e.def.IsFinal(r.state) && len(r.input) == 0 {
		res.Accepted = true
	} else {
		res.Err = fmt.Errorf("%w: ended in %q (final=%t) with stack depth %d and %d unread symbols",
			domain.ErrNotAccepted, r.state, e.def.IsFinal(r.state), r.stack.Len(), len(r.input))
	}
	if res.Trace == nil {
		res.Trace = []domain.Step{}
	}

	e.logger.Debug("Run finished", "accepted", res.Accepted, "steps", len(res.Trace), "state", string(res.State))
	if e.hooks.OnComplete != nil {
		e.hooks.OnComplete(ctx, &domain.RunEvent{Input: input, Result: res})
	}
	return res
}

// run is the mutable state of a single Check call.
type run struct {
	engine *Engine
	ctx    context.Context
	state  domain.State
	input  []domain.Symbol
	stack  *domain.Stack
	trace  []domain.Step
	guard  *epsilonGuard
}

func (r *run) runPhase(phase domain.Phase) error {
	switch phase {
	case domain.PhaseConsume:
		return r.consume()
	case domain.PhaseClosure:
		return r.closure()
	case domain.PhaseDrain:
		return r.drain()
	}
	return fmt.Errorf("unknown phase %v", phase)
}

// consume reads input until it runs out or an accepting state is reached.
// A missing symbol transition falls back to epsilon, leaving the pending symbol unread.
func (r *run) consume() error {
	def := r.engine.def
	for len(r.input) > 0 && !def.IsFinal(r.state) {
		s := r.input[0]
		if !def.InAlphabet(s) {
			return &domain.InvalidSymbolError{Symbol: s}
		}
		if t, ok := def.Lookup(r.state, domain.Sym(s)); ok {
			if err := r.apply(domain.PhaseConsume, domain.Sym(s), t); err != nil {
				return err
			}
			r.input = r.input[1:]
			continue
		}
		t, ok := def.Lookup(r.state, domain.Epsilon)
		if !ok {
			return &domain.NoTransitionError{State: r.state, Trigger: domain.Sym(s)}
		}
		if err := r.apply(domain.PhaseConsume, domain.Epsilon, t); err != nil {
			return err
		}
	}
	return nil
}

// closure follows epsilon transitions until an accepting state or a dead end.
func (r *run) closure() error {
	def := r.engine.def
	for !def.IsFinal(r.state) {
		t, ok := def.Lookup(r.state, domain.Epsilon)
		if !ok {
			return nil
		}
		if err := r.apply(domain.PhaseClosure, domain.Epsilon, t); err != nil {
			return err
		}
	}
	return nil
}

// drain consumes leftover input with symbol transitions only.
// An unmatched symbol ends the phase; the acceptance check rejects the leftover.
func (r *run) drain() error {
	def := r.engine.def
	for len(r.input) > 0 {
		s := r.input[0]
		if !def.InAlphabet(s) {
			return &domain.InvalidSymbolError{Symbol: s}
		}
		t, ok := def.Lookup(r.state, domain.Sym(s))
		if !ok {
			return nil
		}
		if err := r.apply(domain.PhaseDrain, domain.Sym(s), t); err != nil {
			return err
		}
		r.input = r.input[1:]
	}
	return nil
}

// apply performs one transition: pop, push, trace, move.
// Nothing is recorded when the pop fails.
func (r *run) apply(phase domain.Phase, trigger domain.Term, t domain.Transition) error {
	if trigger.IsEpsilon() {
		if err := r.guard.visit(r.state, r.stack); err != nil {
			return err
		}
	} else {
		r.guard.reset()
	}

	if sym, ok := t.Pop.Symbol(); ok {
		if _, err := r.stack.Pop(sym); err != nil {
			return err
		}
	}
	if sym, ok := t.Push.Symbol(); ok {
		r.stack.Push(sym)
	}

	step := domain.Step{From: r.state, Trigger: trigger, To: t.To}
	r.trace = append(r.trace, step)
	r.state = t.To

	if h := r.engine.hooks.OnStep; h != nil {
		remaining := r.input
		if !trigger.IsEpsilon() {
			// the consumed symbol is removed by the caller after a successful apply
			remaining = remaining[1:]
		}
		h(r.ctx, &domain.StepEvent{
			Phase:     phase,
			Step:      step,
			Stack:     r.stack.Snapshot(),
			Remaining: append([]domain.Symbol(nil), remaining...),
		})
	}
	return nil
}

func (r *run) traceCopy() []domain.Step {
	return append([]domain.Step(nil), r.trace...)
}

// epsilonGuard stops runs of consecutive epsilon moves that cannot terminate.
// The table is deterministic, so revisiting a (state, stack) configuration without
// consuming input means the run loops forever.
type epsilonGuard struct {
	limit int
	count int
	seen  map[configKey]struct{}
}

type configKey struct {
	state domain.State
	depth int
	stack string
}

func newEpsilonGuard(limit int) *epsilonGuard {
	return &epsilonGuard{limit: limit}
}

func (g *epsilonGuard) reset() {
	g.count = 0
	g.seen = nil
}

func (g *epsilonGuard) visit(state domain.State, stack *domain.Stack) error {
	g.count++
	if g.limit > 0 && g.count > g.limit {
		return fmt.Errorf("%w: more than %d consecutive epsilon moves", domain.ErrEpsilonCycle, g.limit)
	}

	key := configKey{state: state, depth: stack.Len(), stack: stackKey(stack.Snapshot())}
	if g.seen == nil {
		g.seen = make(map[configKey]struct{})
	}
	if _, dup := g.seen[key]; dup {
		return fmt.Errorf("%w: configuration (%s, depth %d) repeats", domain.ErrEpsilonCycle, state, key.depth)
	}
	g.seen[key] = struct{}{}
	return nil
}

// stackKey encodes the stack exactly: each symbol is prefixed with its length.
func stackKey(stack []domain.Symbol) string {
	var b strings.Builder
	for _, s := range stack {
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte(':')
		b.WriteString(string(s))
	}
	return b.String()
}
