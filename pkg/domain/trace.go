package domain

import (
	"fmt"
	"time"
)

// Phase is a stage of a simulation run.
type Phase int

const (
	// PhaseConsume reads input until it runs out or an accepting state is reached,
	// falling back to epsilon transitions without consuming the pending symbol.
	PhaseConsume Phase = iota
	// PhaseClosure follows epsilon transitions until an accepting state or a dead end.
	PhaseClosure
	// PhaseDrain consumes leftover input with symbol transitions only.
	PhaseDrain
)

// Phases lists the stages in execution order.
var Phases = []Phase{PhaseConsume, PhaseClosure, PhaseDrain}

func (p Phase) String() string {
	switch p {
	case PhaseConsume:
		return "consume"
	case PhaseClosure:
		return "closure"
	case PhaseDrain:
		return "drain"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Step is one applied transition in a trace.
type Step struct {
	From    State `json:"from"`
	Trigger Term  `json:"trigger"`
	To      State `json:"to"`
}

func (s Step) String() string {
	return fmt.Sprintf("(%s, %s, %s)", s.From, s.Trigger, s.To)
}

// Result is the outcome of one simulation run.
// Trace is always the prefix of successfully applied transitions, even on rejection.
type Result struct {
	Accepted  bool     `json:"accepted"`
	Trace     []Step   `json:"trace"`
	State     State    `json:"state"`
	Stack     []Symbol `json:"stack"`
	Remaining []Symbol `json:"remaining"`

	// Err is the rejection cause; nil when Accepted.
	Err error `json:"-"`
}

// Reason returns the rejection cause as text, or "" when accepted.
func (r Result) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// RunRecord is a persisted simulation run.
type RunRecord struct {
	ID         string    `json:"id"`
	Definition string    `json:"definition,omitempty"`
	Input      string    `json:"input"`
	Accepted   bool      `json:"accepted"`
	Trace      []Step    `json:"trace"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Clone returns a deep copy of r.
func (r *RunRecord) Clone() *RunRecord {
	c := *r
	c.Trace = append([]Step(nil), r.Trace...)
	return &c
}
