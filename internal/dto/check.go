// Package dto holds the wire shapes shared by the JSON-speaking adapters
// (NDJSON runner, HTTP server, MCP server).
package dto

import (
	"github.com/aretw0/pushdown/pkg/domain"
)

// CheckRequest asks for one simulation run.
type CheckRequest struct {
	Input  string `json:"input" mapstructure:"input"`
	Record bool   `json:"record,omitempty" mapstructure:"record"`
}

// CheckResponse is the verdict of one run.
// Trace steps encode epsilon triggers as null.
type CheckResponse struct {
	ID        string          `json:"id,omitempty"`
	Input     string          `json:"input"`
	Accepted  bool            `json:"accepted"`
	Trace     []domain.Step   `json:"trace"`
	State     domain.State    `json:"state"`
	Stack     []domain.Symbol `json:"stack"`
	Remaining []domain.Symbol `json:"remaining"`
	Reason    string          `json:"reason,omitempty"`
}

// FromResult builds a response for input. Nil slices become empty so they encode as [].
func FromResult(input string, res domain.Result) CheckResponse {
	out := CheckResponse{
		Input:     input,
		Accepted:  res.Accepted,
		Trace:     res.Trace,
		State:     res.State,
		Stack:     res.Stack,
		Remaining: res.Remaining,
		Reason:    res.Reason(),
	}
	if out.Trace == nil {
		out.Trace = []domain.Step{}
	}
	if out.Stack == nil {
		out.Stack = []domain.Symbol{}
	}
	if out.Remaining == nil {
		out.Remaining = []domain.Symbol{}
	}
	return out
}

// TraceLines renders each step as "(from, trigger, to)".
func TraceLines(trace []domain.Step) []string {
	lines := make([]string, len(trace))
	for i, s := range trace {
		lines[i] = s.String()
	}
	return lines
}
