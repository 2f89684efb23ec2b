// Package suite runs tables of expected verdicts against a definition.
//
// A suite file is YAML:
//
//	definition: food.pda    # relative to the suite file
//	cases:
//	  - {input: "bowl", accept: true}
//	  - {input: "sandwich", accept: false}
package suite

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/pushdown/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Case is one input and its expected verdict.
type Case struct {
	Input  string `yaml:"input" json:"input"`
	Accept bool   `yaml:"accept" json:"accept"`
}

// Suite is a parsed suite file.
type Suite struct {
	Definition string `yaml:"definition" json:"definition"`
	Cases      []Case `yaml:"cases" json:"cases"`

	dir string
}

// DefinitionPath resolves Definition against the directory of the suite file.
func (s *Suite) DefinitionPath() string {
	if s.Definition == "" || filepath.IsAbs(s.Definition) {
		return s.Definition
	}
	return filepath.Join(s.dir, s.Definition)
}

// Load reads a suite file. Unknown keys are rejected.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes a suite document.
func Parse(data []byte) (*Suite, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty suite")
		}
		return nil, fmt.Errorf("failed to parse suite: %w", err)
	}
	return &s, nil
}

// Checker is the part of an engine a suite needs.
type Checker interface {
	Check(ctx context.Context, input string) domain.Result
}

// Outcome pairs a case with the verdict it produced.
type Outcome struct {
	Case   Case          `json:"case"`
	Result domain.Result `json:"result"`
}

// Passed reports whether the verdict matches the expectation.
func (o Outcome) Passed() bool {
	return o.Case.Accept == o.Result.Accepted
}

// Report is the outcome of a whole suite.
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
}

// Failures returns the outcomes whose verdict did not match.
func (r *Report) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.Passed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Passed reports whether every case matched.
func (r *Report) Passed() bool {
	return len(r.Failures()) == 0
}

// Run checks every case in order.
func Run(ctx context.Context, c Checker, cases []Case) *Report {
	report := &Report{Outcomes: make([]Outcome, 0, len(cases))}
	for _, tc := range cases {
		report.Outcomes = append(report.Outcomes, Outcome{Case: tc, Result: c.Check(ctx, tc.Input)})
	}
	return report
}

// Write prints one block per mismatch followed by a summary line.
func (r *Report) Write(w io.Writer) error {
	for _, o := range r.Failures() {
		if _, err := fmt.Fprintf(w, "Expected (%t) got (%t) for:\n%s\n", o.Case.Accept, o.Result.Accepted, o.Case.Input); err != nil {
			return err
		}
		if reason := o.Result.Reason(); reason != "" {
			if _, err := fmt.Fprintf(w, "  reason: %s\n", reason); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	failed := len(r.Failures())
	_, err := fmt.Fprintf(w, "%d/%d cases passed\n", len(r.Outcomes)-failed, len(r.Outcomes))
	return err
}
