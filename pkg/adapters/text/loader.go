// Package text reads automaton definitions in the line-oriented text format:
//
//	q0 q1 q2            states
//	a b                 input alphabet
//	q0                  start state
//	q2                  accepting states
//	q0 a lambda X q1    from trigger pop push to (zero or more)
//
// The literal "lambda" stands for epsilon in the trigger, pop and push columns.
package text

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/pushdown/pkg/domain"
)

// Lambda is the literal that denotes epsilon in a transition line.
const Lambda = "lambda"

const headerLines = 4

var headerNames = [headerLines]string{"states", "alphabet", "start state", "accepting states"}

// Option configures parsing.
type Option func(*parser)

// AllowRedefinition makes a repeated (from, trigger) pair replace the earlier line
// instead of failing the load.
func AllowRedefinition() Option {
	return func(p *parser) {
		p.allowRedefinition = true
	}
}

// WithName sets the definition name and the source label used in errors.
func WithName(name string) Option {
	return func(p *parser) {
		p.name = name
	}
}

type parser struct {
	name              string
	allowRedefinition bool
}

// Parse reads a whole definition from r.
// Any malformed line fails the load; no partial definition is returned.
func Parse(r io.Reader, opts ...Option) (*domain.Definition, error) {
	p := &parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p.parse(r)
}

func (p *parser) parse(r io.Reader) (*domain.Definition, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var header [headerLines][]string
	cfg := domain.DefinitionConfig{
		Name:              p.name,
		AllowRedefinition: p.allowRedefinition,
	}
	firstSeen := make(map[domain.Key]int)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())

		if lineNo <= headerLines {
			header[lineNo-1] = fields
			continue
		}

		if len(fields) == 0 {
			continue
		}
		if len(fields) != 5 {
			return nil, p.errorf(lineNo, "transition needs 5 fields (from trigger pop push to), got %d", len(fields))
		}

		t := domain.Transition{
			From:    domain.State(fields[0]),
			Trigger: parseTerm(fields[1]),
			Pop:     parseTerm(fields[2]),
			Push:    parseTerm(fields[3]),
			To:      domain.State(fields[4]),
		}
		if prev, dup := firstSeen[t.Key()]; dup && !p.allowRedefinition {
			return nil, &domain.FormatError{
				Source: p.name,
				Line:   lineNo,
				Err: fmt.Errorf("%w: %q on %q already defined on line %d",
					domain.ErrDuplicateTransition, t.From, t.Trigger.String(), prev),
			}
		}
		firstSeen[t.Key()] = lineNo
		cfg.Transitions = append(cfg.Transitions, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, &domain.FormatError{Source: p.name, Line: lineNo + 1, Err: err}
	}

	if lineNo < headerLines {
		return nil, p.errorf(lineNo+1, "missing %s line", headerNames[lineNo])
	}
	if len(header[2]) != 1 {
		return nil, p.errorf(3, "start line must name exactly one state, got %d", len(header[2]))
	}

	for _, s := range header[0] {
		cfg.States = append(cfg.States, domain.State(s))
	}
	cfg.Alphabet = domain.Symbols(header[1]...)
	cfg.Start = domain.State(header[2][0])
	for _, s := range header[3] {
		cfg.Final = append(cfg.Final, domain.State(s))
	}

	def, err := domain.NewDefinition(cfg)
	if err != nil {
		return nil, &domain.FormatError{Source: p.name, Err: err}
	}
	return def, nil
}

func (p *parser) errorf(line int, format string, args ...any) error {
	return &domain.FormatError{Source: p.name, Line: line, Err: fmt.Errorf(format, args...)}
}

func parseTerm(tok string) domain.Term {
	if tok == Lambda {
		return domain.Epsilon
	}
	return domain.Sym(domain.Symbol(tok))
}

// FormatTerm is the inverse of the column parsing: Epsilon becomes "lambda".
func FormatTerm(t domain.Term) string {
	if t.IsEpsilon() {
		return Lambda
	}
	return t.String()
}

// Write renders def in the text format.
// A symbol spelled "lambda" cannot be represented and is reported as an error.
func Write(w io.Writer, def *domain.Definition) error {
	bw := bufio.NewWriter(w)

	states := make([]string, 0)
	for _, s := range def.States() {
		states = append(states, string(s))
	}
	finals := make([]string, 0)
	for _, s := range def.FinalStates() {
		finals = append(finals, string(s))
	}
	fmt.Fprintln(bw, strings.Join(states, " "))
	fmt.Fprintln(bw, domain.JoinSymbols(def.Alphabet()))
	fmt.Fprintln(bw, string(def.Start()))
	fmt.Fprintln(bw, strings.Join(finals, " "))

	for _, t := range def.Transitions() {
		for _, term := range []domain.Term{t.Trigger, t.Pop, t.Push} {
			if sym, ok := term.Symbol(); ok && sym == Lambda {
				return errors.New("symbol \"lambda\" cannot be written in the text format")
			}
		}
		fmt.Fprintf(bw, "%s %s %s %s %s\n",
			t.From, FormatTerm(t.Trigger), FormatTerm(t.Pop), FormatTerm(t.Push), t.To)
	}
	return bw.Flush()
}

// Loader implements ports.DefinitionLoader for a text definition file.
type Loader struct {
	path string
	opts []Option
}

// NewLoader creates a loader for the file at path.
func NewLoader(path string, opts ...Option) *Loader {
	return &Loader{path: path, opts: opts}
}

// Load reads and parses the file.
func (l *Loader) Load(ctx context.Context) (*domain.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open definition: %w", err)
	}
	defer f.Close()

	opts := append([]Option{WithName(filepath.Base(l.path))}, l.opts...)
	return Parse(f, opts...)
}
