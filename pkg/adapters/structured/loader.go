// Package structured reads automaton definitions from YAML or JSON documents.
//
// Unlike the text format, epsilon is spelled as null (or by omitting the key), so any
// string, including "lambda", can be used as a symbol.
package structured

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/pushdown/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefinitionDocument mirrors the on-disk document.
// Optional terms are pointers: nil means epsilon.
type DefinitionDocument struct {
	Name              string               `mapstructure:"name"`
	States            []string             `mapstructure:"states"`
	Alphabet          []string             `mapstructure:"alphabet"`
	Start             string               `mapstructure:"start"`
	Final             []string             `mapstructure:"final"`
	Transitions       []TransitionDocument `mapstructure:"transitions"`
	AllowRedefinition bool                 `mapstructure:"allow_redefinition"`
}

// TransitionDocument is one entry of the transitions list.
type TransitionDocument struct {
	From    string  `mapstructure:"from"`
	Trigger *string `mapstructure:"trigger"`
	Pop     *string `mapstructure:"pop"`
	Push    *string `mapstructure:"push"`
	To      string  `mapstructure:"to"`
}

// Format selects the document syntax.
type Format int

const (
	YAML Format = iota
	JSON
)

// FormatFor picks JSON for ".json" files and YAML otherwise.
func FormatFor(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return JSON
	}
	return YAML
}

// Parse decodes a definition document. source labels errors and names the definition
// when the document has no name of its own.
func Parse(data []byte, format Format, source string) (*domain.Definition, error) {
	var raw map[string]any
	switch format {
	case JSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &domain.FormatError{Source: source, Err: fmt.Errorf("failed to parse json: %w", err)}
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &domain.FormatError{Source: source, Err: fmt.Errorf("failed to parse yaml: %w", err)}
		}
	}
	if raw == nil {
		return nil, &domain.FormatError{Source: source, Err: fmt.Errorf("empty document")}
	}

	var doc DefinitionDocument
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, &domain.FormatError{Source: source, Err: err}
	}

	if doc.Name == "" {
		doc.Name = source
	}

	def, err := domain.NewDefinition(doc.Config())
	if err != nil {
		return nil, &domain.FormatError{Source: source, Err: err}
	}
	return def, nil
}

// Config converts the document to the domain input.
func (doc DefinitionDocument) Config() domain.DefinitionConfig {
	cfg := domain.DefinitionConfig{
		Name:              doc.Name,
		Alphabet:          domain.Symbols(doc.Alphabet...),
		Start:             domain.State(doc.Start),
		AllowRedefinition: doc.AllowRedefinition,
	}
	for _, s := range doc.States {
		cfg.States = append(cfg.States, domain.State(s))
	}
	for _, s := range doc.Final {
		cfg.Final = append(cfg.Final, domain.State(s))
	}
	for _, t := range doc.Transitions {
		cfg.Transitions = append(cfg.Transitions, domain.Transition{
			From:    domain.State(t.From),
			Trigger: term(t.Trigger),
			Pop:     term(t.Pop),
			Push:    term(t.Push),
			To:      domain.State(t.To),
		})
	}
	return cfg
}

func term(s *string) domain.Term {
	if s == nil {
		return domain.Epsilon
	}
	return domain.Sym(domain.Symbol(*s))
}

// Loader implements ports.DefinitionLoader for a YAML or JSON file.
type Loader struct {
	path string
}

// NewLoader creates a loader for the file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and decodes the file.
func (l *Loader) Load(ctx context.Context) (*domain.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	return Parse(data, FormatFor(l.path), filepath.Base(l.path))
}
