// Package file provides filesystem adapters: a definition loader that picks the
// format from the file extension, and a run store that keeps one JSON file per run.
package file

import (
	"path/filepath"
	"strings"

	"github.com/aretw0/pushdown/pkg/adapters/structured"
	"github.com/aretw0/pushdown/pkg/adapters/text"
	"github.com/aretw0/pushdown/pkg/ports"
)

// NewLoader returns a loader for path: ".yaml", ".yml" and ".json" use the
// structured format, anything else the line-oriented text format.
// textOpts only apply to the text format.
func NewLoader(path string, textOpts ...text.Option) ports.DefinitionLoader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return structured.NewLoader(path)
	default:
		return text.NewLoader(path, textOpts...)
	}
}
