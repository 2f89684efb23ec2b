package pushdown

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the release of the module, as recorded in the VERSION file.
var Version = strings.TrimSpace(version)
