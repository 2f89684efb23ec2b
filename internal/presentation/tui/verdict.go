package tui

import (
	"github.com/muesli/termenv"
)

// Verdict colors "accepted" green and "rejected" red for the given profile.
// termenv.Ascii yields the plain word.
func Verdict(p termenv.Profile, accepted bool) string {
	if accepted {
		return p.String("accepted").Foreground(p.Color("#22c55e")).String()
	}
	return p.String("rejected").Foreground(p.Color("#ef4444")).String()
}
