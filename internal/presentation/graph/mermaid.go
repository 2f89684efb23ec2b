package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/pushdown/pkg/domain"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []domain.State
	CurrentState  domain.State
	Accepted      bool
}

// OverlayFromResult marks every state on the trace, plus the state the run stopped in.
func OverlayFromResult(def *domain.Definition, res domain.Result) *GraphOverlay {
	overlay := &GraphOverlay{CurrentState: res.State, Accepted: res.Accepted}
	if len(res.Trace) == 0 {
		overlay.VisitedStates = []domain.State{def.Start()}
		return overlay
	}
	overlay.VisitedStates = append(overlay.VisitedStates, res.Trace[0].From)
	for _, step := range res.Trace {
		overlay.VisitedStates = append(overlay.VisitedStates, step.To)
	}
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies semantic styling:
// - Start: ((Circle))
// - Accepting: (((Double circle)))
// - Default: [Rectangle]
// Edges are labelled "trigger, pop/push"; epsilon edges are dotted.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(def *domain.Definition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, state := range def.States() {
		safeID := sanitizeMermaidID(string(state))

		opener, closer := "[", "]"
		switch {
		case def.IsFinal(state):
			opener, closer = "(((", ")))"
		case state == def.Start():
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(string(state)), closer))
	}

	for _, t := range def.Transitions() {
		from := sanitizeMermaidID(string(t.From))
		to := sanitizeMermaidID(string(t.To))
		label := escapeLabel(EdgeLabel(t))
		if t.Trigger.IsEpsilon() {
			sb.WriteString(fmt.Sprintf("    %s -. \"%s\" .-> %s\n", from, label, to))
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", from, label, to))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of theme
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		if overlay.Accepted {
			sb.WriteString("    classDef current fill:#c8e6c9,stroke:#2e7d32,stroke-width:4px,color:#000;\n")
		} else {
			sb.WriteString("    classDef current fill:#ffcdd2,stroke:#c62828,stroke-width:4px,color:#000;\n")
		}

		seen := make(map[string]bool)
		for _, state := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(string(state))
			if safeID != "" && !seen[safeID] && def.HasState(state) {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(string(overlay.CurrentState))))
		}
	}

	return sb.String()
}

// EdgeLabel renders a transition as "trigger, pop/push".
func EdgeLabel(t domain.Transition) string {
	return fmt.Sprintf("%s, %s/%s", t.Trigger, t.Pop, t.Push)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_", "\"", "_").Replace(id)
	// "end" closes subgraphs in Mermaid
	if strings.EqualFold(s, "end") {
		s = "state_" + s
	}
	return s
}
