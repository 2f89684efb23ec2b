package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/pushdown/pkg/domain"
)

// DescribeMarkdown renders a definition as a markdown document.
func DescribeMarkdown(def *domain.Definition) string {
	var sb strings.Builder

	name := def.Name()
	if name == "" {
		name = "pushdown automaton"
	}
	fmt.Fprintf(&sb, "# %s\n\n", name)

	fmt.Fprintf(&sb, "- **Start:** `%s`\n", def.Start())
	fmt.Fprintf(&sb, "- **Accepting:** %s\n", codeList(statesToStrings(def.FinalStates())))
	fmt.Fprintf(&sb, "- **States:** %s\n", codeList(statesToStrings(def.States())))
	alphabet := make([]string, 0, len(def.Alphabet()))
	for _, s := range def.Alphabet() {
		alphabet = append(alphabet, string(s))
	}
	fmt.Fprintf(&sb, "- **Alphabet:** %s\n\n", codeList(alphabet))

	sb.WriteString("## Transitions\n\n")
	sb.WriteString("| From | Trigger | Pop | Push | To |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, t := range def.Transitions() {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n", t.From, t.Trigger, t.Pop, t.Push, t.To)
	}
	return sb.String()
}

func statesToStrings(states []domain.State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	return out
}

func codeList(items []string) string {
	if len(items) == 0 {
		return "_none_"
	}
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = "`" + it + "`"
	}
	return strings.Join(quoted, ", ")
}
