package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/pushdown/pkg/domain"
)

// Validate loads the definition and warns about states that cannot be reached from the
// start state. It returns the unreachable states; only load failures are errors.
func Validate(opts EngineOptions, w io.Writer) ([]domain.State, error) {
	if w == nil {
		w = os.Stdout
	}

	engine, closeStore, err := NewEngine(opts, NewLogger(opts.Debug))
	if err != nil {
		return nil, err
	}
	defer closeStore()

	def := engine.Definition()
	reachable := make(map[domain.State]bool)
	for _, s := range def.Reachable() {
		reachable[s] = true
	}

	var unreachable []domain.State
	for _, s := range def.States() {
		if !reachable[s] {
			unreachable = append(unreachable, s)
			fmt.Fprintf(w, "warning: state %q is unreachable from %q\n", s, def.Start())
		}
	}

	if !hasFinalReachable(def, reachable) {
		fmt.Fprintf(w, "warning: no accepting state is reachable; every input is rejected\n")
	}

	fmt.Fprintf(w, "%s: %d states, %d transitions\n", engine.Name, len(def.States()), len(def.Transitions()))
	return unreachable, nil
}

func hasFinalReachable(def *domain.Definition, reachable map[domain.State]bool) bool {
	for _, s := range def.FinalStates() {
		if reachable[s] {
			return true
		}
	}
	return false
}
