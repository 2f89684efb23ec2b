/*
Package runner implements the interactive read-check-print loop for the pushdown engine.

It acts as the bridge between the Engine and the outside world: each input line is
sanitized, checked, optionally recorded in the engine's run store, and the verdict is
presented through a pluggable handler.

# Key Components

  - Runner: The loop. It stops on end of input, on "exit" (any case) or when ctx is done.
  - IOHandler: Decouples how lines are read and verdicts are shown.
  - TextHandler: Interactive CLI usage ("> " prompt, "accepted" plus trace, or "rejected").
  - JSONHandler: Newline-delimited JSON for scripts and other programs.

# Usage

	r := runner.NewRunner(
		runner.WithEngine(engine),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
