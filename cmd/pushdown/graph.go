package main

import (
	"context"
	"fmt"

	"github.com/aretw0/pushdown/internal/cli"
	"github.com/aretw0/pushdown/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [definition]",
	Short: "Export the automaton as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph LR) of the states and transitions.
With --input, the states visited while checking that input are highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := engineOptions(cmd, args)
		if err != nil {
			return err
		}
		engine, closeStore, err := cli.NewEngine(opts, cli.NewLogger(opts.Debug))
		if err != nil {
			return err
		}
		defer closeStore()

		def := engine.Definition()
		var overlay *graph.GraphOverlay
		if cmd.Flags().Changed("input") {
			input, _ := cmd.Flags().GetString("input")
			overlay = graph.OverlayFromResult(def, engine.Check(context.Background(), input))
		}

		fmt.Print(graph.GenerateMermaid(def, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("input", "", "Highlight the run of this input")
}
