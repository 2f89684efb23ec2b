package main

import (
	"fmt"

	"github.com/aretw0/pushdown/internal/cli"
	"github.com/aretw0/pushdown/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [definition]",
	Short: "Summarize the automaton",
	Long:  `Prints the states, alphabet, accepting states and transition table as rendered markdown.`,
	Args:  cobra.MaximumNArgs(1),
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

		markdown := tui.DescribeMarkdown(engine.Definition())
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Print(markdown)
			return nil
		}

		rendered, err := tui.NewRenderer()(markdown)
		if err != nil {
			return err
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("raw", false, "Print markdown without terminal styling")
}
