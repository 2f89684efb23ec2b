package main

import (
	"fmt"

	"github.com/aretw0/pushdown/internal/cli"
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test <suite.yaml>",
	Short: "Run a table of expected verdicts",
	Long: `Loads a suite file listing inputs and expected verdicts, checks each one and
reports every mismatch. The definition comes from the suite unless --file is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.SuiteOptions{Path: args[0]}
		if cmd.Flags().Changed("file") {
			engineOpts, err := engineOptions(cmd, nil)
			if err != nil {
				return err
			}
			opts.EngineOptions = engineOpts
		} else {
			opts.Debug, _ = cmd.Flags().GetBool("debug")
			opts.EpsilonLimit, _ = cmd.Flags().GetInt("epsilon-limit")
			opts.AllowRedefinition, _ = cmd.Flags().GetBool("allow-redefinition")
		}

		report, err := cli.RunSuite(opts)
		if err != nil {
			return err
		}
		if !report.Passed() {
			return fmt.Errorf("%d of %d cases failed", len(report.Failures()), len(report.Outcomes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}
