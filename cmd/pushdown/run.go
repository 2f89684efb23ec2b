package main

import (
	"github.com/aretw0/pushdown/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [definition]",
	Short: "Check input lines interactively",
	Long: `Reads one input per line and prints "accepted" with the trace, or "rejected".
Type "exit" or send EOF to quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engineOpts, err := engineOptions(cmd, args)
		if err != nil {
			return err
		}
		opts := cli.RunOptions{EngineOptions: engineOpts}
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Record, _ = cmd.Flags().GetBool("record")
		opts.Reason, _ = cmd.Flags().GetBool("reason")
		return cli.RunSession(opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().Bool("record", false, "Persist every run to the run store")
	runCmd.Flags().Bool("reason", false, "Print why an input was rejected")

	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
}
