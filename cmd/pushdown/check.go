package main

import (
	"os"
	"strings"

	"github.com/aretw0/pushdown/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <input>...",
	Short: "Check a single input",
	Long:  `Checks the given symbols once. Exits with status 2 when the input is rejected.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engineOpts, err := engineOptions(cmd, nil)
		if err != nil {
			return err
		}
		opts := cli.CheckOptions{EngineOptions: engineOpts}
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Record, _ = cmd.Flags().GetBool("record")

		accepted, err := cli.Check(opts, strings.Join(args, " "))
		if err != nil {
			return err
		}
		if !accepted {
			os.Exit(2)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Bool("json", false, "Print the result as JSON")
	checkCmd.Flags().Bool("record", false, "Persist the run to the run store")
}
