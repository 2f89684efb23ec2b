package main

import (
	"fmt"
	"os"

	"github.com/aretw0/pushdown"
	"github.com/aretw0/pushdown/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "pushdown [definition]",
	Short: "Pushdown is a deterministic pushdown automaton simulator",
	Long: `Pushdown loads an automaton definition (text, YAML or JSON) and checks input
against it, printing the verdict and the transition trace.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	addEngineFlags(rootCmd.PersistentFlags())
}

func addEngineFlags(flags *pflag.FlagSet) {
	flags.StringP("file", "f", "", "Definition file (.pda text, .yaml or .json)")
	flags.Bool("debug", false, "Log every transition to stderr")
	flags.Int("epsilon-limit", pushdown.DefaultEpsilonLimit, "Maximum consecutive epsilon moves (0 disables the bound)")
	flags.Bool("allow-redefinition", false, "Let a later text line replace an earlier one for the same state and trigger")
	flags.String("runs-dir", "", "Directory for recorded runs (default: in memory)")
	flags.String("redis-url", "", "Record runs in Redis, e.g. redis://localhost:6379/0")
	flags.Duration("redis-ttl", 0, "Expiry for runs recorded in Redis (0 keeps them)")
}

// engineOptions reads the persistent flags. A positional argument names the definition
// when --file is not given.
func engineOptions(cmd *cobra.Command, args []string) (cli.EngineOptions, error) {
	flags := cmd.Flags()
	file, _ := flags.GetString("file")
	if !flags.Changed("file") && len(args) > 0 {
		file = args[0]
	}
	if file == "" {
		return cli.EngineOptions{}, fmt.Errorf("a definition file is required (--file or first argument)")
	}

	opts := cli.EngineOptions{File: file}
	opts.Debug, _ = flags.GetBool("debug")
	opts.EpsilonLimit, _ = flags.GetInt("epsilon-limit")
	opts.AllowRedefinition, _ = flags.GetBool("allow-redefinition")
	opts.RunsDir, _ = flags.GetString("runs-dir")
	opts.RedisURL, _ = flags.GetString("redis-url")
	opts.RedisTTL, _ = flags.GetDuration("redis-ttl")
	return opts, nil
}
