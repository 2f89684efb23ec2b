package main

import (
	"testing"
	"time"

	"github.com/aretw0/pushdown"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagCommand(t *testing.T, flags ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addEngineFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags(flags))
	return cmd
}

func TestEngineOptions_Defaults(t *testing.T) {
	opts, err := engineOptions(newFlagCommand(t), []string{"food.pda"})
	require.NoError(t, err)
	assert.Equal(t, "food.pda", opts.File)
	assert.Equal(t, pushdown.DefaultEpsilonLimit, opts.EpsilonLimit)
	assert.False(t, opts.Debug)
	assert.Empty(t, opts.RedisURL)
}

func TestEngineOptions_Flags(t *testing.T) {
	cmd := newFlagCommand(t,
		"--file", "anbn.yaml",
		"--debug",
		"--epsilon-limit", "5",
		"--allow-redefinition",
		"--runs-dir", "runs",
		"--redis-url", "redis://localhost:6379/1",
		"--redis-ttl", "1h",
	)
	opts, err := engineOptions(cmd, []string{"ignored.pda"})
	require.NoError(t, err)
	assert.Equal(t, "anbn.yaml", opts.File, "--file wins over the argument")
	assert.True(t, opts.Debug)
	assert.Equal(t, 5, opts.EpsilonLimit)
	assert.True(t, opts.AllowRedefinition)
	assert.Equal(t, "runs", opts.RunsDir)
	assert.Equal(t, "redis://localhost:6379/1", opts.RedisURL)
	assert.Equal(t, time.Hour, opts.RedisTTL)
}

func TestEngineOptions_FileRequired(t *testing.T) {
	_, err := engineOptions(newFlagCommand(t), nil)
	assert.Error(t, err)
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"run", "check", "test", "graph", "describe", "validate", "serve", "mcp", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
