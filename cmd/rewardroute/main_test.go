package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// flag variables are package globals and survive between Execute calls
	scenarioList, logLevel = false, "warn"

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

func TestScenario_List(t *testing.T) {
	out, err := execute(t, "scenario", "--list")
	require.NoError(t, err)
	require.Contains(t, out, "classic-pair")
	require.Contains(t, out, "classic-single")
}

func TestScenario_Classic(t *testing.T) {
	out, err := execute(t, "scenario", "classic-single")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "score: 1651\n"), out)
	require.Contains(t, out, "agent 1 (budget 30, score 1651): AA -> ")

	out, err = execute(t, "scenario", "classic-pair")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "score: 1707\n"), out)
	require.Contains(t, out, "agent 2 (budget 26")

	_, err = execute(t, "scenario", "nope")
	require.Error(t, err)
}

func TestSolve_FileWithOverrides(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "internal", "config", "scenarios", "classic-single.yaml"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := execute(t, "solve", "-f", path, "--agents", "2", "--budget", "26", "--workers", "1", "--method", "bfs", "--log-level", "debug")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "score: 1707\n"), out)
}

func TestRoot_BadLogLevel(t *testing.T) {
	_, err := execute(t, "scenario", "--list", "--log-level", "loud")
	require.Error(t, err)
}
