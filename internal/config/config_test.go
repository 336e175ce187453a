package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rewardroute/core"
	"github.com/katalvlaran/rewardroute/solver"
)

func TestListScenarios(t *testing.T) {
	require.Equal(t, []string{"classic-pair", "classic-single"}, ListScenarios())
}

func TestLoadScenario(t *testing.T) {
	f, err := LoadScenario("classic-pair")
	require.NoError(t, err)
	require.Equal(t, "AA", f.Start)
	require.Equal(t, 2, f.Agents)
	require.Equal(t, 26, f.Budget)
	require.Equal(t, 4, f.Workers)
	require.Len(t, f.Nodes, 10)

	g, err := f.Graph()
	require.NoError(t, err)
	require.Equal(t, 10, g.N())
	require.Len(t, g.RewardNodes(), 6)

	_, err = LoadScenario("missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "classic-single")
}

func TestParse_DefaultsAndStrictness(t *testing.T) {
	f, err := Parse([]byte("nodes:\n  - {name: A, reward: 0, links: [B]}\n  - {name: B, reward: 4, links: [A]}\n"))
	require.NoError(t, err)
	def := solver.DefaultConfig()
	require.Equal(t, def.Agents, f.Agents)
	require.Equal(t, def.Budget, f.Budget)

	_, err = Parse([]byte("budgett: 3\nnodes:\n  - {name: A}\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = Parse([]byte(""))
	require.ErrorIs(t, err, ErrNoNodes)

	_, err = Parse([]byte("budget: 3\n"))
	require.ErrorIs(t, err, ErrNoNodes)

	_, err = Parse([]byte("agents: 4\nnodes:\n  - {name: A}\n"))
	require.ErrorIs(t, err, solver.ErrBadAgents)
}

func TestGraph_Symmetric(t *testing.T) {
	f, err := Parse([]byte("symmetric: true\nnodes:\n  - {name: A, links: [B]}\n  - {name: B}\n"))
	require.NoError(t, err)
	_, err = f.Graph()
	require.ErrorIs(t, err, core.ErrAsymmetricEdge)
}

func TestLoad_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start: A\nbudget: 4\nnodes:\n  - {name: A, links: [B]}\n  - {name: B, reward: 3, links: [A]}\n"), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, f.Budget)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
