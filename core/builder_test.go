package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rewardroute/core"
)

func TestBuilder_SortsNamesIntoDenseIDs(t *testing.T) {
	g, err := core.NewBuilder().
		AddNode("CC", 2, "BB").
		AddNode("AA", 0, "BB").
		AddNode("BB", 13, "AA", "CC").
		Build(core.WithSymmetricEdges())
	require.NoError(t, err)

	require.Equal(t, 3, g.N())
	for i, want := range []string{"AA", "BB", "CC"} {
		require.Equal(t, want, g.Name(i))
		id, err := g.Lookup(want)
		require.NoError(t, err)
		require.Equal(t, i, id)
	}
	require.Equal(t, []int{0, 13, 2}, g.Weights())

	nb, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, nb)
}

func TestBuilder_Errors(t *testing.T) {
	_, err := core.NewBuilder().Build()
	require.ErrorIs(t, err, core.ErrEmptyGraph)

	_, err = core.NewBuilder().AddNode("", 1).Build()
	require.ErrorIs(t, err, core.ErrEmptyName)

	_, err = core.NewBuilder().AddNode("AA", -1).Build()
	require.ErrorIs(t, err, core.ErrNegativeWeight)

	_, err = core.NewBuilder().AddNode("AA", 0).AddNode("AA", 1).Build()
	require.ErrorIs(t, err, core.ErrDuplicateNode)

	_, err = core.NewBuilder().AddNode("AA", 0, "ZZ").Build()
	require.ErrorIs(t, err, core.ErrUnknownNode)

	// first error wins even if later calls are valid
	_, err = core.NewBuilder().AddNode("", 0).AddNode("BB", 1).Build()
	require.ErrorIs(t, err, core.ErrEmptyName)

	_, err = core.NewBuilder().AddNode("AA", 0, "BB").AddNode("BB", 0).Build(core.WithSymmetricEdges())
	require.ErrorIs(t, err, core.ErrAsymmetricEdge)
}

func TestBuilder_LookupUnknownName(t *testing.T) {
	g, err := core.NewBuilder().AddNode("AA", 0).Build()
	require.NoError(t, err)

	_, err = g.Lookup("BB")
	require.ErrorIs(t, err, core.ErrUnknownNode)
}
