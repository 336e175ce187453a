package partition_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rewardroute/bnb"
	"github.com/katalvlaran/rewardroute/core"
	"github.com/katalvlaran/rewardroute/dijkstra"
	"github.com/katalvlaran/rewardroute/internal/sample"
	"github.com/katalvlaran/rewardroute/partition"
)

// setup reduces g to {start} ∪ rewards.
func setup(t testing.TB, g *core.Graph, start int) (*dijkstra.Table, []int) {
	t.Helper()
	var rewards []int
	for _, id := range g.RewardNodes() {
		if id != start {
			rewards = append(rewards, id)
		}
	}
	tbl, err := dijkstra.Distances(g, append([]int{start}, rewards...))
	require.NoError(t, err)

	return tbl, rewards
}

// naive tries every split with two fresh optimiser calls and no memoisation.
func naive(t *testing.T, tbl *dijkstra.Table, start int, rewards, weights []int, b1, b2 int) int {
	t.Helper()
	best := 0
	for m := 0; m < 1<<len(rewards); m++ {
		a, b := []int{start}, []int{start}
		for i, id := range rewards {
			if m&(1<<i) != 0 {
				a = append(a, id)
			} else {
				b = append(b, id)
			}
		}
		ra, err := bnb.Optimize(tbl, a, weights, b1, bnb.WithBound(bnb.NoBound))
		require.NoError(t, err)
		rb, err := bnb.Optimize(tbl, b, weights, b2, bnb.WithBound(bnb.NoBound))
		require.NoError(t, err)
		if ra.Score+rb.Score > best {
			best = ra.Score + rb.Score
		}
	}

	return best
}

type SearchSuite struct {
	suite.Suite
	g       *core.Graph
	start   int
	tbl     *dijkstra.Table
	rewards []int
}

func (s *SearchSuite) SetupTest() {
	s.g = sample.Classic()
	start, err := s.g.Lookup(sample.ClassicStart)
	require.NoError(s.T(), err)
	s.start = start
	s.tbl, s.rewards = setup(s.T(), s.g, start)
}

// TestErrors covers the partition-level sentinels and propagation from bnb.
func (s *SearchSuite) TestErrors() {
	ctx := context.Background()
	w := s.g.Weights()

	_, err := partition.Search(ctx, s.tbl, s.start, s.rewards, w, -1, 26)
	require.ErrorIs(s.T(), err, partition.ErrNegativeBudget)

	_, err = partition.Search(ctx, s.tbl, s.start, s.rewards, w, 26, 26, partition.WithWorkers(0))
	require.ErrorIs(s.T(), err, partition.ErrBadWorkers)

	_, err = partition.Search(ctx, s.tbl, s.start, append([]int{s.start}, s.rewards...), w, 26, 26)
	require.ErrorIs(s.T(), err, partition.ErrDuplicateReward)

	many := make([]int, partition.MaxRewards+1)
	for i := range many {
		many[i] = 100 + i
	}
	_, err = partition.Search(ctx, s.tbl, s.start, many, w, 26, 26)
	require.ErrorIs(s.T(), err, partition.ErrTooManyRewards)

	ff, _ := s.g.Lookup("FF")
	_, err = partition.Search(ctx, s.tbl, s.start, []int{ff}, w, 26, 26)
	require.ErrorIs(s.T(), err, bnb.ErrNodeNotInTable)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = partition.Search(cancelled, s.tbl, s.start, s.rewards, w, 26, 26)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestClassicTwoAgents pins the worked example: two agents × 26 → 1707.
func (s *SearchSuite) TestClassicTwoAgents() {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res, err := partition.Search(context.Background(), s.tbl, s.start, s.rewards, s.g.Weights(), 26, 26,
		partition.WithWorkers(4), partition.WithLogger(logger))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1707, res.Score)
	require.Equal(s.T(), res.Score, res.Agents[0].Score+res.Agents[1].Score)
	require.Contains(s.T(), logs.String(), "partition search done")

	// The two routes share only the start.
	seen := map[int]int{}
	for _, a := range res.Agents {
		require.Equal(s.T(), s.start, a.Route[0])
		for _, id := range a.Route[1:] {
			seen[id]++
		}
	}
	for id, c := range seen {
		require.Equalf(s.T(), 1, c, "node %d visited by both agents", id)
	}
}

// TestNilContext runs like context.Background, matching bnb.WithContext(nil).
func (s *SearchSuite) TestNilContext() {
	res, err := partition.Search(nil, s.tbl, s.start, s.rewards, s.g.Weights(), 26, 26, partition.WithWorkers(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1707, res.Score)
}

// TestAtLeastSingleAgent: giving everything to one agent is one of the splits.
func (s *SearchSuite) TestAtLeastSingleAgent() {
	for _, budget := range []int{0, 5, 15, 26, 30} {
		single, err := bnb.Optimize(s.tbl, append([]int{s.start}, s.rewards...), s.g.Weights(), budget)
		require.NoError(s.T(), err)

		res, err := partition.Search(context.Background(), s.tbl, s.start, s.rewards, s.g.Weights(), budget, budget)
		require.NoError(s.T(), err)
		require.GreaterOrEqualf(s.T(), res.Score, single.Score, "budget=%d", budget)
	}
}

// TestNoRewards leaves both agents at the start.
func (s *SearchSuite) TestNoRewards() {
	res, err := partition.Search(context.Background(), s.tbl, s.start, nil, s.g.Weights(), 26, 26)
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Score)
	require.Equal(s.T(), []int{s.start}, res.Agents[0].Route)
	require.Equal(s.T(), []int{s.start}, res.Agents[1].Route)
}

// TestMatchesNaive compares against an unmemoised split loop, with equal and
// unequal budgets and several worker counts.
func (s *SearchSuite) TestMatchesNaive() {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 12; round++ {
		g := sample.Random(rng, 15+rng.Intn(8), rng.Intn(10), 3+rng.Intn(4), 20)
		tbl, rewards := setup(s.T(), g, 0)
		b1, b2 := 6+rng.Intn(15), 6+rng.Intn(15)
		if round%2 == 0 {
			b2 = b1
		}
		want := naive(s.T(), tbl, 0, rewards, g.Weights(), b1, b2)

		for _, workers := range []int{1, 3} {
			res, err := partition.Search(context.Background(), tbl, 0, rewards, g.Weights(), b1, b2,
				partition.WithWorkers(workers), partition.WithBound(bnb.SimpleBound))
			require.NoError(s.T(), err)
			require.Equalf(s.T(), want, res.Score, "round=%d workers=%d", round, workers)

			// Mask and agent routes must agree.
			for i, id := range rewards {
				inA := res.Mask&(1<<uint(i)) != 0
				onA, onB := contains(res.Agents[0].Route, id), contains(res.Agents[1].Route, id)
				require.False(s.T(), onA && !inA)
				require.False(s.T(), onB && inA)
			}
		}
	}
}

func contains(route []int, id int) bool {
	for _, v := range route {
		if v == id {
			return true
		}
	}

	return false
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}
