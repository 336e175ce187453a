// SPDX-License-Identifier: MIT

// Package partition finds the best joint score of two independent agents.
//
// The agents never interact, so for a fixed split (A, B) of the reward nodes
// the joint optimum is best(A, b1) + best(B, b2). Search tries every one of the
// 2^n ordered splits, including those that leave one agent idle.
//
// Implementation:
//  1. Subsets are indexed by bitmask 0..2^n-1 (bit i ↔ rewards[i]).
//  2. best(S, b) is computed once per subset and distinct budget, in parallel
//     chunks on an errgroup worker pool; each job owns its own buffers and the
//     shared distance table is read-only.
//  3. A single pass combines best1[m] + best2[full^m] and keeps the maximum.
//  4. The winning split is re-optimised to recover both routes.
//
// Complexity: O(2^n) single-agent runs per distinct budget, O(2^n) combine.
package partition

import (
	"context"
	"fmt"
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rewardroute/bnb"
	"github.com/katalvlaran/rewardroute/dijkstra"
)

// chunk is the number of subsets evaluated per worker job.
const chunk = 64

// Search returns the best split of rewards between two agents starting at start
// with budgets b1 and b2.
//
// weights is indexed by graph node id. rewards must be distinct, must not
// contain start, and may hold at most MaxRewards ids. Validation of ids against
// the table is delegated to bnb.Optimize. A nil ctx is treated as
// context.Background().
func Search(ctx context.Context, t *dijkstra.Table, start int, rewards []int, weights []int, b1, b2 int, opts ...Option) (Result, error) {
	// 1) Options
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validation
	if cfg.Workers < 1 {
		return Result{}, fmt.Errorf("%w: %d", ErrBadWorkers, cfg.Workers)
	}
	if b1 < 0 || b2 < 0 {
		return Result{}, fmt.Errorf("%w: b1=%d b2=%d", ErrNegativeBudget, b1, b2)
	}
	n := len(rewards)
	if n > MaxRewards {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyRewards, n, MaxRewards)
	}
	seen := make(map[int]struct{}, n+1)
	seen[start] = struct{}{}
	for _, id := range rewards {
		if _, dup := seen[id]; dup {
			return Result{}, fmt.Errorf("%w: %d", ErrDuplicateReward, id)
		}
		seen[id] = struct{}{}
	}

	s := &searcher{
		t:       t,
		start:   start,
		rewards: rewards,
		weights: weights,
		opts:    cfg,
	}
	subsets := 1 << n
	cfg.Logger.Debug("partition search started",
		"rewards", n, "subsets", subsets, "workers", cfg.Workers, "b1", b1, "b2", b2)

	// 3) Per-subset optimum for each distinct budget
	best1, err := s.scores(ctx, b1)
	if err != nil {
		return Result{}, err
	}
	best2 := best1
	if b2 != b1 {
		if best2, err = s.scores(ctx, b2); err != nil {
			return Result{}, err
		}
	}

	// 4) Combine: agent one takes m, agent two the complement
	full := uint32(subsets - 1)
	bestScore, bestMask := -1, uint32(0)
	for m := uint32(0); m <= full; m++ {
		if total := best1[m] + best2[full^m]; total > bestScore {
			bestScore, bestMask = total, m
		}
	}

	// 5) Recover routes for the winning split
	var res Result
	res.Score, res.Mask = bestScore, bestMask
	if res.Agents[0], err = s.optimize(ctx, bestMask, b1); err != nil {
		return Result{}, err
	}
	if res.Agents[1], err = s.optimize(ctx, full^bestMask, b2); err != nil {
		return Result{}, err
	}
	cfg.Logger.Debug("partition search done",
		"score", res.Score, "mask", fmt.Sprintf("%0*b", max(n, 1), res.Mask),
		"agent1", res.Agents[0].Score, "agent2", res.Agents[1].Score)

	return res, nil
}

// searcher carries the inputs shared by every subset job.
type searcher struct {
	t       *dijkstra.Table
	start   int
	rewards []int
	weights []int
	opts    Options
}

// nodes expands mask into a node list with the start first.
func (s *searcher) nodes(mask uint32) []int {
	out := make([]int, 1, 1+bits.OnesCount32(mask))
	out[0] = s.start
	for i, id := range s.rewards {
		if mask&(1<<uint(i)) != 0 {
			out = append(out, id)
		}
	}

	return out
}

// optimize runs the single-agent search on one subset.
func (s *searcher) optimize(ctx context.Context, mask uint32, budget int) (bnb.Result, error) {
	return bnb.Optimize(s.t, s.nodes(mask), s.weights, budget,
		bnb.WithBound(s.opts.Bound), bnb.WithContext(ctx))
}

// scores returns best(S, budget) for every subset S, indexed by mask.
// Each job writes a disjoint range of the result slice.
func (s *searcher) scores(ctx context.Context, budget int) ([]int, error) {
	total := 1 << len(s.rewards)
	out := make([]int, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for lo := 0; lo < total; lo += chunk {
		lo, hi := lo, min(lo+chunk, total)
		g.Go(func() error {
			for m := lo; m < hi; m++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				res, err := s.optimize(gctx, uint32(m), budget)
				if err != nil {
					return fmt.Errorf("partition: subset %d: %w", m, err)
				}
				out[m] = res.Score
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
