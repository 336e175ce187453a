// SPDX-License-Identifier: MIT

// Package bnb finds the best visiting order for a single agent with a time budget.
//
// The agent starts at nodes[0] with budget R. Moving from cur to v costs
// D[cur][v]+1 (travel plus a one-unit activation delay) and is allowed only
// when that cost is strictly below the remaining budget. The node then pays
// W[v] times the time left after activation.
//
// Search:
//  1. The node list is copied into a scratch buffer of table indices; buf[0] is
//     the start and buf[0:depth+1] is always the current route.
//  2. At each depth every later candidate is swapped into buf[depth+1], explored,
//     and swapped back. The swap and its restore share one deferred scope
//     (engine.branch), so the buffer is unchanged on every exit path.
//  3. A branch is cut when the next move is unaffordable, or (SimpleBound) when
//     score + optimistic remainder ≤ incumbent. Both cuts are exact.
//
// Complexity:
//   - Worst case O(n!) expansions for n candidates; the budget cut keeps real
//     instances (≲16 rewards, tight budgets) small.
//   - Memory: O(n) for the buffer and incumbent route.
package bnb

import (
	"fmt"

	"github.com/katalvlaran/rewardroute/dijkstra"
)

// Optimize returns the maximum reward and one route achieving it.
//
// nodes[0] is the start; the rest are candidates, each visited at most once.
// weights is indexed by graph node id; the start's weight is ignored.
// The caller's slices are never modified, so one Table may serve many
// concurrent calls.
//
// Errors (in order): ErrNilTable, ErrEmptyNodes, ErrNegativeBudget,
// ErrBadBound, ErrNodeNotInTable, ErrDuplicateNode, ErrWeightsTooShort,
// ErrNegativeWeight; ctx.Err() if the context is cancelled mid-search.
func Optimize(t *dijkstra.Table, nodes []int, weights []int, budget int, opts ...Option) (Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	buf, w, err := prepare(t, nodes, weights, budget)
	if err != nil {
		return Result{}, err
	}
	if cfg.Bound != NoBound && cfg.Bound != SimpleBound {
		return Result{}, fmt.Errorf("%w: %d", ErrBadBound, int(cfg.Bound))
	}
	if err = cfg.Ctx.Err(); err != nil {
		return Result{}, err
	}

	// 3) Engine
	e := engine{
		t:        t,
		buf:      buf,
		w:        w,
		useBound: cfg.Bound == SimpleBound,
		opts:     cfg,
		best:     0,
		bestLen:  1,
		bestBuf:  make([]int, len(buf)),
	}
	e.bestBuf[0] = buf[0]

	// 4) Search
	e.dfs(0, budget, 0)
	if e.err != nil {
		return Result{}, e.err
	}

	// 5) Translate table indices back to graph ids
	route := make([]int, e.bestLen)
	for k := 0; k < e.bestLen; k++ {
		route[k] = t.Node(e.bestBuf[k])
	}

	return Result{Score: e.best, Route: route}, nil
}

// Evaluate scores a fixed route under the same rules as Optimize.
// route[0] is the start. A step the budget cannot pay for yields ErrInfeasibleRoute.
func Evaluate(t *dijkstra.Table, route []int, weights []int, budget int) (int, error) {
	buf, w, err := prepare(t, route, weights, budget)
	if err != nil {
		return 0, err
	}

	score, remaining := 0, budget
	for k := 1; k < len(buf); k++ {
		d := t.At(buf[k-1], buf[k])
		if d == dijkstra.Unreachable || d+1 >= remaining {
			return 0, fmt.Errorf("%w: step %d→%d at remaining=%d", ErrInfeasibleRoute, route[k-1], route[k], remaining)
		}
		remaining -= d + 1
		score += w[buf[k]] * remaining
	}

	return score, nil
}

// prepare validates inputs and returns the scratch buffer (table indices)
// and weights re-indexed by table index.
func prepare(t *dijkstra.Table, nodes []int, weights []int, budget int) ([]int, []int, error) {
	if t == nil {
		return nil, nil, ErrNilTable
	}
	if len(nodes) == 0 {
		return nil, nil, ErrEmptyNodes
	}
	if budget < 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}

	buf := make([]int, len(nodes))
	w := make([]int, t.Size())
	seen := make([]bool, t.Size())
	for k, id := range nodes {
		i, ok := t.Index(id)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %d", ErrNodeNotInTable, id)
		}
		if seen[i] {
			return nil, nil, fmt.Errorf("%w: %d", ErrDuplicateNode, id)
		}
		seen[i] = true
		if id < 0 || id >= len(weights) {
			return nil, nil, fmt.Errorf("%w: node %d, len(weights)=%d", ErrWeightsTooShort, id, len(weights))
		}
		if weights[id] < 0 {
			return nil, nil, fmt.Errorf("%w: node %d weight=%d", ErrNegativeWeight, id, weights[id])
		}
		buf[k] = i
		if k > 0 {
			w[i] = weights[id]
		}
	}

	return buf, w, nil
}

// engine holds the search state for one Optimize call.
type engine struct {
	t        *dijkstra.Table
	buf      []int // scratch permutation of table indices; buf[0] fixed at start
	w        []int // table index → weight (0 for the start)
	useBound bool
	opts     Options

	steps int
	err   error

	// incumbent
	best    int
	bestLen int
	bestBuf []int
}

// cancelled polls the context every 4096 expansions.
func (e *engine) cancelled() bool {
	if e.err != nil {
		return true
	}
	e.steps++
	if e.steps&4095 != 0 {
		return false
	}
	e.err = e.opts.Ctx.Err()

	return e.err != nil
}

// dfs explores every extension of buf[0:depth+1] with budget time left and
// score already collected.
func (e *engine) dfs(depth, budget, score int) {
	if e.cancelled() {
		return
	}

	// Stopping here is always allowed, so every prefix is a candidate answer.
	if score > e.best {
		e.best = score
		e.bestLen = depth + 1
		copy(e.bestBuf, e.buf[:depth+1])
	}

	if budget <= 0 || depth == len(e.buf)-1 {
		return
	}
	if e.useBound && score+e.optimistic(depth, budget) <= e.best {
		return
	}

	cur := e.buf[depth]
	for i := depth + 1; i < len(e.buf); i++ {
		v := e.buf[i]
		d := e.t.At(cur, v)
		if d == dijkstra.Unreachable || d+1 >= budget {
			continue
		}
		left := budget - d - 1
		e.branch(depth+1, i, left, score+e.w[v]*left)
	}
}

// branch moves candidate buf[i] into buf[pos], explores it, and restores
// the original order before returning.
func (e *engine) branch(pos, i, budget, score int) {
	e.buf[pos], e.buf[i] = e.buf[i], e.buf[pos]
	defer func() { e.buf[pos], e.buf[i] = e.buf[i], e.buf[pos] }()

	e.dfs(pos, budget, score)
}

// optimistic bounds the reward still collectible from buf[depth] with budget
// left: every unvisited node is credited as if reached directly. Shortest-path
// distances obey the triangle inequality, so no real route arrives earlier.
func (e *engine) optimistic(depth, budget int) int {
	cur := e.buf[depth]
	total := 0
	for _, v := range e.buf[depth+1:] {
		d := e.t.At(cur, v)
		if d == dijkstra.Unreachable || d+1 >= budget {
			continue
		}
		total += e.w[v] * (budget - d - 1)
	}

	return total
}
