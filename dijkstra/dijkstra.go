// SPDX-License-Identifier: MIT

// Package dijkstra reduces a unit-cost graph to a dense distance table over a
// small set of target nodes.
//
// For every target s, a single-source search runs over the entire graph (not
// just the targets) and records the finalised distance of each other target
// when it leaves the frontier. The search stops as soon as every other target
// is finalised unless WithExhaustive is set.
//
// Complexity:
//
//   - Time:  O(m · (V + E) log V) with MethodHeap, O(m · (V + E)) with MethodBFS,
//     where m = |targets|. The early exit usually cuts this well below the bound.
//   - Space: O(V) scratch per search + O(m²) for the table.
//
// Notes on implementation choices:
//
//   - Scratch slices are indexed by dense node id and reused across rows.
//   - Lazy decrease-key: duplicates are pushed and stale entries skipped on pop.
//   - Pairs never finalised stay at Unreachable; zero is reserved for the diagonal.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/rewardroute/core"
)

// Distances computes the shortest-path table between every pair of targets.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. targets must be non-empty (ErrNoTargets).
//  3. every target must exist in g (ErrTargetNotFound).
//  4. targets must be distinct (ErrDuplicateTarget).
//  5. the Method must be known (ErrBadMethod).
//
// The returned Table is indexed in target order: Table.Node(i) == targets[i].
func Distances(g *core.Graph, targets []int, opts ...Option) (*Table, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	seen := make(map[int]struct{}, len(targets))
	for _, id := range targets {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: %d", ErrTargetNotFound, id)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTarget, id)
		}
		seen[id] = struct{}{}
	}
	if cfg.Method != MethodHeap && cfg.Method != MethodBFS {
		return nil, fmt.Errorf("%w: %d", ErrBadMethod, int(cfg.Method))
	}

	// 3) Allocate the table and a runner whose scratch survives across rows
	t := newTable(targets)
	r := &runner{
		g:       g,
		options: cfg,
		table:   t,
		dist:    make([]int, g.N()),
		visited: make([]bool, g.N()),
	}

	// 4) One search per target row
	for i := range targets {
		if err := r.row(i); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// runner holds the scratch state shared by every row search.
type runner struct {
	g       *core.Graph
	options Options
	table   *Table
	dist    []int  // node id → best-known distance from the current source
	visited []bool // node id → distance finalised
	pq      nodePQ
	queue   []int

	// per-row bookkeeping
	src       int // table index of the current source
	remaining int // targets of this row not yet finalised
}

// row fills table row i.
func (r *runner) row(i int) error {
	r.reset(i)
	if r.remaining == 0 {
		return nil
	}
	switch r.options.Method {
	case MethodBFS:
		return r.runBFS()
	default:
		return r.runHeap()
	}
}

// reset clears scratch and seeds the source.
func (r *runner) reset(i int) {
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.visited[v] = false
	}
	r.src = i
	r.remaining = r.table.Size() - 1
	r.dist[r.table.Node(i)] = 0
	r.pq = r.pq[:0]
	r.queue = r.queue[:0]
}

// finalize marks u as settled at distance d and records it if u is a target.
// It returns true once every target of the row is known and early exit is allowed.
func (r *runner) finalize(u, d int) bool {
	r.visited[u] = true
	j, ok := r.table.Index(u)
	if !ok || j == r.src {
		return false
	}
	r.table.set(r.src, j, d)
	r.remaining--

	return r.remaining == 0 && !r.options.Exhaustive
}

// runHeap is the Dijkstra main loop.
func (r *runner) runHeap() error {
	src := r.table.Node(r.src)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})

	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item; skip stale entries.
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist
		if r.visited[u] {
			continue
		}

		// 2) Settle u; stop once every target is known.
		if r.finalize(u, d) {
			return nil
		}

		// 3) Relax unit edges.
		neighbors, err := r.g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
		}
		for _, v := range neighbors {
			if r.visited[v] || d+1 >= r.dist[v] {
				continue
			}
			r.dist[v] = d + 1
			heap.Push(&r.pq, &nodeItem{id: v, dist: d + 1})
		}
	}

	return nil
}

// runBFS is the FIFO variant: with unit costs, dequeue order equals distance order.
func (r *runner) runBFS() error {
	src := r.table.Node(r.src)
	r.queue = append(r.queue, src)
	r.visited[src] = true

	for head := 0; head < len(r.queue); head++ {
		u := r.queue[head]
		if r.finalize(u, r.dist[u]) {
			return nil
		}

		neighbors, err := r.g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
		}
		for _, v := range neighbors {
			if r.visited[v] {
				continue
			}
			// visited doubles as "enqueued" here; finalize re-marks it on dequeue.
			r.visited[v] = true
			r.dist[v] = r.dist[u] + 1
			r.queue = append(r.queue, v)
		}
	}

	return nil
}

// nodeItem is a heap entry: a node id and its tentative distance.
type nodeItem struct {
	id   int
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by id for determinism.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist == pq[j].dist {
		return pq[i].id < pq[j].id
	}

	return pq[i].dist < pq[j].dist
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
