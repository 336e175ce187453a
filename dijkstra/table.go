// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Dense, read-only distance table over a target subset.
// Contract:
//   - Row-major buffer d[i*n+j]; i, j are table indices (positions in Nodes()).
//   - Diagonal is 0; disconnected pairs hold Unreachable.
//   - No mutation after Distances returns; safe for concurrent readers.

package dijkstra

// Table holds shortest-path distances between every pair of target nodes.
type Table struct {
	n     int
	nodes []int       // table index → graph node id
	index map[int]int // graph node id → table index
	d     []int
}

// newTable allocates an n×n table with the diagonal at 0 and everything else Unreachable.
func newTable(nodes []int) *Table {
	n := len(nodes)
	t := &Table{
		n:     n,
		nodes: append([]int(nil), nodes...),
		index: make(map[int]int, n),
		d:     make([]int, n*n),
	}
	for i, id := range t.nodes {
		t.index[id] = i
	}
	for i := range t.d {
		t.d[i] = Unreachable
	}
	for i := 0; i < n; i++ {
		t.d[i*n+i] = 0
	}

	return t
}

// Size returns the number of targets.
func (t *Table) Size() int { return t.n }

// Nodes returns a copy of the graph ids in table order.
func (t *Table) Nodes() []int { return append([]int(nil), t.nodes...) }

// Node returns the graph id at table index i.
func (t *Table) Node(i int) int { return t.nodes[i] }

// Index returns the table index of a graph node id.
func (t *Table) Index(id int) (int, bool) {
	i, ok := t.index[id]

	return i, ok
}

// At returns the distance between table indices i and j.
// It panics if either index is out of range.
func (t *Table) At(i, j int) int { return t.d[i*t.n+j] }

// Between returns the distance between two graph node ids.
// ok is false when either id is not a target.
func (t *Table) Between(u, v int) (dist int, ok bool) {
	i, ok1 := t.index[u]
	j, ok2 := t.index[v]
	if !ok1 || !ok2 {
		return Unreachable, false
	}

	return t.d[i*t.n+j], true
}

// Reachable reports whether graph ids u and v are both targets and connected.
func (t *Table) Reachable(u, v int) bool {
	d, ok := t.Between(u, v)

	return ok && d != Unreachable
}

func (t *Table) set(i, j, dist int) { t.d[i*t.n+j] = dist }
