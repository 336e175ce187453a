// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters on Graph.
// Policy:
//   - No algorithms here; every method is O(1) or O(N).
//   - Returned slices that alias internal state are documented as read-only.

package core

import (
	"fmt"
	"strconv"
)

// N returns the number of nodes.
func (g *Graph) N() int { return len(g.weights) }

// HasNode reports whether id lies in [0, N).
func (g *Graph) HasNode(id int) bool { return id >= 0 && id < len(g.weights) }

// Weight returns the reward weight of id, or 0 when id is out of range.
func (g *Graph) Weight(id int) int {
	if !g.HasNode(id) {
		return 0
	}

	return g.weights[id]
}

// Weights returns a copy of the reward weights indexed by node id.
func (g *Graph) Weights() []int {
	out := make([]int, len(g.weights))
	copy(out, g.weights)

	return out
}

// Neighbors returns the adjacency list of id.
// The slice aliases the graph's storage and must not be modified.
func (g *Graph) Neighbors(id int) ([]int, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return g.adj[id], nil
}

// Name returns the label of id, or its decimal form if the graph is unnamed.
func (g *Graph) Name(id int) string {
	if g.names != nil && g.HasNode(id) {
		return g.names[id]
	}

	return strconv.Itoa(id)
}

// Lookup resolves a label to its node id.
// Unnamed graphs accept the decimal form of an id.
func (g *Graph) Lookup(name string) (int, error) {
	if g.index != nil {
		if id, ok := g.index[name]; ok {
			return id, nil
		}

		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	id, err := strconv.Atoi(name)
	if err != nil || !g.HasNode(id) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	return id, nil
}

// RewardNodes returns, in ascending order, every id with a positive weight.
func (g *Graph) RewardNodes() []int {
	out := make([]int, 0, len(g.weights))
	for id, w := range g.weights {
		if w > 0 {
			out = append(out, id)
		}
	}

	return out
}

// Edges returns the total number of directed adjacency entries.
func (g *Graph) Edges() int {
	total := 0
	for _, row := range g.adj {
		total += len(row)
	}

	return total
}
