// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, GraphOption, sentinel errors and the NewGraph constructor.
// Policy:
//   - The Graph is immutable once returned; every input slice is copied.
//   - Node identifiers are dense integers in [0, N).
//   - Edges are unit cost; reward weights are non-negative integers.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and lookups.
var (
	// ErrEmptyGraph indicates that a graph with zero nodes was requested.
	ErrEmptyGraph = errors.New("core: graph has no nodes")

	// ErrShapeMismatch indicates that weights, adjacency or names differ in length.
	ErrShapeMismatch = errors.New("core: weights, adjacency and names must have equal length")

	// ErrNegativeWeight indicates a reward weight below zero.
	ErrNegativeWeight = errors.New("core: negative reward weight")

	// ErrNodeNotFound indicates that a node identifier lies outside [0, N).
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrAsymmetricEdge indicates a→b without b→a while WithSymmetricEdges is set.
	ErrAsymmetricEdge = errors.New("core: edge has no reverse counterpart")

	// ErrEmptyName indicates a node added to a Builder with an empty name.
	ErrEmptyName = errors.New("core: node name is empty")

	// ErrDuplicateNode indicates the same name was added twice to a Builder.
	ErrDuplicateNode = errors.New("core: duplicate node name")

	// ErrUnknownNode indicates a link or lookup referencing an unknown name.
	ErrUnknownNode = errors.New("core: unknown node name")
)

// Graph is an immutable node-weighted graph with unit-cost edges.
//
// Node i has reward weight weights[i] and neighbours adj[i]. Names are optional
// labels; when absent, Name(i) falls back to the decimal identifier.
type Graph struct {
	weights []int
	adj     [][]int
	names   []string
	index   map[string]int
}

// GraphOption configures NewGraph.
type GraphOption func(*graphConfig)

// graphConfig collects construction-time switches.
type graphConfig struct {
	names     []string
	symmetric bool
}

// WithNames attaches a label to every node. len(names) must equal N.
func WithNames(names []string) GraphOption {
	return func(c *graphConfig) { c.names = names }
}

// WithSymmetricEdges rejects any edge a→b whose reverse b→a is absent.
func WithSymmetricEdges() GraphOption {
	return func(c *graphConfig) { c.symmetric = true }
}

// NewGraph validates and copies weights and adjacency into a new Graph.
//
// Validation (in order):
//  1. N > 0 (ErrEmptyGraph).
//  2. len(adj) == len(weights) and, if names are given, len(names) == N (ErrShapeMismatch).
//  3. Every weight ≥ 0 (ErrNegativeWeight).
//  4. Every neighbour id in [0, N) (ErrNodeNotFound).
//  5. With WithSymmetricEdges, every a→b has b→a (ErrAsymmetricEdge).
//
// Complexity: O(N + E) time and space (O(E·deg) for the symmetric check).
func NewGraph(weights []int, adj [][]int, opts ...GraphOption) (*Graph, error) {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(weights)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if len(adj) != n || (cfg.names != nil && len(cfg.names) != n) {
		return nil, fmt.Errorf("%w: weights=%d adj=%d names=%d", ErrShapeMismatch, n, len(adj), len(cfg.names))
	}

	g := &Graph{
		weights: make([]int, n),
		adj:     make([][]int, n),
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: node %d weight=%d", ErrNegativeWeight, i, w)
		}
		g.weights[i] = w
	}
	for i, row := range adj {
		g.adj[i] = make([]int, len(row))
		for k, v := range row {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: edge %d→%d", ErrNodeNotFound, i, v)
			}
			g.adj[i][k] = v
		}
	}

	if cfg.symmetric {
		for u, row := range g.adj {
			for _, v := range row {
				if !contains(g.adj[v], u) {
					return nil, fmt.Errorf("%w: %d→%d", ErrAsymmetricEdge, u, v)
				}
			}
		}
	}

	if cfg.names != nil {
		g.names = make([]string, n)
		g.index = make(map[string]int, n)
		for i, name := range cfg.names {
			if name == "" {
				return nil, fmt.Errorf("%w: node %d", ErrEmptyName, i)
			}
			if _, dup := g.index[name]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
			}
			g.names[i] = name
			g.index[name] = i
		}
	}

	return g, nil
}

func contains(row []int, x int) bool {
	for _, v := range row {
		if v == x {
			return true
		}
	}

	return false
}
