// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Name-based incremental construction of an immutable Graph.
// Determinism:
//   - Build assigns ids in ascending name order, independent of insertion order.

package core

import (
	"fmt"
	"sort"
)

// Builder accumulates named nodes and their links before producing a Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	nodes map[string]builderNode
	err   error
}

type builderNode struct {
	reward int
	links  []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{nodes: make(map[string]builderNode)}
}

// AddNode records a node with its reward weight and outgoing links.
// The first error is retained and surfaced by Build; later calls are no-ops.
func (b *Builder) AddNode(name string, reward int, links ...string) *Builder {
	if b.err != nil {
		return b
	}
	switch {
	case name == "":
		b.err = ErrEmptyName
	case reward < 0:
		b.err = fmt.Errorf("%w: %q weight=%d", ErrNegativeWeight, name, reward)
	default:
		if _, dup := b.nodes[name]; dup {
			b.err = fmt.Errorf("%w: %q", ErrDuplicateNode, name)
			break
		}
		b.nodes[name] = builderNode{reward: reward, links: append([]string(nil), links...)}
	}

	return b
}

// Build resolves link names and returns the Graph.
//
// Steps:
//  1. Surface any error recorded by AddNode.
//  2. Sort names and assign ids 0..N-1 in that order.
//  3. Translate each link to an id (ErrUnknownNode if absent).
//  4. Delegate validation to NewGraph with the given options.
func (b *Builder) Build(opts ...GraphOption) (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	names := make([]string, 0, len(b.nodes))
	for name := range b.nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	ids := make(map[string]int, len(names))
	for i, name := range names {
		ids[name] = i
	}

	weights := make([]int, len(names))
	adj := make([][]int, len(names))
	for i, name := range names {
		node := b.nodes[name]
		weights[i] = node.reward
		adj[i] = make([]int, 0, len(node.links))
		for _, link := range node.links {
			to, ok := ids[link]
			if !ok {
				return nil, fmt.Errorf("%w: %q links to %q", ErrUnknownNode, name, link)
			}
			adj[i] = append(adj[i], to)
		}
	}

	all := make([]GraphOption, 0, len(opts)+1)
	all = append(all, WithNames(names))
	all = append(all, opts...)

	return NewGraph(weights, adj, all...)
}
