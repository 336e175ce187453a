// SPDX-License-Identifier: MIT
//
// Package dijkstra defines sentinel errors and functional options for the
// distance oracle.

package dijkstra

import (
	"errors"
	"math"
)

// Unreachable marks a pair of targets with no connecting path.
// It is distinct from every legitimate distance, including the zero diagonal.
const Unreachable = math.MaxInt

// Sentinel errors returned by Distances.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoTargets indicates an empty target set.
	ErrNoTargets = errors.New("dijkstra: no target nodes")

	// ErrTargetNotFound indicates a target id outside the graph.
	ErrTargetNotFound = errors.New("dijkstra: target node not found in graph")

	// ErrDuplicateTarget indicates the same id listed twice in the target set.
	ErrDuplicateTarget = errors.New("dijkstra: duplicate target node")

	// ErrBadMethod indicates an unknown search Method.
	ErrBadMethod = errors.New("dijkstra: unknown search method")
)

// Method selects the single-source search used for each target row.
type Method int

const (
	// MethodHeap runs Dijkstra with a binary heap and lazy decrease-key.
	MethodHeap Method = iota

	// MethodBFS runs a FIFO breadth-first search. Valid because every edge costs 1.
	MethodBFS
)

// String returns the lowercase method name.
func (m Method) String() string {
	switch m {
	case MethodHeap:
		return "heap"
	case MethodBFS:
		return "bfs"
	default:
		return "unknown"
	}
}

// ParseMethod maps "heap"/"dijkstra" and "bfs" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "heap", "dijkstra":
		return MethodHeap, nil
	case "bfs":
		return MethodBFS, nil
	default:
		return 0, ErrBadMethod
	}
}

// Options configures Distances.
//
// Method     – single-source search (MethodHeap by default).
// Exhaustive – if true, every search drains its frontier instead of stopping
//
//	once all targets are finalised. Results are identical; only cost differs.
type Options struct {
	Method     Method
	Exhaustive bool
}

// Option represents a functional option for configuring Distances.
type Option func(*Options)

// WithMethod selects the single-source search.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithExhaustive disables the early exit.
func WithExhaustive() Option {
	return func(o *Options) {
		o.Exhaustive = true
	}
}

// DefaultOptions returns MethodHeap with early exit enabled.
func DefaultOptions() Options {
	return Options{
		Method:     MethodHeap,
		Exhaustive: false,
	}
}
