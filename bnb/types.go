// SPDX-License-Identifier: MIT

package bnb

import (
	"context"
	"errors"
)

// Sentinel errors returned by Optimize and Evaluate.
var (
	// ErrNilTable indicates a nil distance table.
	ErrNilTable = errors.New("bnb: distance table is nil")

	// ErrEmptyNodes indicates an empty node list (the start is required).
	ErrEmptyNodes = errors.New("bnb: node list is empty")

	// ErrNegativeBudget indicates a time budget below zero.
	ErrNegativeBudget = errors.New("bnb: negative time budget")

	// ErrDuplicateNode indicates the same node listed twice.
	ErrDuplicateNode = errors.New("bnb: duplicate node in list")

	// ErrNodeNotInTable indicates a node absent from the distance table.
	ErrNodeNotInTable = errors.New("bnb: node not in distance table")

	// ErrWeightsTooShort indicates a node id beyond the weights slice.
	ErrWeightsTooShort = errors.New("bnb: weights slice does not cover node")

	// ErrNegativeWeight indicates a negative reward weight.
	ErrNegativeWeight = errors.New("bnb: negative reward weight")

	// ErrBadBound indicates an unknown Bound policy.
	ErrBadBound = errors.New("bnb: unknown bound policy")

	// ErrInfeasibleRoute indicates a route step that the budget cannot pay for.
	ErrInfeasibleRoute = errors.New("bnb: route exceeds time budget")
)

// Bound selects the pruning policy. Every policy returns the same optimal score.
type Bound int

const (
	// NoBound prunes only moves the budget cannot pay for.
	NoBound Bound = iota

	// SimpleBound additionally cuts a branch when an optimistic estimate of the
	// remaining reward cannot beat the incumbent. The estimate credits every
	// unvisited node as if reached directly from the current position.
	SimpleBound
)

// ParseBound maps "none" and "simple" to a Bound.
func ParseBound(s string) (Bound, error) {
	switch s {
	case "none":
		return NoBound, nil
	case "", "simple":
		return SimpleBound, nil
	default:
		return 0, ErrBadBound
	}
}

// String returns the lowercase policy name.
func (b Bound) String() string {
	switch b {
	case NoBound:
		return "none"
	case SimpleBound:
		return "simple"
	default:
		return "unknown"
	}
}

// Options configures Optimize.
type Options struct {
	// Bound is the pruning policy (SimpleBound by default).
	Bound Bound

	// Ctx is polled every 4096 expansions; cancellation aborts the search.
	Ctx context.Context
}

// Option represents a functional option for configuring Optimize.
type Option func(*Options)

// WithBound selects the pruning policy.
func WithBound(b Bound) Option {
	return func(o *Options) {
		o.Bound = b
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns SimpleBound with a background context.
func DefaultOptions() Options {
	return Options{
		Bound: SimpleBound,
		Ctx:   context.Background(),
	}
}

// Result is the outcome of a single-agent optimisation.
type Result struct {
	// Score is the maximum total reward.
	Score int

	// Route lists graph node ids in visiting order; Route[0] is the start.
	Route []int
}
