// SPDX-License-Identifier: MIT

package partition

import (
	"errors"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/rewardroute/bnb"
)

// MaxRewards caps the reward set: 2^MaxRewards subsets are enumerated.
const MaxRewards = 20

// Sentinel errors returned by Search.
var (
	// ErrTooManyRewards indicates more than MaxRewards reward nodes.
	ErrTooManyRewards = errors.New("partition: too many reward nodes")

	// ErrNegativeBudget indicates an agent budget below zero.
	ErrNegativeBudget = errors.New("partition: negative time budget")

	// ErrDuplicateReward indicates the same reward listed twice or equal to the start.
	ErrDuplicateReward = errors.New("partition: duplicate reward node")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("partition: workers must be positive")
)

// Options configures Search.
type Options struct {
	// Workers is the number of concurrent subset evaluations (GOMAXPROCS by default).
	Workers int

	// Bound is forwarded to bnb.Optimize.
	Bound bnb.Bound

	// Logger receives debug progress. Silent by default.
	Logger *slog.Logger
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithWorkers sets the worker count.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithBound sets the pruning policy used for every subset.
func WithBound(b bnb.Bound) Option {
	return func(o *Options) {
		o.Bound = b
	}
}

// WithLogger sets the progress logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns GOMAXPROCS workers, SimpleBound and a discard logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Bound:   bnb.SimpleBound,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Result is the best two-agent split.
type Result struct {
	// Score is the combined reward of both agents.
	Score int

	// Mask has bit i set when rewards[i] belongs to the first agent.
	Mask uint32

	// Agents holds each agent's own optimum for its side of the split.
	Agents [2]bnb.Result
}
