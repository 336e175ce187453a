// SPDX-License-Identifier: MIT

// Package solver wires the pipeline end to end:
//
//	Graph → reward-node selection → distance table → bnb (one agent)
//	                                              └→ partition (two agents)
//
// It is the boundary the CLI talks to: it takes a Graph and a Config and
// returns a Report with the score and named routes.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/rewardroute/bnb"
	"github.com/katalvlaran/rewardroute/core"
	"github.com/katalvlaran/rewardroute/dijkstra"
	"github.com/katalvlaran/rewardroute/partition"
)

// Sentinel errors for configuration problems.
var (
	ErrNilGraph     = errors.New("solver: graph is nil")
	ErrUnknownStart = errors.New("solver: unknown start node")
	ErrBadAgents    = errors.New("solver: agents must be 1 or 2")
	ErrBadBudget    = errors.New("solver: budget must be non-negative")
	ErrBadWorkers   = errors.New("solver: workers must be non-negative")
)

// Config describes one run. Zero values fall back to DefaultConfig.
type Config struct {
	// Start names the node both agents start from.
	Start string `yaml:"start"`

	// Agents is 1 or 2.
	Agents int `yaml:"agents"`

	// Budget applies to every agent unless Budgets is set.
	Budget int `yaml:"budget"`

	// Budgets optionally gives each agent its own budget; len must equal Agents.
	Budgets []int `yaml:"budgets,omitempty"`

	// Workers bounds partition parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`

	// Bound is "simple" (default) or "none".
	Bound string `yaml:"bound,omitempty"`

	// Method is "heap" (default) or "bfs".
	Method string `yaml:"method,omitempty"`
}

// DefaultConfig matches the classic single-agent run.
func DefaultConfig() Config {
	return Config{
		Start:  "AA",
		Agents: 1,
		Budget: 30,
		Bound:  bnb.SimpleBound.String(),
		Method: dijkstra.MethodHeap.String(),
	}
}

// budgets returns one budget per agent.
func (c Config) budgets() []int {
	if len(c.Budgets) > 0 {
		return c.Budgets
	}
	out := make([]int, c.Agents)
	for i := range out {
		out[i] = c.Budget
	}

	return out
}

// Validate checks everything that does not need the graph.
func (c Config) Validate() error {
	if c.Agents != 1 && c.Agents != 2 {
		return fmt.Errorf("%w: %d", ErrBadAgents, c.Agents)
	}
	if len(c.Budgets) > 0 && len(c.Budgets) != c.Agents {
		return fmt.Errorf("%w: %d budgets for %d agents", ErrBadBudget, len(c.Budgets), c.Agents)
	}
	for _, b := range c.budgets() {
		if b < 0 {
			return fmt.Errorf("%w: %d", ErrBadBudget, b)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, c.Workers)
	}
	if _, err := bnb.ParseBound(c.Bound); err != nil {
		return fmt.Errorf("solver: bound %q: %w", c.Bound, err)
	}
	if _, err := dijkstra.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("solver: method %q: %w", c.Method, err)
	}

	return nil
}

// Report is the outcome of Solve.
type Report struct {
	Agents  int
	Budgets []int
	Score   int
	Scores  []int      // per agent
	Routes  [][]string // per agent, node names, start first
	Rewards int        // number of reward nodes considered
	Elapsed time.Duration
}

// Solve runs the configured search on g. A nil logger is silent.
func Solve(ctx context.Context, g *core.Graph, cfg Config, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if g == nil {
		return Report{}, ErrNilGraph
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	bound, _ := bnb.ParseBound(cfg.Bound)
	method, _ := dijkstra.ParseMethod(cfg.Method)
	budgets := cfg.budgets()
	began := time.Now()

	// 1) Reward selection: positive weights, start excluded.
	start, err := g.Lookup(cfg.Start)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %q", ErrUnknownStart, cfg.Start)
	}
	rewards := make([]int, 0, g.N())
	for _, id := range g.RewardNodes() {
		if id != start {
			rewards = append(rewards, id)
		}
	}
	nodes := append([]int{start}, rewards...)

	// 2) Distance table over {start} ∪ rewards.
	tbl, err := dijkstra.Distances(g, nodes, dijkstra.WithMethod(method))
	if err != nil {
		return Report{}, err
	}
	logger.Info("distance table ready",
		"nodes", g.N(), "edges", g.Edges(), "rewards", len(rewards), "method", method.String())

	// 3) Search.
	rep := Report{Agents: cfg.Agents, Budgets: budgets, Rewards: len(rewards)}
	var results []bnb.Result
	switch cfg.Agents {
	case 1:
		res, err := bnb.Optimize(tbl, nodes, g.Weights(), budgets[0],
			bnb.WithBound(bound), bnb.WithContext(ctx))
		if err != nil {
			return Report{}, err
		}
		rep.Score = res.Score
		results = []bnb.Result{res}
	default:
		workers := cfg.Workers
		if workers == 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		res, err := partition.Search(ctx, tbl, start, rewards, g.Weights(), budgets[0], budgets[1],
			partition.WithWorkers(workers), partition.WithBound(bound), partition.WithLogger(logger))
		if err != nil {
			return Report{}, err
		}
		rep.Score = res.Score
		results = res.Agents[:]
	}

	// 4) Named routes.
	for _, r := range results {
		rep.Scores = append(rep.Scores, r.Score)
		names := make([]string, len(r.Route))
		for k, id := range r.Route {
			names[k] = g.Name(id)
		}
		rep.Routes = append(rep.Routes, names)
	}
	rep.Elapsed = time.Since(began)
	logger.Info("search complete", "agents", rep.Agents, "score", rep.Score, "elapsed", rep.Elapsed)

	return rep, nil
}
