// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rewardroute/internal/config"
	"github.com/katalvlaran/rewardroute/solver"
)

var solveFlags struct {
	file    string
	agents  int
	budget  int
	workers int
	bound   string
	method  string
}

var solveCmd = &cobra.Command{
	Use:   "solve -f <run.yaml>",
	Short: "Solve a run file",
	RunE:  runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringVarP(&solveFlags.file, "file", "f", "", "path to a YAML run file (required)")
	f.IntVar(&solveFlags.agents, "agents", 0, "override agent count (1 or 2)")
	f.IntVar(&solveFlags.budget, "budget", -1, "override per-agent time budget")
	f.IntVar(&solveFlags.workers, "workers", -1, "override partition workers (0 = GOMAXPROCS)")
	f.StringVar(&solveFlags.bound, "bound", "", "override pruning bound: simple or none")
	f.StringVar(&solveFlags.method, "method", "", "override distance search: heap or bfs")
	_ = solveCmd.MarkFlagRequired("file")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	run, err := config.Load(solveFlags.file)
	if err != nil {
		return err
	}
	applyOverrides(cmd, &run.Config)

	return solveAndPrint(cmd, run)
}

// applyOverrides copies explicitly set flags onto cfg.
func applyOverrides(cmd *cobra.Command, cfg *solver.Config) {
	flags := cmd.Flags()
	if flags.Changed("agents") {
		cfg.Agents = solveFlags.agents
		cfg.Budgets = nil
	}
	if flags.Changed("budget") {
		cfg.Budget = solveFlags.budget
		cfg.Budgets = nil
	}
	if flags.Changed("workers") {
		cfg.Workers = solveFlags.workers
	}
	if flags.Changed("bound") {
		cfg.Bound = solveFlags.bound
	}
	if flags.Changed("method") {
		cfg.Method = solveFlags.method
	}
}

// solveAndPrint builds the graph, runs the solver and writes the report.
func solveAndPrint(cmd *cobra.Command, run *config.File) error {
	g, err := run.Graph()
	if err != nil {
		return err
	}
	rep, err := solver.Solve(cmd.Context(), g, run.Config, runLogger())
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), rep)

	return nil
}

func printReport(w io.Writer, rep solver.Report) {
	fmt.Fprintf(w, "score: %d\n", rep.Score)
	for i, route := range rep.Routes {
		fmt.Fprintf(w, "agent %d (budget %d, score %d): %s\n",
			i+1, rep.Budgets[i], rep.Scores[i], strings.Join(route, " -> "))
	}
}
