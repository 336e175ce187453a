// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rewardroute/internal/config"
)

var scenarioList bool

var scenarioCmd = &cobra.Command{
	Use:   "scenario [name]",
	Short: "Solve a built-in scenario (use --list to see them)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if scenarioList || len(args) == 0 {
			for _, name := range config.ListScenarios() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}
		run, err := config.LoadScenario(args[0])
		if err != nil {
			return err
		}

		return solveAndPrint(cmd, run)
	},
}

func init() {
	scenarioCmd.Flags().BoolVar(&scenarioList, "list", false, "list built-in scenarios")
}
