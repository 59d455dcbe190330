// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run --config <plan.toml>",
	Short: "Run the scans of a TOML plan",
	Args:  cobra.NoArgs,
	RunE:  runPlan,
}

func init() {
	runCmd.Flags().StringP("config", "c", "softconv.toml", "path to the plan")
}

func runPlan(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	p, err := loadPlan(path)
	if err != nil {
		return err
	}
	jobs, err := p.jobs()
	if err != nil {
		return err
	}
	return runJobs(cmd.Context(), cmd.OutOrStdout(), jobs, p.KeepGoing)
}
