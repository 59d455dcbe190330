// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/avdva/softconv/verify"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known conversions",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFUNCTION\tINPUT BITS")
	for _, c := range verify.Cases() {
		fmt.Fprintf(w, "%s\t%s\t%d\n", c.Name, c.Func, c.InputWidth)
	}
	return w.Flush()
}
