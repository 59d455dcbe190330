// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <conversion> <input>...",
	Short: "Convert single inputs with diagnostics on",
	Long: `Convert each input and compare the result with the native conversion.
Conversions are named like the runtime routines (fixsfsi, __floatundidf)
or like the Go functions (Float32ToInt32).
Float inputs are values (-1.5, 0x1p-3, inf) or bit patterns (0xbfc00000).`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCheck,
}

func init() {
	// flags end at the conversion name, so that negative inputs stay arguments.
	checkCmd.Flags().SetInterspersed(false)
}

func runCheck(cmd *cobra.Command, args []string) error {
	c, err := lookupCase(args[0])
	if err != nil {
		return err
	}
	failed := 0
	for _, arg := range args[1:] {
		p, err := c.Parse(arg)
		if err != nil {
			return err
		}
		r := c.Diagnose(p)
		status := passColor.Sprint("PASS")
		if !r.OK {
			status = failColor.Sprint("FAIL")
			failed++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s(%s) = %s, expected %s\n", status, c.Name, r.Input, r.Got, r.Want)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d checks failed", failed, len(args)-1)
	}
	return nil
}
