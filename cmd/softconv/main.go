// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command softconv inspects and exhaustively checks the software conversions.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/avdva/softconv"
)

var rootCmd = &cobra.Command{
	Use:   "softconv",
	Short: "Software integer/float conversions checker",
	Long: `softconv checks software integer <-> binary32/binary64 conversions
against the native ones, for single inputs or for whole input ranges.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// logger is the filtered logger of the command, set up before any command runs.
var logger = log.NewNopLogger()

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(runCmd)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	levelFlag, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return err
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	allow, err := levelOption(levelFlag)
	if err != nil {
		return err
	}
	if err := setColor(colorFlag); err != nil {
		return err
	}
	base := log.NewLogfmtLogger(log.NewSyncWriter(cmd.ErrOrStderr()))
	// diagnostics are requested explicitly, so they bypass the level filter.
	softconv.DiagnosticLogger = base
	logger = level.NewFilter(log.With(base, "ts", log.DefaultTimestampUTC), allow)
	return nil
}

func levelOption(s string) (level.Option, error) {
	switch s {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}
	return nil, errors.Errorf("unknown log level %q", s)
}

func setColor(s string) error {
	switch s {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return errors.Errorf("unknown color mode %q", s)
	}
	return nil
}
