// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"time"

	"fortio.org/safecast"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/avdva/softconv/verify"
)

var scanCmd = &cobra.Command{
	Use:   "scan <conversion>",
	Short: "Check a range of inputs against the native conversion",
	Long: `Check every input pattern in [--min, --max] against the native conversion.
Bounds are bit patterns of the input type, decimal or prefixed (0x7f800000).
By default the whole input domain is scanned.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("min", "0", "first input pattern")
	scanCmd.Flags().String("max", "", "last input pattern (default: the largest pattern of the input type)")
	scanCmd.Flags().String("step", "", "number of patterns in one range (default 0x1000000)")
	scanCmd.Flags().Int("workers", 0, "number of ranges scanned in parallel (default GOMAXPROCS)")
	scanCmd.Flags().Bool("keep-going", false, "continue other ranges after a mismatch")
}

// lookupCase finds conversions named on the command line.
var lookupCase = verify.Lookup

// job is a single scan of one conversion.
type job struct {
	c    verify.Case
	opts verify.Options
}

func runScan(cmd *cobra.Command, args []string) error {
	c, err := lookupCase(args[0])
	if err != nil {
		return err
	}
	minFlag, err := cmd.Flags().GetString("min")
	if err != nil {
		return err
	}
	maxFlag, err := cmd.Flags().GetString("max")
	if err != nil {
		return err
	}
	stepFlag, err := cmd.Flags().GetString("step")
	if err != nil {
		return err
	}
	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return err
	}
	keepGoing, err := cmd.Flags().GetBool("keep-going")
	if err != nil {
		return err
	}
	j, err := newJob(c, minFlag, maxFlag, stepFlag)
	if err != nil {
		return err
	}
	j.opts.Workers = workers
	j.opts.KeepGoing = keepGoing
	return runJobs(cmd.Context(), cmd.OutOrStdout(), []job{j}, keepGoing)
}

func newJob(c verify.Case, minStr, maxStr, stepStr string) (job, error) {
	j := job{c: c, opts: verify.Options{Max: c.MaxPattern(), Logger: logger}}
	var err error
	if minStr != "" {
		if j.opts.Min, err = parsePattern(minStr); err != nil {
			return j, errors.Wrap(err, "bad min")
		}
	}
	if maxStr != "" {
		if j.opts.Max, err = parsePattern(maxStr); err != nil {
			return j, errors.Wrap(err, "bad max")
		}
	}
	if stepStr != "" {
		if j.opts.Step, err = parsePattern(stepStr); err != nil {
			return j, errors.Wrap(err, "bad step")
		}
		if j.opts.Step == 0 {
			return j, errors.New("step must be positive")
		}
	}
	return j, nil
}

func parsePattern(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	return v, errors.Wrapf(err, "invalid pattern %q", s)
}

// runJobs runs the jobs one by one, and prints a line per job.
// Unless keepGoing is set, it stops after the first failed job.
func runJobs(ctx context.Context, w io.Writer, jobs []job, keepGoing bool) error {
	failed := 0
	for _, j := range jobs {
		level.Info(logger).Log("msg", "scan started", "case", j.c.Name,
			"min", fmt.Sprintf("%#x", j.opts.Min), "max", fmt.Sprintf("%#x", j.opts.Max))
		report, err := verify.Scan(ctx, j.c, j.opts)
		printReport(w, report, err)
		if err == nil {
			continue
		}
		failed++
		var me *verify.MismatchError
		if !errors.As(err, &me) {
			level.Error(logger).Log("msg", "scan failed", "case", j.c.Name, "err", err)
		}
		if !keepGoing || ctx.Err() != nil {
			break
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d scans failed", failed, len(jobs))
	}
	return nil
}

func printReport(w io.Writer, r verify.Report, err error) {
	var rate string
	if secs := r.Elapsed.Seconds(); secs > 0 {
		rate = ", " + humanize.SIWithDigits(float64(r.Checked)/secs, 2, "conv/s")
	}
	summary := fmt.Sprintf("%s: %s inputs in %d ranges, %s%s",
		r.Case, formatCount(r.Checked), r.Ranges, r.Elapsed.Round(time.Millisecond), rate)
	if err == nil {
		fmt.Fprintf(w, "%s %s\n", passColor.Sprint("PASS"), summary)
		return
	}
	fmt.Fprintf(w, "%s %s\n", failColor.Sprint("FAIL"), summary)
	for _, m := range r.Mismatches {
		fmt.Fprintf(w, "    %s(%s) = %s, expected %s\n", r.Case, m.Input, m.Got, m.Want)
	}
	if len(r.Mismatches) == 0 {
		fmt.Fprintf(w, "    %v\n", err)
	}
}

func formatCount(n uint64) string {
	if v, err := safecast.Conv[int64](n); err == nil {
		return humanize.Comma(v)
	}
	return humanize.BigComma(new(big.Int).SetUint64(n))
}
