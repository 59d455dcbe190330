// Copyright 2020 Aleksandr Demakin. All rights reserved.

package verify

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultStep is the default number of patterns scanned by one worker in a row.
	DefaultStep = 1 << 24

	// how often workers look at the context and publish their progress.
	pollInterval = 1 << 12
)

// Options configures Scan.
type Options struct {
	// Min and Max are inclusive bounds of the scanned input patterns.
	Min, Max uint64
	// Step is the number of patterns in each range handed to a worker.
	// If zero, DefaultStep is used.
	Step uint64
	// Workers limits the number of ranges scanned concurrently.
	// If not positive, runtime.GOMAXPROCS(0) is used.
	Workers int
	// KeepGoing makes other ranges continue after a mismatch.
	// A range is always abandoned at its first mismatch.
	KeepGoing bool
	// Logger receives progress and mismatch reports. May be nil.
	Logger log.Logger
}

// Report summarizes a scan.
type Report struct {
	Case       string
	Checked    uint64
	Ranges     int
	Mismatches []Result
	Elapsed    time.Duration
}

// MismatchError is returned by Scan when a conversion result differs from the oracle.
type MismatchError struct {
	Case   string
	Result Result
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s(%s): expected %s, got %s", e.Case, e.Result.Input, e.Result.Want, e.Result.Got)
}

func (o Options) withDefaults() Options {
	if o.Step == 0 {
		o.Step = DefaultStep
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = log.NewNopLogger()
	}
	return o
}

func (o Options) validate(c Case) error {
	if o.Min > o.Max {
		return errors.Errorf("min %#x is greater than max %#x", o.Min, o.Max)
	}
	if c.InputWidth == 32 {
		if _, err := safecast.Conv[uint32](o.Max); err != nil {
			return errors.Wrapf(err, "max %#x is out of the 32-bit input domain of %s", o.Max, c.Name)
		}
	}
	return nil
}

type scanner struct {
	c       Case
	logger  log.Logger
	checked *atomic.Uint64
	stop    bool

	mu         sync.Mutex
	mismatches []Result
}

// Scan checks every input pattern in [opts.Min, opts.Max] of the case.
// The domain is split into ranges of opts.Step patterns, which are scanned in parallel.
// Unless opts.KeepGoing is set, no new ranges are started after the first mismatch.
// On mismatch the conversion is repeated with diagnostics on, and a *MismatchError
// for the smallest mismatching pattern is returned.
func Scan(ctx context.Context, c Case, opts Options) (Report, error) {
	opts = opts.withDefaults()
	report := Report{Case: c.Name}
	if err := opts.validate(c); err != nil {
		return report, err
	}
	s := &scanner{
		c:       c,
		logger:  log.With(opts.Logger, "case", c.Name),
		checked: atomic.NewUint64(0),
		stop:    !opts.KeepGoing,
	}
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	next, last := opts.Min, false
	for !last && gctx.Err() == nil {
		from, to := next, opts.Max
		if opts.Max-from > opts.Step-1 {
			to = from + opts.Step - 1
		}
		g.Go(func() error {
			return s.scanRange(gctx, from, to)
		})
		report.Ranges++
		last, next = to == opts.Max, to+1
	}
	err := g.Wait()
	if err == nil && !last {
		// cancelled before all ranges were dispatched.
		err = ctx.Err()
	}
	report.Elapsed = time.Since(start)
	report.Checked = s.checked.Load()

	s.mu.Lock()
	report.Mismatches = s.mismatches
	s.mu.Unlock()
	sort.Slice(report.Mismatches, func(i, j int) bool {
		return report.Mismatches[i].Pattern < report.Mismatches[j].Pattern
	})

	if len(report.Mismatches) > 0 {
		return report, &MismatchError{Case: c.Name, Result: report.Mismatches[0]}
	}
	if err != nil {
		return report, errors.Wrapf(err, "scan of %s interrupted", c.Name)
	}
	return report, nil
}

func (s *scanner) scanRange(ctx context.Context, from, to uint64) error {
	level.Debug(s.logger).Log("msg", "scanning range", "from", fmt.Sprintf("%#x", from), "to", fmt.Sprintf("%#x", to))
	if err := ctx.Err(); err != nil {
		return err
	}
	var pending uint64
	defer func() {
		s.checked.Add(pending)
	}()
	for p := from; ; p++ {
		if pending == pollInterval {
			s.checked.Add(pending)
			pending = 0
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		r, err := s.c.safeEval(p, false)
		pending++
		if err != nil {
			level.Error(s.logger).Log("msg", "conversion failed", "pattern", fmt.Sprintf("%#x", p), "err", err)
			s.diagnose(p)
			return err
		}
		if !r.OK {
			level.Error(s.logger).Log("msg", "mismatch", "input", r.Input, "expected", r.Want, "actual", r.Got)
			s.diagnose(p)
			s.mu.Lock()
			s.mismatches = append(s.mismatches, r)
			s.mu.Unlock()
			if s.stop {
				return &MismatchError{Case: s.c.Name, Result: r}
			}
			return nil
		}
		if p == to {
			return nil
		}
	}
}

// diagnose repeats the conversion with diagnostics on.
func (s *scanner) diagnose(p uint64) {
	if _, err := s.c.safeEval(p, true); err != nil {
		level.Error(s.logger).Log("msg", "conversion failed with diagnostics on", "err", err)
	}
}
