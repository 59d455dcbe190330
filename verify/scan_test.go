// Copyright 2020 Aleksandr Demakin. All rights reserved.

package verify

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/go-kit/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCase returns a case, which fails for the patterns in 'bad',
// and panics for the patterns in 'panics'. It records diagnosed patterns.
func fakeCase(bad, panics []uint64) (Case, func() []uint64) {
	var (
		mu        sync.Mutex
		diagnosed []uint64
	)
	contains := func(s []uint64, p uint64) bool {
		for _, v := range s {
			if v == p {
				return true
			}
		}
		return false
	}
	c := NewCase("fake", "Fake", 64, func(p uint64, debug bool) Result {
		if debug {
			mu.Lock()
			diagnosed = append(diagnosed, p)
			mu.Unlock()
		}
		if contains(panics, p) {
			panic("boom")
		}
		r := Result{Pattern: p, Input: fmt.Sprint(p), Want: "ok", Got: "ok", OK: true}
		if contains(bad, p) {
			r.Got, r.OK = "bad", false
		}
		return r
	})
	return c, func() []uint64 {
		mu.Lock()
		defer mu.Unlock()
		return append([]uint64(nil), diagnosed...)
	}
}

func TestScanCounts(t *testing.T) {
	a := assert.New(t)
	c, diagnosed := fakeCase(nil, nil)
	report, err := Scan(context.Background(), c, Options{Min: 0, Max: 9999, Step: 1000, Workers: 3})
	require.NoError(t, err)
	a.Equal(uint64(10000), report.Checked)
	a.Equal(10, report.Ranges)
	a.Empty(report.Mismatches)
	a.Empty(diagnosed())
	a.Equal("fake", report.Case)

	report, err = Scan(context.Background(), c, Options{Min: 5, Max: 5})
	require.NoError(t, err)
	a.Equal(uint64(1), report.Checked)
	a.Equal(1, report.Ranges)

	report, err = Scan(context.Background(), c, Options{Min: math.MaxUint64 - 9, Max: math.MaxUint64, Step: 3})
	require.NoError(t, err)
	a.Equal(uint64(10), report.Checked)
	a.Equal(4, report.Ranges)
}

func TestScanStopsAtMismatch(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer
	c, diagnosed := fakeCase([]uint64{1000}, nil)
	report, err := Scan(context.Background(), c, Options{
		Min: 0, Max: 1 << 20, Step: 100, Workers: 4,
		Logger: log.NewLogfmtLogger(log.NewSyncWriter(&buf)),
	})
	var me *MismatchError
	require.True(t, errors.As(err, &me))
	a.Equal(uint64(1000), me.Result.Pattern)
	a.Equal("fake(1000): expected ok, got bad", me.Error())
	a.Len(report.Mismatches, 1)
	a.Equal([]uint64{1000}, diagnosed())
	a.Less(report.Checked, uint64(1<<20))
	a.Contains(buf.String(), "msg=mismatch")
	a.Contains(buf.String(), "case=fake")
	a.Contains(buf.String(), "expected=ok actual=bad")
}

func TestScanKeepGoing(t *testing.T) {
	a := assert.New(t)
	c, diagnosed := fakeCase([]uint64{1050, 150, 160}, nil)
	report, err := Scan(context.Background(), c, Options{Min: 0, Max: 1999, Step: 100, Workers: 2, KeepGoing: true})
	var me *MismatchError
	require.True(t, errors.As(err, &me))
	a.Equal(uint64(150), me.Result.Pattern)
	// the range [100, 199] is abandoned at 150, so 160 is never checked.
	if a.Len(report.Mismatches, 2) {
		a.Equal(uint64(150), report.Mismatches[0].Pattern)
		a.Equal(uint64(1050), report.Mismatches[1].Pattern)
	}
	a.ElementsMatch([]uint64{150, 1050}, diagnosed())
	a.Equal(uint64(2000-49-49), report.Checked)
}

func TestScanPanics(t *testing.T) {
	a := assert.New(t)
	c, diagnosed := fakeCase(nil, []uint64{7})
	_, err := Scan(context.Background(), c, Options{Min: 0, Max: 100})
	if a.Error(err) {
		a.Contains(err.Error(), "fake(0x7) panicked: boom")
	}
	a.Equal([]uint64{7}, diagnosed())
}

func TestScanOptions(t *testing.T) {
	a := assert.New(t)
	c, err := Lookup("fixsfsi")
	require.NoError(t, err)

	_, err = Scan(context.Background(), c, Options{Min: 10, Max: 1})
	a.EqualError(err, "min 0xa is greater than max 0x1")

	_, err = Scan(context.Background(), c, Options{Min: 0, Max: 1 << 32})
	if a.Error(err) {
		a.Contains(err.Error(), "max 0x100000000 is out of the 32-bit input domain of fixsfsi")
	}
}

func TestScanCanceled(t *testing.T) {
	a := assert.New(t)
	c, _ := fakeCase(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := Scan(ctx, c, Options{Min: 0, Max: 1 << 30})
	a.True(errors.Is(err, context.Canceled))
	a.Zero(report.Checked)
}

func TestScanCanceledAfterLastRange(t *testing.T) {
	a := assert.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := NewCase("cancel", "Cancel", 32, func(p uint64, _ bool) Result {
		if p == 100 {
			cancel()
		}
		return Result{Pattern: p, OK: true}
	})
	report, err := Scan(ctx, c, Options{Min: 0, Max: 100})
	a.NoError(err)
	a.Equal(uint64(101), report.Checked)
	a.Equal(1, report.Ranges)
}

func TestNewCase(t *testing.T) {
	a := assert.New(t)
	c, _ := fakeCase(nil, nil)
	a.Equal("fake", c.Name)
	a.Equal(uint64(math.MaxUint64), c.MaxPattern())
	p, err := c.Parse("0x10")
	a.NoError(err)
	a.Equal(uint64(16), p)
	a.True(c.Check(p).OK)
	_, err = c.Parse("-1")
	a.Error(err)
}

func TestScanRealCases(t *testing.T) {
	a := assert.New(t)
	windows32 := [][2]uint64{
		{0, 1 << 16},
		{0x3f7f0000, 0x3f81ffff}, // around 1.0f and 2^24 for integers
		{0x4effff00, 0x4f0000ff}, // around 2^31 as a float32
		{0x7f7fff00, 0x7f8000ff}, // the largest float32 values, infinity, NaNs
		{0x7fffff00, 0x800000ff}, // sign boundary
		{0xcefff000, 0xcf000fff}, // around -2^31 as a float32
		{0xffff0000, math.MaxUint32},
	}
	windows64 := [][2]uint64{
		{0, 1 << 14},
		{0x3fefffffffffff00, 0x3ff00000000000ff}, // around 1.0
		{0x43dfffffffffff00, 0x43e00000000000ff}, // around 2^63
		{0x43efffffffffff00, 0x43f00000000000ff}, // around 2^64
		{0x41dfffffffffff00, 0x41e00000000000ff}, // around 2^31
		{1<<53 - 1<<12, 1<<53 + 1<<12},           // integers around 2^53
		{0x7fffffffffff0000, 0x800000000000ffff}, // sign boundary
		{math.MaxUint64 - 1<<14, math.MaxUint64},
	}
	for _, c := range Cases() {
		windows := windows64
		if c.InputWidth == 32 {
			windows = windows32
		}
		for _, w := range windows {
			report, err := Scan(context.Background(), c, Options{Min: w[0], Max: w[1], Step: 1 << 12})
			if !a.NoError(err, "%s [%#x, %#x]", c.Name, w[0], w[1]) {
				continue
			}
			a.Equal(w[1]-w[0]+1, report.Checked)
		}
	}
}
