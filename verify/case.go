// Copyright 2020 Aleksandr Demakin. All rights reserved.

package verify

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/avdva/softconv"
	mu "github.com/avdva/softconv/internal/mathutil"
)

// Result is an outcome of a single conversion check.
type Result struct {
	Pattern uint64
	Input   string
	Want    string
	Got     string
	OK      bool
}

// Case is a conversion under test together with its reference oracle.
// Inputs are addressed by their bit patterns, so that a range of patterns
// covers both integer and floating-point domains.
type Case struct {
	// Name is the runtime routine name without leading underscores, like "fixsfsi".
	Name string
	// Func is the name of the softconv function under test.
	Func string
	// InputWidth is the number of bits in the input patterns.
	InputWidth uint

	eval  func(pattern uint64, debug bool) Result
	parse func(s string) (uint64, error)
}

// MaxPattern returns the largest input pattern of the case.
func (c Case) MaxPattern() uint64 {
	return mu.Mask(c.InputWidth)
}

// Check converts the input with the given pattern and compares the result to the oracle.
func (c Case) Check(pattern uint64) Result {
	return c.eval(pattern, false)
}

// Diagnose is like Check, but the conversion writes its intermediate state
// to softconv.DiagnosticLogger.
func (c Case) Diagnose(pattern uint64) Result {
	return c.eval(pattern, true)
}

// Parse converts a textual input to an input pattern.
// Integer inputs are decimal or prefixed literals, signed ones may be negative.
// Float inputs are parsed as float values, unless they are prefixed
// integer literals, like 0x3fc00000, which are taken as bit patterns.
func (c Case) Parse(s string) (uint64, error) {
	return c.parse(strings.TrimSpace(s))
}

func (c Case) safeEval(pattern uint64, debug bool) (r Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf("%s(%#x) panicked: %v", c.Name, pattern, rec)
		}
	}()
	return c.eval(pattern, debug), nil
}

// NewCase returns a case for a conversion outside the registry.
// eval must convert the input with the given pattern and compare the result to its reference.
// Inputs are parsed as width-bit unsigned patterns.
func NewCase(name, fn string, width uint, eval func(pattern uint64, debug bool) Result) Case {
	return Case{
		Name:       name,
		Func:       fn,
		InputWidth: width,
		eval:       eval,
		parse: func(s string) (uint64, error) {
			v, err := strconv.ParseUint(s, 0, int(width))
			return v, errors.Wrapf(err, "bad %s input", name)
		},
	}
}

var cases = []Case{
	intToFloatCase("floatsisf", "Int32ToFloat32", softconv.Int32ToFloat32),
	intToFloatCase("floatsidf", "Int32ToFloat64", softconv.Int32ToFloat64),
	intToFloatCase("floatdisf", "Int64ToFloat32", softconv.Int64ToFloat32),
	intToFloatCase("floatdidf", "Int64ToFloat64", softconv.Int64ToFloat64),
	intToFloatCase("floatunsisf", "Uint32ToFloat32", softconv.Uint32ToFloat32),
	intToFloatCase("floatunsidf", "Uint32ToFloat64", softconv.Uint32ToFloat64),
	intToFloatCase("floatundisf", "Uint64ToFloat32", softconv.Uint64ToFloat32),
	intToFloatCase("floatundidf", "Uint64ToFloat64", softconv.Uint64ToFloat64),

	floatToIntCase("fixsfsi", "Float32ToInt32", softconv.Float32ToInt32),
	floatToIntCase("fixsfdi", "Float32ToInt64", softconv.Float32ToInt64),
	floatToIntCase("fixdfsi", "Float64ToInt32", softconv.Float64ToInt32),
	floatToIntCase("fixdfdi", "Float64ToInt64", softconv.Float64ToInt64),
	floatToIntCase("fixunssfsi", "Float32ToUint32", softconv.Float32ToUint32),
	floatToIntCase("fixunssfdi", "Float32ToUint64", softconv.Float32ToUint64),
	floatToIntCase("fixunsdfsi", "Float64ToUint32", softconv.Float64ToUint32),
	floatToIntCase("fixunsdfdi", "Float64ToUint64", softconv.Float64ToUint64),
}

// Cases returns all known conversions sorted by name.
func Cases() []Case {
	result := make([]Case, len(cases))
	copy(result, cases)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Lookup returns a case by its name or by the name of its function.
// Leading underscores are ignored, so "__fixsfsi" and "fixsfsi" are the same.
func Lookup(name string) (Case, error) {
	for len(name) > 0 && name[0] == '_' {
		name = name[1:]
	}
	for _, c := range cases {
		if c.Name == name || c.Func == name {
			return c, nil
		}
	}
	return Case{}, errors.Errorf("unknown conversion %q", name)
}

func intToFloatCase[I softconv.Integer, F softconv.Float](name, fn string, conv func(I, bool) F) Case {
	return Case{
		Name:       name,
		Func:       fn,
		InputWidth: softconv.Width[I](),
		parse:      parseInt[I],
		eval: func(pattern uint64, debug bool) Result {
			i := I(pattern)
			want, got := ReferenceIntToFloat[F](i), conv(i, debug)
			return Result{
				Pattern: pattern,
				Input:   fmt.Sprint(i),
				Want:    formatFloat(want),
				Got:     formatFloat(got),
				OK:      softconv.Bits(want) == softconv.Bits(got),
			}
		},
	}
}

func floatToIntCase[F softconv.Float, I softconv.Integer](name, fn string, conv func(F, bool) I) Case {
	return Case{
		Name:       name,
		Func:       fn,
		InputWidth: softconv.FormatOf[F]().Bits(),
		parse:      parseFloat[F],
		eval: func(pattern uint64, debug bool) Result {
			f := softconv.FromBits[F](pattern)
			want, got := ReferenceFloatToInt[I](f), conv(f, debug)
			return Result{
				Pattern: pattern,
				Input:   formatFloat(f),
				Want:    fmt.Sprint(want),
				Got:     fmt.Sprint(got),
				OK:      want == got,
			}
		},
	}
}

func formatFloat[F softconv.Float](f F) string {
	return fmt.Sprintf("%v (%#x)", f, softconv.Bits(f))
}

func parseInt[I softconv.Integer](s string) (uint64, error) {
	width := softconv.Width[I]()
	if softconv.IsSigned[I]() {
		if v, err := strconv.ParseInt(s, 0, int(width)); err == nil {
			return uint64(v) & mu.Mask(width), nil
		}
	}
	v, err := strconv.ParseUint(s, 0, int(width))
	return v, errors.Wrapf(err, "bad %T input", I(0))
}

func parseFloat[F softconv.Float](s string) (uint64, error) {
	width := softconv.FormatOf[F]().Bits()
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXbBoO", rune(s[1])) {
		if v, err := strconv.ParseUint(s, 0, int(width)); err == nil {
			return v, nil
		}
	}
	v, err := strconv.ParseFloat(s, int(width))
	if err != nil {
		return 0, errors.Wrapf(err, "bad %T input", F(0))
	}
	return softconv.Bits(F(v)), nil
}
