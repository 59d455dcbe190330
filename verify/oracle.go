// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package verify checks the software conversions against reference casts
// over ranges of input bit patterns.
package verify

import (
	"math"

	"github.com/avdva/softconv"
)

// ReferenceIntToFloat converts i with the Go conversion, which rounds half to even.
func ReferenceIntToFloat[F softconv.Float, I softconv.Integer](i I) F {
	return F(i)
}

// ReferenceFloatToInt converts f with the Go conversion, truncating toward zero.
// Go leaves out of range conversions to the implementation, so they are
// saturated here: NaN gives 0, too large values give the minimum or maximum of I.
func ReferenceFloatToInt[I softconv.Integer, F softconv.Float](f F) I {
	v := float64(f)
	width := softconv.Width[I]()
	signed := softconv.IsSigned[I]()
	if signed {
		width--
	}
	// both bounds are powers of two, so they are exact float64 values.
	hi := math.Ldexp(1, int(width))
	lo := 0.0
	if signed {
		lo = -hi
	}
	switch {
	case math.IsNaN(v):
		return 0
	case v > -1 && v < 1:
		return 0
	case v >= hi:
		return softconv.Max[I]()
	case v < lo:
		return softconv.Min[I]()
	}
	return I(v)
}
