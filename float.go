// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softconv

import (
	"math"
	"unsafe"
)

// Float is a binary32 or binary64 floating-point type.
type Float interface {
	~float32 | ~float64
}

// FormatOf returns the layout of F.
func FormatOf[F Float]() Format {
	var f F
	if unsafe.Sizeof(f) == 4 {
		return Binary32
	}
	return Binary64
}

// Bits returns the raw bit pattern of f.
func Bits[F Float](f F) uint64 {
	if unsafe.Sizeof(f) == 4 {
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(float64(f))
}

// FromBits returns the value of F for a raw bit pattern.
// Bits above the width of F are ignored.
func FromBits[F Float](bits uint64) F {
	var f F
	if unsafe.Sizeof(f) == 4 {
		return F(math.Float32frombits(uint32(bits)))
	}
	return F(math.Float64frombits(bits))
}

// FromParts builds a value of F from its sign, biased exponent, and significand.
// See Format.FromParts.
func FromParts[F Float](neg bool, exp, sig uint64) F {
	return FromBits[F](FormatOf[F]().FromParts(neg, exp, sig))
}
