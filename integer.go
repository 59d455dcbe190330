// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softconv

import (
	"unsafe"

	mu "github.com/avdva/softconv/internal/mathutil"
)

// Signed is a 32 or 64-bit two's complement integer type.
type Signed interface {
	~int32 | ~int64
}

// Unsigned is a 32 or 64-bit unsigned integer type.
type Unsigned interface {
	~uint32 | ~uint64
}

// Integer is any integer type the conversions work with.
type Integer interface {
	Signed | Unsigned
}

// Width returns the number of bits in I.
func Width[I Integer]() uint {
	var i I
	return uint(unsafe.Sizeof(i)) * 8
}

// IsSigned reports whether I is a signed type.
func IsSigned[I Integer]() bool {
	var i I
	return ^i < 0
}

// Max returns the largest value of I.
func Max[I Integer]() I {
	if IsSigned[I]() {
		return I(mu.Mask(Width[I]() - 1))
	}
	return I(mu.Mask(Width[I]()))
}

// Min returns the smallest value of I.
func Min[I Integer]() I {
	if IsSigned[I]() {
		return ^Max[I]()
	}
	return 0
}

// Magnitude splits i into its sign and absolute value.
// The absolute value of the most negative number is exact: for an int32,
// Magnitude(math.MinInt32) returns (true, 1<<31).
func Magnitude[I Integer](i I) (neg bool, m uint64) {
	if i < 0 {
		// uint64(i) sign-extends, so the two's complement gives the magnitude
		// for every width.
		return true, mu.Negate(uint64(i))
	}
	return false, uint64(i)
}

// LeadingZeros returns the number of leading zero bits in the magnitude of i,
// counted within the width of I.
func LeadingZeros[I Integer](i I) uint {
	_, m := Magnitude(i)
	return mu.LeadingZeros(m, Width[I]())
}
