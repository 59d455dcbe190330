// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil contains bit manipulation helpers shared by the conversion routines.
package mathutil

import (
	"math/bits"
	"unsafe"
)

const wordBits = uint(8 * unsafe.Sizeof(uint64(0)))

// BinaryDigits returns the number of binary digits needed to represent 'value',
// i.e. the 1-based position of its most significant set bit. It returns 0 for 0.
func BinaryDigits(value uint64) uint {
	return wordBits - uint(bits.LeadingZeros64(value))
}

// LeadingZeros returns the number of leading zero bits of 'value'
// seen as a 'width'-bit number. Bits above 'width' must be clear.
func LeadingZeros(value uint64, width uint) uint {
	return width - BinaryDigits(value)
}

// Mask returns a number with n lowest bits set.
func Mask(n uint) uint64 {
	if n >= wordBits {
		return ^uint64(0)
	}
	return 1<<n - 1
}

// ShiftRightSticky shifts v right by n bits.
// If any of the shifted out bits was set, the least significant bit of the result is set too.
func ShiftRightSticky(v uint64, n uint) uint64 {
	switch {
	case n == 0:
		return v
	case n >= wordBits:
		if v != 0 {
			return 1
		}
		return 0
	}
	var sticky uint64
	if v<<(wordBits-n) != 0 {
		sticky = 1
	}
	return v>>n | sticky
}

// Negate returns the two's complement of v.
// Negate(Negate(v)) == v for every v, including 1<<63.
func Negate(v uint64) uint64 {
	return ^v + 1
}
