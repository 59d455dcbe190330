// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package softconv implements software conversions between fixed-width integers
// and IEEE-754 binary32/binary64 values, the way a compiler runtime does
// when the target has no instruction for a numeric cast.
// Integer to float conversions are correctly rounded (round half to even),
// float to integer conversions truncate toward zero and saturate.
package softconv

// Format describes the bit layout of an IEEE-754 binary interchange format.
//
//	63                                     0
//	___________________________|____________
//	seeeeeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmmmmmm   (binary64)
//
// The most significant bit is the sign, followed by the biased exponent,
// followed by the significand without its implicit leading bit.
type Format struct {
	bits    uint
	sigBits uint
}

var (
	// Binary32 is the layout of float32 values.
	Binary32 = Format{bits: 32, sigBits: 23}
	// Binary64 is the layout of float64 values.
	Binary64 = Format{bits: 64, sigBits: 52}
)

// Bits returns the total width of the format.
func (f Format) Bits() uint {
	return f.bits
}

// SignificandBits returns the number of stored significand bits.
func (f Format) SignificandBits() uint {
	return f.sigBits
}

// ExponentBits returns the width of the exponent field.
func (f Format) ExponentBits() uint {
	return f.bits - f.sigBits - 1
}

// ExponentBias returns the value added to an exponent before it is stored.
func (f Format) ExponentBias() uint64 {
	return 1<<(f.ExponentBits()-1) - 1
}

// ExponentMax returns the biased exponent reserved for infinities and NaNs.
func (f Format) ExponentMax() uint64 {
	return 1<<f.ExponentBits() - 1
}

// SignMask returns the mask of the sign bit.
func (f Format) SignMask() uint64 {
	return 1 << (f.bits - 1)
}

// ExponentMask returns the mask of the biased exponent field.
func (f Format) ExponentMask() uint64 {
	return f.ExponentMax() << f.sigBits
}

// SignificandMask returns the mask of the stored significand bits.
func (f Format) SignificandMask() uint64 {
	return f.ImplicitBit() - 1
}

// ImplicitBit returns the position of the leading significand bit,
// which is not stored for normal numbers.
func (f Format) ImplicitBit() uint64 {
	return 1 << f.sigBits
}

// FromParts packs sign, biased exponent, and significand into a bit pattern.
// The values are not validated: each one is confined to its own field,
// so higher bits of exp and sig are lost.
func (f Format) FromParts(neg bool, exp, sig uint64) uint64 {
	var sign uint64
	if neg {
		sign = f.SignMask()
	}
	return sign | (exp<<f.sigBits)&f.ExponentMask() | sig&f.SignificandMask()
}

// Split is the inverse of FromParts.
func (f Format) Split(bits uint64) (neg bool, exp, sig uint64) {
	return bits&f.SignMask() != 0, (bits & f.ExponentMask()) >> f.sigBits, bits & f.SignificandMask()
}

// Inf returns the bit pattern of a signed infinity.
func (f Format) Inf(neg bool) uint64 {
	return f.FromParts(neg, f.ExponentMax(), 0)
}

// IsNaN reports whether bits encode a not-a-number.
func (f Format) IsNaN(bits uint64) bool {
	return bits&f.ExponentMask() == f.ExponentMask() && bits&f.SignificandMask() != 0
}
