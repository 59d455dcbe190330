// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softconv

import (
	"github.com/go-kit/log"

	mu "github.com/avdva/softconv/internal/mathutil"
)

// FloatToInt converts f to I truncating toward zero.
// If f is out of the range of I, the result is Min[I]() or Max[I]().
// NaN is converted to 0.
// If debug is set, intermediate values are written to DiagnosticLogger.
func FloatToInt[I Integer, F Float](f F, debug bool) I {
	var l log.Logger
	if debug {
		l = diagLogger(conversionName[F, I]())
		l.Log("in", f)
	}
	neg, m, ok := truncate(FormatOf[F](), Width[I](), IsSigned[I](), Bits(f), l)
	switch {
	case !ok && neg:
		return Min[I]()
	case !ok:
		return Max[I]()
	case neg:
		return I(mu.Negate(m))
	}
	return I(m)
}

// truncate returns the integral part of the value 'bits' in the format f.
// ok is false, if the magnitude does not fit into a width-bit integer (or
// into its positive half for signed integers), or if the value is negative
// and the integer is unsigned.
func truncate(f Format, width uint, signed bool, bits uint64, l log.Logger) (neg bool, m uint64, ok bool) {
	neg, exp, sig := f.Split(bits)
	if l != nil {
		l.Log("bits", hex(bits), "neg", neg, "exp", exp, "sig", hex(sig))
	}
	if f.IsNaN(bits) {
		return false, 0, true
	}
	bias := f.ExponentBias()
	if exp < bias { // |v| < 1, this includes zeros and subnormals.
		return neg, 0, true
	}
	exp -= bias
	// usable bits of the destination
	limit := uint64(width)
	if signed {
		limit--
	}
	if l != nil {
		l.Log("unbiased_exp", exp, "limit", limit)
	}
	if exp >= limit || neg && !signed {
		return neg, 0, false
	}

	sig |= f.ImplicitBit()
	sigBits := uint64(f.SignificandBits())
	if exp < sigBits {
		m = sig >> (sigBits - exp)
		if l != nil {
			l.Log("rshift", sigBits-exp, "mag", hex(m))
		}
	} else {
		m = sig << (exp - sigBits)
		if l != nil {
			l.Log("lshift", exp-sigBits, "mag", hex(m))
		}
	}
	return neg, m, true
}
