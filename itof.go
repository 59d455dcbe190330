// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softconv

import (
	"github.com/go-kit/log"

	mu "github.com/avdva/softconv/internal/mathutil"
)

// The work register holds the significand with its implicit bit
// followed by workBits guard bits, the lowest of which is sticky.
//
//	implicit bit   significand   guard
//	1              mmm...mmm     ggs
const (
	workBits = 3
	// workRound is one half of the lowest kept significand bit.
	workRound = 1 << (workBits - 1)
	// workMask selects the round field: the lowest kept bit and the guard bits.
	workMask = 1<<(workBits+1) - 1
)

// IntToFloat converts i to the nearest value of F, rounding half to even.
// Integers too large for F become a signed infinity.
// If debug is set, intermediate values are written to DiagnosticLogger.
func IntToFloat[F Float, I Integer](i I, debug bool) F {
	var l log.Logger
	if debug {
		l = diagLogger(conversionName[I, F]())
		l.Log("in", i)
	}
	neg, m := Magnitude(i)
	return FromBits[F](intToFloat(FormatOf[F](), Width[I](), neg, m, l))
}

// intToFloat returns the bit pattern of (-1)^neg * m in the format f.
// m must fit into width bits. If l is not nil, the steps are logged into it.
func intToFloat(f Format, width uint, neg bool, m uint64, l log.Logger) uint64 {
	if m == 0 {
		return f.FromParts(false, 0, 0)
	}
	payloadLen := width - mu.LeadingZeros(m, width)
	exp := f.ExponentBias() + uint64(payloadLen) - 1
	if l != nil {
		l.Log("neg", neg, "mag", hex(m), "payload_len", payloadLen, "exp", exp)
	}
	if exp >= f.ExponentMax() {
		return f.Inf(neg)
	}

	wrBits := f.SignificandBits() + workBits + 1
	wr := m
	if payloadLen < wrBits {
		wr <<= wrBits - payloadLen
		if l != nil {
			l.Log("lshift", wrBits-payloadLen, "wr", hex(wr))
		}
	} else {
		// the dropped bits only matter as a whole, they are folded into the sticky bit.
		wr = mu.ShiftRightSticky(wr, payloadLen-wrBits)
		if l != nil {
			l.Log("rshift", payloadLen-wrBits, "wr", hex(wr))
		}
	}

	// drop the implicit bit, so that a carry out of the significand is easy to detect.
	wr &= f.SignificandMask()<<workBits | workMask
	if wr&workMask > workRound {
		wr += workRound
	}
	if wr >= 1<<(wrBits-1) {
		exp++
		if exp >= f.ExponentMax() {
			return f.Inf(neg)
		}
	}
	if l != nil {
		l.Log("rounded", hex(wr), "exp", exp, "frac", hex(wr>>workBits&f.SignificandMask()))
	}
	return f.FromParts(neg, exp, wr>>workBits)
}
