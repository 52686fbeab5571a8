// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"math"

	"github.com/bitpack/bitstring/internal/bitbuf"
)

// OverflowPolicy selects what EncodeMXFP does with magnitudes beyond the
// family's largest finite representable value.
type OverflowPolicy int

const (
	// Saturate clamps an overflowing magnitude to the largest finite value.
	Saturate OverflowPolicy = iota
	// Overflow permits encoding to a signed infinity.
	Overflow
)

// MXFPParams describes one MXFP micro-scaling float family: 1 sign bit,
// ExpBits exponent bits, MantissaBits mantissa bits, biased by Bias. Total
// width is 1+ExpBits+MantissaBits.
type MXFPParams struct {
	ExpBits      int
	MantissaBits int
	Bias         int
	Policy       OverflowPolicy
}

// Width returns the total bit width of the family.
func (p MXFPParams) Width() int { return 1 + p.ExpBits + p.MantissaBits }

func (p MXFPParams) maxExpField() int  { return (1 << uint(p.ExpBits)) - 1 }
func (p MXFPParams) maxMantField() int { return (1 << uint(p.MantissaBits)) - 1 }

// Named MXFP families matching the registry table in spec.md §4.2. No
// clamp code is hard-coded per variant: e4m3 and e5m2, like every other
// family, take theirs from clampFields, and it is the same under both
// overflow policies.
var (
	E4M3 = MXFPParams{ExpBits: 4, MantissaBits: 3, Bias: 7, Policy: Saturate}
	E5M2 = MXFPParams{ExpBits: 5, MantissaBits: 2, Bias: 15, Policy: Saturate}
	E2M1 = MXFPParams{ExpBits: 2, MantissaBits: 1, Bias: 1, Policy: Saturate}
	E3M2 = MXFPParams{ExpBits: 3, MantissaBits: 2, Bias: 3, Policy: Saturate}
)

// clampFields returns the (expField, mantField) of the largest finite
// magnitude this family can hold: exponent field maxExp-1 with an
// all-ones mantissa. It takes no policy; the all-ones exponent field is
// left for NaN and, under Overflow, for the +/-Inf code (zero mantissa).
func (p MXFPParams) clampFields() (int, int) {
	return p.maxExpField() - 1, p.maxMantField()
}

// MaxFinite returns the family's largest finite representable magnitude.
func (p MXFPParams) MaxFinite() float64 {
	expField, mantField := p.clampFields()
	return (1 + float64(mantField)/float64(int(1)<<uint(p.MantissaBits))) * math.Pow(2, float64(expField-p.Bias))
}

// EncodeMXFP encodes v into the family's bit width using the family's own
// default overflow policy.
func EncodeMXFP(p MXFPParams, v float64) *bitbuf.Buffer {
	return EncodeMXFPWithPolicy(p, v, p.Policy)
}

// EncodeMXFPWithPolicy is EncodeMXFP with the overflow policy supplied by
// the caller instead of taken from p.Policy, so a process- or call-scoped
// choice (bitstring.Options.MXFPOverflow) can override the family default.
func EncodeMXFPWithPolicy(p MXFPParams, v float64, policy OverflowPolicy) *bitbuf.Buffer {
	w := p.Width()
	mb := p.MantissaBits
	signBit := 0
	if math.Signbit(v) {
		signBit = 1
	}
	buf := bitbuf.New(w)
	write := func(expField, mantField int) {
		code := signBit<<uint(p.ExpBits+mb) | expField<<uint(mb) | mantField
		for i := 0; i < w; i++ {
			buf.Set(i, code&(1<<uint(w-1-i)) != 0)
		}
	}

	switch {
	case math.IsNaN(v):
		write(p.maxExpField(), p.maxMantField())
		return buf
	case v == 0:
		write(0, 0)
		return buf
	}

	av := math.Abs(v)
	maxFinite := p.MaxFinite()
	if math.IsInf(v, 0) || av > maxFinite {
		if policy == Overflow {
			write(p.maxExpField(), 0) // +/-Inf code.
		} else {
			expField, mantField := p.clampFields()
			write(expField, mantField)
		}
		return buf
	}

	exp := int(math.Floor(math.Log2(av)))
	expField := exp + p.Bias
	if expField < 1 {
		scale := math.Pow(2, float64(1-p.Bias))
		mantissa := int(math.Round(av / scale * float64(int(1)<<uint(mb))))
		if mantissa > p.maxMantField() {
			write(1, 0)
			return buf
		}
		write(0, mantissa)
		return buf
	}
	mantissa := int(math.Round((av/math.Pow(2, float64(exp)) - 1) * float64(int(1)<<uint(mb))))
	if mantissa == int(1)<<uint(mb) {
		mantissa = 0
		expField++
	}
	if expField >= p.maxExpField() {
		expField, mantissa = p.clampFields()
	}
	write(expField, mantissa)
	return buf
}

// DecodeMXFP decodes an MXFP-family value using the family's own default
// overflow policy.
func DecodeMXFP(p MXFPParams, buf *bitbuf.Buffer) float64 {
	return DecodeMXFPWithPolicy(p, buf, p.Policy)
}

// DecodeMXFPWithPolicy is DecodeMXFP with the overflow policy supplied by
// the caller, so bits encoded under an overridden policy decode back to
// the same value rather than the family default's interpretation of the
// all-ones-exponent code.
func DecodeMXFPWithPolicy(p MXFPParams, buf *bitbuf.Buffer, policy OverflowPolicy) float64 {
	w := p.Width()
	if buf.Len() != w {
		panic(codecError("mxfp buffer length mismatch"))
	}
	mb := p.MantissaBits
	code := int(uint64FromBuffer(buf))
	sign := 1.0
	if code&(1<<uint(w-1)) != 0 {
		sign = -1.0
	}
	expField := (code >> uint(mb)) & p.maxExpField()
	mantField := code & p.maxMantField()

	switch {
	case expField == p.maxExpField() && mantField == 0:
		if policy == Overflow {
			return sign * math.Inf(1)
		}
		return math.NaN()
	case expField == p.maxExpField():
		return math.NaN()
	case expField == 0:
		return sign * (float64(mantField) / float64(int(1)<<uint(mb))) * math.Pow(2, float64(1-p.Bias))
	default:
		return sign * (1 + float64(mantField)/float64(int(1)<<uint(mb))) * math.Pow(2, float64(expField-p.Bias))
	}
}

// EncodeE8M0 encodes an exponent-only 8-bit unsigned scale factor: the
// decoded value is 2^(exp-127); NaN is represented by exp==255.
func EncodeE8M0(v float64) *bitbuf.Buffer {
	buf := bitbuf.New(8)
	var exp int
	if math.IsNaN(v) {
		exp = 255
	} else {
		exp = int(math.Round(math.Log2(v))) + 127
		if exp < 0 {
			exp = 0
		}
		if exp > 254 {
			exp = 254
		}
	}
	for i := 0; i < 8; i++ {
		buf.Set(i, exp&(0x80>>uint(i)) != 0)
	}
	return buf
}

// DecodeE8M0 decodes an exponent-only 8-bit unsigned scale factor.
func DecodeE8M0(buf *bitbuf.Buffer) float64 {
	if buf.Len() != 8 {
		panic(codecError("e8m0mxfp requires exactly 8 bits"))
	}
	exp := int(uint64FromBuffer(buf))
	if exp == 255 {
		return math.NaN()
	}
	return math.Pow(2, float64(exp-127))
}
