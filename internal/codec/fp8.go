// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"math"

	"github.com/bitpack/bitstring/internal/bitbuf"
)

// FP8Params describes one of the non-standard 8-bit binary float families:
// 1 sign bit, expBits exponent bits, and (8 - 1 - expBits) mantissa bits,
// biased by bias.
type FP8Params struct {
	ExpBits int
	Bias    int
}

// Named 8-bit float families from spec.md §4.2.
var (
	P4Binary8 = FP8Params{ExpBits: 4, Bias: 8}
	P3Binary8 = FP8Params{ExpBits: 5, Bias: 16}
)

func (p FP8Params) mantissaBits() int { return 8 - 1 - p.ExpBits }
func (p FP8Params) maxExpField() int  { return (1 << uint(p.ExpBits)) - 1 }
func (p FP8Params) maxMantField() int { return (1 << uint(p.mantissaBits())) - 1 }

// MaxFinite returns the family's largest finite representable magnitude.
func (p FP8Params) MaxFinite() float64 {
	mb := p.mantissaBits()
	clampExp, clampMant := p.maxExpField()-1, p.maxMantField()
	return (1 + float64(clampMant)/float64(int(1)<<uint(mb))) * math.Pow(2, float64(clampExp-p.Bias))
}

// EncodeFP8 encodes v into the given 8-bit float family. NaN encodes to
// the NaN code (all-ones exponent field, mantissa 1). Infinities and
// values exceeding the family's largest finite magnitude saturate to the
// sign-appropriate clamp code (the largest finite magnitude the family
// can represent, so decode(encode(clamped)) stays finite); the clamp code
// is derived from (expBits, bias), not fixed at 127/255.
func EncodeFP8(p FP8Params, v float64) *bitbuf.Buffer {
	mb := p.mantissaBits()
	signBit := 0
	if math.Signbit(v) {
		signBit = 1
	}
	buf := bitbuf.New(8)
	writeFP8 := func(expField, mantField int) {
		code := signBit<<7 | expField<<uint(mb) | mantField
		for i := 0; i < 8; i++ {
			buf.Set(i, code&(0x80>>uint(i)) != 0)
		}
	}

	switch {
	case math.IsNaN(v):
		writeFP8(p.maxExpField(), 1)
		return buf
	case v == 0:
		writeFP8(0, 0)
		return buf
	}

	clampExp, clampMant := p.maxExpField()-1, p.maxMantField()
	maxFinite := p.MaxFinite()

	av := math.Abs(v)
	if math.IsInf(v, 0) || av > maxFinite {
		writeFP8(clampExp, clampMant)
		return buf
	}

	exp := int(math.Floor(math.Log2(av)))
	mantissa := int(math.Round((av/math.Pow(2, float64(exp)) - 1) * float64(int(1)<<uint(mb))))
	if mantissa == int(1)<<uint(mb) {
		mantissa = 0
		exp++
	}
	expField := exp + p.Bias
	if expField < 1 {
		// Subnormal: re-derive mantissa directly against 2^(1-bias).
		scale := math.Pow(2, float64(1-p.Bias))
		mantissa = int(math.Round(av / scale * float64(int(1)<<uint(mb))))
		if mantissa > p.maxMantField() {
			writeFP8(1, 0) // Rounds up into the smallest normal.
			return buf
		}
		writeFP8(0, mantissa)
		return buf
	}
	if expField >= p.maxExpField() {
		writeFP8(clampExp, clampMant)
		return buf
	}
	writeFP8(expField, mantissa)
	return buf
}

// DecodeFP8 decodes an 8-bit value in the given float family.
func DecodeFP8(p FP8Params, buf *bitbuf.Buffer) float64 {
	if buf.Len() != 8 {
		panic(codecError("8-bit float requires exactly 8 bits"))
	}
	mb := p.mantissaBits()
	code := int(uint64FromBuffer(buf))
	sign := 1.0
	if code&0x80 != 0 {
		sign = -1.0
	}
	expField := (code >> uint(mb)) & p.maxExpField()
	mantField := code & p.maxMantField()

	switch {
	case expField == p.maxExpField() && mantField == 0:
		return sign * math.Inf(1)
	case expField == p.maxExpField():
		return math.NaN()
	case expField == 0:
		return sign * (float64(mantField) / float64(int(1)<<uint(mb))) * math.Pow(2, float64(1-p.Bias))
	default:
		return sign * (1 + float64(mantField)/float64(int(1)<<uint(mb))) * math.Pow(2, float64(expField-p.Bias))
	}
}
