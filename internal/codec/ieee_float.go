// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"math"
	"math/big"

	"github.com/bitpack/bitstring/internal/bitbuf"
)

// EncodeFloat encodes v as an IEEE-754 binary16/32/64 value, big-endian
// byte order (byte-order variants are applied by the caller via
// ReverseByteOrder). n must be 16, 32, or 64.
func EncodeFloat(n int, v float64) *bitbuf.Buffer {
	switch n {
	case 16:
		return bigIntToBuffer(new(big.Int).SetUint64(uint64(float64To16(v))), 16)
	case 32:
		return bigIntToBuffer(new(big.Int).SetUint64(uint64(math.Float32bits(float32(v)))), 32)
	case 64:
		return bigIntToBuffer(new(big.Int).SetUint64(math.Float64bits(v)), 64)
	default:
		panic(codecError("float length must be 16, 32 or 64"))
	}
}

// DecodeFloat decodes an IEEE-754 binary16/32/64 value.
func DecodeFloat(n int, buf *bitbuf.Buffer) float64 {
	if buf.Len() != n {
		panic(codecError("float buffer length mismatch"))
	}
	u := uint64FromBuffer(buf)
	switch n {
	case 16:
		return float16To64(uint16(u))
	case 32:
		return float64(math.Float32frombits(uint32(u)))
	case 64:
		return math.Float64frombits(u)
	default:
		panic(codecError("float length must be 16, 32 or 64"))
	}
}

// EncodeBfloat16 takes the upper 16 bits of the IEEE-754 binary32
// representation of v, rounding to nearest-even.
func EncodeBfloat16(v float64) *bitbuf.Buffer {
	f32 := float32(v)
	bits := math.Float32bits(f32)
	// Round to nearest-even on truncation to 16 bits.
	roundBit := uint32(1) << 15
	lsb := (bits >> 16) & 1
	if bits&(roundBit-1) > roundBit || (bits&(roundBit-1) == roundBit && lsb == 1) {
		bits += roundBit
	}
	top := uint16(bits >> 16)
	return bigIntToBuffer(new(big.Int).SetUint64(uint64(top)), 16)
}

// DecodeBfloat16 reconstructs a float32 from its upper 16 bits, zero-extended.
func DecodeBfloat16(buf *bitbuf.Buffer) float64 {
	if buf.Len() != 16 {
		panic(codecError("bfloat16 requires 16 bits"))
	}
	u := uint64FromBuffer(buf)
	bits := uint32(u) << 16
	return float64(math.Float32frombits(bits))
}

// float64To16 converts a float64 to an IEEE-754 binary16 bit pattern,
// rounding to nearest-even, saturating overflow to +/-Inf.
func float64To16(v float64) uint16 {
	f32 := float32(v)
	bits := math.Float32bits(f32)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xff) - 127 + 15
	mant := bits & 0x7fffff

	switch {
	case math.IsNaN(v):
		return sign | 0x7e00
	case math.IsInf(v, 0):
		return sign | 0x7c00
	case exp <= 0:
		if exp < -10 {
			return sign // Underflows to zero.
		}
		mant |= 0x800000
		shift := uint(14 - exp)
		half := uint32(1) << (shift - 1)
		m := mant >> shift
		rem := mant & ((1 << shift) - 1)
		if rem > half || (rem == half && m&1 == 1) {
			m++
		}
		return sign | uint16(m)
	case exp >= 0x1f:
		return sign | 0x7c00 // Overflow to infinity.
	default:
		m := mant >> 13
		rem := mant & 0x1fff
		if rem > 0x1000 || (rem == 0x1000 && m&1 == 1) {
			m++
			if m == 0x400 {
				m = 0
				exp++
				if exp >= 0x1f {
					return sign | 0x7c00
				}
			}
		}
		return sign | uint16(exp)<<10 | uint16(m)
	}
}

// float16To64 converts an IEEE-754 binary16 bit pattern to float64 exactly.
func float16To64(h uint16) float64 {
	sign := uint64(h&0x8000) << 48
	exp := (h >> 10) & 0x1f
	mant := uint64(h & 0x3ff)

	switch {
	case exp == 0 && mant == 0:
		return math.Float64frombits(sign)
	case exp == 0: // Subnormal.
		// Normalize.
		e := -1
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= 0x3ff
		bits64Exp := uint64(int64(e)+15-15+1023) << 52
		return math.Float64frombits(sign | bits64Exp | (mant << 42))
	case exp == 0x1f:
		if mant == 0 {
			return math.Float64frombits(sign | 0x7ff0000000000000)
		}
		return math.Float64frombits(sign | 0x7ff0000000000000 | (mant << 42) | 1<<51)
	default:
		bits64Exp := (uint64(exp) - 15 + 1023) << 52
		return math.Float64frombits(sign | bits64Exp | (mant << 42))
	}
}
