// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codec implements the pure encode/decode functions that convert
// between a bitbuf.Buffer region and a typed Go value, for every dtype
// family spec.md §4.2 names. Every function here is a pure function: no
// family knows about the dtype registry, the token parser, or any of the
// higher Bits/BitArray/Array types built on top of it.
package codec

import (
	"math/big"

	"github.com/bitpack/bitstring/internal/bitbuf"
)

// EncodeUint encodes a non-negative value into an n-bit big-endian
// unsigned field. It panics if v does not fit in n bits.
func EncodeUint(n int, v *big.Int) *bitbuf.Buffer {
	if n < 1 {
		panic(codecError("uint length must be >= 1"))
	}
	if v.Sign() < 0 {
		panic(codecError("uint value must be non-negative"))
	}
	max := new(big.Int).Lsh(big.NewInt(1), uint(n))
	if v.Cmp(max) >= 0 {
		panic(codecError("uint value out of range for given length"))
	}
	return bigIntToBuffer(v, n)
}

// DecodeUint decodes an n-bit big-endian unsigned field.
func DecodeUint(buf *bitbuf.Buffer) *big.Int {
	return bufferToBigUint(buf)
}

// EncodeInt encodes a two's-complement signed value into an n-bit
// big-endian field. It panics if v does not fit in n bits.
func EncodeInt(n int, v *big.Int) *bitbuf.Buffer {
	if n < 2 {
		panic(codecError("int length must be >= 2"))
	}
	lo := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(n-1)))
	hi := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(n-1)), big.NewInt(1))
	if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
		panic(codecError("int value out of range for given length"))
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(n))
	u := new(big.Int).Mod(v, mod) // Go's big.Int.Mod is always non-negative.
	return bigIntToBuffer(u, n)
}

// DecodeInt decodes an n-bit two's-complement signed field.
func DecodeInt(buf *bitbuf.Buffer) *big.Int {
	n := buf.Len()
	u := bufferToBigUint(buf)
	if n == 0 {
		return u
	}
	if buf.Get(0) { // Sign bit set: subtract 2^n.
		mod := new(big.Int).Lsh(big.NewInt(1), uint(n))
		return new(big.Int).Sub(u, mod)
	}
	return u
}

// bigIntToBuffer renders a non-negative value into an n-bit MSB0 buffer.
func bigIntToBuffer(v *big.Int, n int) *bitbuf.Buffer {
	buf := bitbuf.New(n)
	bytes := v.Bytes() // big-endian, no leading zero byte, may be empty for 0
	// Place bytes right-aligned within n bits.
	bitOff := n - len(bytes)*8
	for i, bt := range bytes {
		for j := 0; j < 8; j++ {
			bitIdx := bitOff + i*8 + j
			if bitIdx < 0 {
				continue // Truncated by range check above; should not happen.
			}
			buf.Set(bitIdx, bt&(0x80>>uint(j)) != 0)
		}
	}
	return buf
}

// bufferToBigUint reads an MSB0 buffer as an unsigned big.Int.
func bufferToBigUint(buf *bitbuf.Buffer) *big.Int {
	n := buf.Len()
	nbytes := (n + 7) / 8
	raw := make([]byte, nbytes)
	for i := 0; i < n; i++ {
		if buf.Get(i) {
			// Bit i, counting from the MSB of the logical n-bit number,
			// lands at byte (i+pad)/8 where pad right-aligns the value.
			pad := nbytes*8 - n
			bitIdx := pad + i
			raw[bitIdx/8] |= 0x80 >> uint(bitIdx%8)
		}
	}
	return new(big.Int).SetBytes(raw)
}

// uint64FromBuffer reads buf (at most 64 bits) as an unsigned integer.
func uint64FromBuffer(buf *bitbuf.Buffer) uint64 {
	if buf.Len() > 64 {
		panic(codecError("value does not fit in 64 bits"))
	}
	var v uint64
	for i := 0; i < buf.Len(); i++ {
		v <<= 1
		if buf.Get(i) {
			v |= 1
		}
	}
	return v
}

// ReverseByteOrder returns a new buffer with the bytes of buf reversed.
// buf.Len() must be a positive multiple of 8.
func ReverseByteOrder(buf *bitbuf.Buffer) *bitbuf.Buffer {
	n := buf.Len()
	if n == 0 || n%8 != 0 {
		panic(codecError("byte-order reversal requires a non-zero multiple of 8 bits"))
	}
	bs := buf.ToBytes()
	out := make([]byte, len(bs))
	for i, b := range bs {
		out[len(bs)-1-i] = b
	}
	return bitbuf.FromBytes(out, n, 0)
}

type codecError string

func (e codecError) Error() string { return "codec: " + string(e) }
