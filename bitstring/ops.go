// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import "github.com/bitpack/bitstring/internal/bitbuf"

// And returns the elementwise AND of b and other; both must share a length.
func (b Bits) And(other Bits) (result Bits, err error) {
	defer errRecover(&err)
	return Bits{buf: b.buf.And(other.buf)}, nil
}

// Or returns the elementwise OR of b and other; both must share a length.
func (b Bits) Or(other Bits) (result Bits, err error) {
	defer errRecover(&err)
	return Bits{buf: b.buf.Or(other.buf)}, nil
}

// Xor returns the elementwise XOR of b and other; both must share a length.
func (b Bits) Xor(other Bits) (result Bits, err error) {
	defer errRecover(&err)
	return Bits{buf: b.buf.Xor(other.buf)}, nil
}

// Not returns the bitwise complement of b; b must be non-empty.
func (b Bits) Not() (result Bits, err error) {
	defer errRecover(&err)
	return Bits{buf: b.buf.Not()}, nil
}

func shiftLeft(buf *bitbuf.Buffer, n int) *bitbuf.Buffer {
	length := buf.Len()
	out := bitbuf.New(length)
	if length == 0 || n >= length {
		return out
	}
	for i := 0; i < length-n; i++ {
		out.Set(i, buf.Get(i+n))
	}
	return out
}

func shiftRight(buf *bitbuf.Buffer, n int) *bitbuf.Buffer {
	length := buf.Len()
	out := bitbuf.New(length)
	if length == 0 || n >= length {
		return out
	}
	for i := n; i < length; i++ {
		out.Set(i, buf.Get(i-n))
	}
	return out
}

// Lshift returns b shifted left by n bits: the n most-significant bits
// are dropped and n zero bits fill in at the least-significant end,
// length unchanged (spec.md §4.5 "Shifts").
func (b Bits) Lshift(n int) (result Bits, err error) {
	defer errRecover(&err)
	if n < 0 {
		panic(ValueError("shift amount must be non-negative"))
	}
	return Bits{buf: shiftLeft(b.buf, n)}, nil
}

// Rshift returns b shifted right by n bits: the n least-significant bits
// are dropped and n zero bits fill in at the most-significant end.
func (b Bits) Rshift(n int) (result Bits, err error) {
	defer errRecover(&err)
	if n < 0 {
		panic(ValueError("shift amount must be non-negative"))
	}
	return Bits{buf: shiftRight(b.buf, n)}, nil
}

// And ANDs other into the array in place; both must share a length.
func (b *BitArray) And(other BitArray) (err error) {
	defer errRecover(&err)
	b.buf = b.buf.And(other.buf)
	return nil
}

// Or ORs other into the array in place; both must share a length.
func (b *BitArray) Or(other BitArray) (err error) {
	defer errRecover(&err)
	b.buf = b.buf.Or(other.buf)
	return nil
}

// Xor XORs other into the array in place; both must share a length.
func (b *BitArray) Xor(other BitArray) (err error) {
	defer errRecover(&err)
	b.buf = b.buf.Xor(other.buf)
	return nil
}

// Not complements every bit in place; equivalent to Invert(0, Len()).
func (b *BitArray) Not() (err error) {
	defer errRecover(&err)
	b.buf.InvertRange(0, b.buf.Len())
	return nil
}

// Lshift shifts the array left by n bits in place, per Bits.Lshift.
func (b *BitArray) Lshift(n int) (err error) {
	defer errRecover(&err)
	if n < 0 {
		panic(ValueError("shift amount must be non-negative"))
	}
	b.buf = shiftLeft(b.buf, n)
	return nil
}

// Rshift shifts the array right by n bits in place, per Bits.Rshift.
func (b *BitArray) Rshift(n int) (err error) {
	defer errRecover(&err)
	if n < 0 {
		panic(ValueError("shift amount must be non-negative"))
	}
	b.buf = shiftRight(b.buf, n)
	return nil
}
