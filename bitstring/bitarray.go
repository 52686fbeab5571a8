// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"fmt"

	"github.com/bitpack/bitstring/internal/bitbuf"
	"github.com/bitpack/bitstring/internal/codec"
)

// BitArray is the mutable counterpart to Bits (spec.md §3): the same
// bit-sequence value, but its edit methods mutate in place rather than
// returning a new value.
type BitArray struct {
	buf *bitbuf.Buffer
}

// NewBitArray builds a mutable BitArray from exactly one Option, the same
// initializer grammar New accepts for Bits.
func NewBitArray(opts ...Option) (result BitArray, err error) {
	defer errRecover(&err)
	buf, buildErr := build(opts)
	if buildErr != nil {
		return BitArray{}, buildErr
	}
	return BitArray{buf: buf}, nil
}

// Len returns the number of bits.
func (b BitArray) Len() int { return b.buf.Len() }

// Mutable returns an independent mutable copy of an immutable Bits.
func (b Bits) Mutable() BitArray { return BitArray{buf: b.buf.Clone()} }

// Immutable returns an independent immutable snapshot of a BitArray.
func (b BitArray) Immutable() Bits { return Bits{buf: b.buf.Clone()} }

// Get reads a single bit.
func (b BitArray) Get(i int) (v bool, err error) {
	defer errRecover(&err)
	return b.buf.Get(i), nil
}

// SetBit writes a single bit.
func (b BitArray) SetBit(i int, v bool) (err error) {
	defer errRecover(&err)
	b.buf.Set(i, v)
	return nil
}

// Set writes v to each position named in pos, allowing negative-from-end
// indices. With no positions given, it sets every bit in the array to v
// (spec.md §4.5 "set(value, pos=None)").
func (b BitArray) Set(v bool, pos ...int) (err error) {
	defer errRecover(&err)
	if len(pos) == 0 {
		for i := 0; i < b.buf.Len(); i++ {
			b.buf.Set(i, v)
		}
		return nil
	}
	for _, p := range pos {
		idx, perr := resolvePosition(p, b.buf.Len(), false)
		if perr != nil {
			return perr
		}
		b.buf.Set(idx, v)
	}
	return nil
}

// Insert splices other into the array starting at pos, growing the array.
func (b *BitArray) Insert(pos int, other Bits) (err error) {
	defer errRecover(&err)
	if pos < 0 || pos > b.buf.Len() {
		panic(IndexError(fmt.Sprintf("insert position %d out of range [0, %d]", pos, b.buf.Len())))
	}
	b.buf.Insert(pos, other.buf)
	return nil
}

// Overwrite writes other's bits starting at pos, in place. Per spec.md's
// resolved Open Question, writing past the current end extends the
// array rather than erroring.
func (b *BitArray) Overwrite(pos int, other Bits) (err error) {
	defer errRecover(&err)
	if pos < 0 {
		panic(IndexError(fmt.Sprintf("overwrite position %d is negative", pos)))
	}
	needed := pos + other.buf.Len()
	if needed > b.buf.Len() {
		b.buf.Append(bitbuf.New(needed - b.buf.Len()))
	}
	for i := 0; i < other.buf.Len(); i++ {
		b.buf.Set(pos+i, other.buf.Get(i))
	}
	return nil
}

// Delete removes the bits in [start, end).
func (b *BitArray) Delete(start, end int) (err error) {
	defer errRecover(&err)
	if start < 0 || end > b.buf.Len() || start > end {
		panic(IndexError(fmt.Sprintf("delete range [%d, %d) invalid for length %d", start, end, b.buf.Len())))
	}
	b.buf.Delete(start, end)
	return nil
}

// Replace substitutes every occurrence of old with replacement, up to
// count times (count < 0 means unbounded), returning the number of
// substitutions made. After each replacement the scan resumes just past
// the inserted replacement, not the original old, so a replacement that
// itself contains old is not re-matched.
func (b *BitArray) Replace(old, replacement Bits, count int, o *Options) (n int, err error) {
	defer errRecover(&err)
	opts := resolveOptions(o)
	pos := 0
	for count < 0 || n < count {
		found, ok := coreFind(b.buf, old.buf, pos, opts.Bytealigned)
		if !ok {
			break
		}
		b.buf.Delete(found, found+old.buf.Len())
		b.buf.Insert(found, replacement.buf)
		n++
		pos = found + replacement.buf.Len()
	}
	return n, nil
}

// Reverse reverses the bit order of [start, end) in place (spec.md §4.5
// "reverse(start, end)"); the rest of the array is untouched.
func (b *BitArray) Reverse(start, end int) (err error) {
	defer errRecover(&err)
	if start < 0 || end > b.buf.Len() || start > end {
		panic(IndexError(fmt.Sprintf("reverse range [%d, %d) invalid for length %d", start, end, b.buf.Len())))
	}
	b.buf.ReverseRange(start, end)
	return nil
}

// Invert flips every bit in [start, end) in place.
func (b *BitArray) Invert(start, end int) (err error) {
	defer errRecover(&err)
	b.buf.InvertRange(start, end)
	return nil
}

// RotateLeft rotates [start, end) left by n bits in place (spec.md §4.5
// "rol(n, start, end)"); n may be negative or exceed the range's length,
// reduced modulo that length first.
func (b *BitArray) RotateLeft(n, start, end int) (err error) {
	defer errRecover(&err)
	if start < 0 || end > b.buf.Len() || start > end {
		panic(IndexError(fmt.Sprintf("rotate range [%d, %d) invalid for length %d", start, end, b.buf.Len())))
	}
	length := end - start
	if length == 0 {
		return nil
	}
	n = ((n % length) + length) % length
	if n == 0 {
		return nil
	}
	head := b.buf.Slice(start, start+n, 1)
	tail := b.buf.Slice(start+n, end, 1)
	tail.Append(head)
	b.buf.Delete(start, end)
	b.buf.Insert(start, tail)
	return nil
}

// RotateRight rotates [start, end) right by n bits in place (spec.md §4.5
// "ror(n, start, end)").
func (b *BitArray) RotateRight(n, start, end int) (err error) {
	defer errRecover(&err)
	if start < 0 || end > b.buf.Len() || start > end {
		panic(IndexError(fmt.Sprintf("rotate range [%d, %d) invalid for length %d", start, end, b.buf.Len())))
	}
	length := end - start
	if length == 0 {
		return nil
	}
	n = ((n % length) + length) % length
	return b.RotateLeft(length-n, start, end)
}

// Byteswap reverses byte order within [start, end) in place, chunk by
// chunk: wordSize selects the chunk size in bytes (0 means "the whole
// range is one chunk"), and repeat controls whether the chunk repeats
// across the range or is applied once at its start (spec.md §4.5
// "byteswap(fmt=None, start, end, repeat=True)"). The range's length,
// or wordSize itself when given, must be a non-zero multiple of 8 bits.
// Returns the number of chunks actually swapped.
func (b *BitArray) Byteswap(wordSize, start, end int, repeat bool) (n int, err error) {
	defer errRecover(&err)
	if start < 0 || end > b.buf.Len() || start > end {
		panic(IndexError(fmt.Sprintf("byteswap range [%d, %d) invalid for length %d", start, end, b.buf.Len())))
	}
	chunkBits := (end - start)
	if wordSize > 0 {
		chunkBits = wordSize * 8
	}
	if chunkBits == 0 {
		return 0, nil
	}
	pos := start
	for pos < end {
		chunkEnd := pos + chunkBits
		if chunkEnd > end {
			break
		}
		swapped := codec.ReverseByteOrder(b.buf.Slice(pos, chunkEnd, 1))
		for k := 0; k < swapped.Len(); k++ {
			b.buf.Set(pos+k, swapped.Get(k))
		}
		n++
		if !repeat {
			break
		}
		pos = chunkEnd
	}
	return n, nil
}
