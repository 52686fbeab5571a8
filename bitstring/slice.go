// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"fmt"

	"github.com/bitpack/bitstring/internal/bitbuf"
)

// resolvePosition normalizes a single bit position against length,
// allowing Python-style negative-from-end indices, then applies the
// LSB0 translation spec.md §9 specifies: effective = lsb0 ? (len-1-i) : i.
func resolvePosition(i, length int, lsb0 bool) (int, error) {
	orig := i
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, IndexError(fmt.Sprintf("index %d out of range for length %d", orig, length))
	}
	if lsb0 {
		i = length - 1 - i
	}
	return i, nil
}

// resolveRange normalizes a [start,end) range against length, allowing
// negative-from-end endpoints, then applies spec.md §9's LSB0
// translation: since bit 0 is the last bit under LSB0 numbering, the
// whole window reflects around the buffer's midpoint rather than each
// endpoint translating independently.
func resolveRange(start, end, length int, lsb0 bool) (int, int, error) {
	origStart, origEnd := start, end
	if start < 0 {
		start += length
	}
	if end < 0 {
		end += length
	}
	if start < 0 || end > length || start > end {
		return 0, 0, ValueError(fmt.Sprintf("range [%d:%d) invalid for length %d", origStart, origEnd, length))
	}
	if lsb0 {
		start, end = length-end, length-start
	}
	return start, end, nil
}

// At returns the bit at logical position i (negative counts from the
// end), honoring o's LSB0 setting (spec.md §4.5, §9).
func (b Bits) At(i int, o *Options) (v bool, err error) {
	defer errRecover(&err)
	idx, perr := resolvePosition(i, b.buf.Len(), resolveOptions(o).LSB0)
	if perr != nil {
		return false, perr
	}
	return b.buf.Get(idx), nil
}

// At returns the bit at logical position i (negative counts from the
// end), honoring o's LSB0 setting.
func (b BitArray) At(i int, o *Options) (v bool, err error) {
	defer errRecover(&err)
	idx, perr := resolvePosition(i, b.buf.Len(), resolveOptions(o).LSB0)
	if perr != nil {
		return false, perr
	}
	return b.buf.Get(idx), nil
}

// Slice returns the sub-bitstring built from bits at start, start+step,
// start+2*step, ... while the index is below end (spec.md §4.5). start
// and end may be negative to count from the end; the range is read in
// storage order regardless of LSB0 (LSB0 only changes which window
// [start,end) selects, per spec.md §9).
func (b Bits) Slice(start, end, step int, o *Options) (result Bits, err error) {
	defer errRecover(&err)
	s, e, rerr := resolveRange(start, end, b.buf.Len(), resolveOptions(o).LSB0)
	if rerr != nil {
		return Bits{}, rerr
	}
	return Bits{buf: b.buf.Slice(s, e, step)}, nil
}

// Slice returns the sub-bitstring built from bits at start, start+step,
// start+2*step, ... while the index is below end.
func (b BitArray) Slice(start, end, step int, o *Options) (result Bits, err error) {
	defer errRecover(&err)
	s, e, rerr := resolveRange(start, end, b.buf.Len(), resolveOptions(o).LSB0)
	if rerr != nil {
		return Bits{}, rerr
	}
	return Bits{buf: b.buf.Slice(s, e, step)}, nil
}

// Concat concatenates zero or more Bits/BitArray values into one new
// Bits, the identity of the monoid being Concat() itself (spec.md §8's
// "Concatenation monoid": associative, with an empty identity). Mixed
// Bits/BitArray arguments are accepted, matching Auto's own leniency.
func Concat(parts ...any) (result Bits, err error) {
	defer errRecover(&err)
	out := bitbuf.New(0)
	for _, p := range parts {
		out.Append(bufOf(p))
	}
	return Bits{buf: out}, nil
}

// Append returns a new Bits equal to b with other's bits concatenated
// after it, leaving both operands unchanged.
func (b Bits) Append(other Bits) Bits {
	out := b.buf.Clone()
	out.Append(other.buf)
	return Bits{buf: out}
}
