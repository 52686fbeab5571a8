// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"github.com/bitpack/bitstring/internal/bitbuf"
)

// step returns the search-position increment: 8 when restricted to
// byte boundaries, 1 otherwise.
func step(bytealigned bool) int {
	if bytealigned {
		return 8
	}
	return 1
}

func alignStart(start int, bytealigned bool) int {
	if !bytealigned {
		return start
	}
	if r := start % 8; r != 0 {
		return start + (8 - r)
	}
	return start
}

func matchAt(hay, needle *bitbuf.Buffer, pos int) bool {
	n := needle.Len()
	if pos < 0 || pos+n > hay.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if hay.Get(pos+i) != needle.Get(i) {
			return false
		}
	}
	return true
}

// coreFind searches forward from start (inclusive) and returns the bit
// position of the first match, or (-1, false).
func coreFind(hay, needle *bitbuf.Buffer, start int, bytealigned bool) (int, bool) {
	n := needle.Len()
	if n == 0 {
		panic(ValueError("cannot find an empty sub-bitstring"))
	}
	s := step(bytealigned)
	for pos := alignStart(start, bytealigned); pos+n <= hay.Len(); pos += s {
		if matchAt(hay, needle, pos) {
			return pos, true
		}
	}
	return -1, false
}

// coreRFind searches backward, returning the last (highest-index) match
// at or before end.
func coreRFind(hay, needle *bitbuf.Buffer, end int, bytealigned bool) (int, bool) {
	n := needle.Len()
	if n == 0 {
		panic(ValueError("cannot find an empty sub-bitstring"))
	}
	s := step(bytealigned)
	limit := end
	if limit > hay.Len()-n {
		limit = hay.Len() - n
	}
	if bytealigned {
		limit -= limit % 8
	}
	for pos := limit; pos >= 0; pos -= s {
		if matchAt(hay, needle, pos) {
			return pos, true
		}
	}
	return -1, false
}

// coreFindAll returns every match position, overlapping matches
// included: after each hit the scan resumes one step (1 bit, or 8 when
// bytealigned) past the hit's start rather than past its end.
func coreFindAll(hay, needle *bitbuf.Buffer, bytealigned bool) []int {
	n := needle.Len()
	if n == 0 {
		panic(ValueError("cannot find an empty sub-bitstring"))
	}
	s := step(bytealigned)
	var out []int
	for pos := alignStart(0, bytealigned); pos+n <= hay.Len(); pos += s {
		if matchAt(hay, needle, pos) {
			out = append(out, pos)
		}
	}
	return out
}

// Find returns the bit position of the first occurrence of sub at or
// after start.
func (b Bits) Find(sub Bits, start int, o *Options) (pos int, found bool, err error) {
	defer errRecover(&err)
	opts := resolveOptions(o)
	pos, found = coreFind(b.buf, sub.buf, start, opts.Bytealigned)
	return pos, found, nil
}

// RFind returns the bit position of the last occurrence of sub at or
// before end.
func (b Bits) RFind(sub Bits, end int, o *Options) (pos int, found bool, err error) {
	defer errRecover(&err)
	opts := resolveOptions(o)
	pos, found = coreRFind(b.buf, sub.buf, end, opts.Bytealigned)
	return pos, found, nil
}

// FindAll returns every (possibly overlapping) occurrence of sub.
func (b Bits) FindAll(sub Bits, o *Options) (positions []int, err error) {
	defer errRecover(&err)
	opts := resolveOptions(o)
	return coreFindAll(b.buf, sub.buf, opts.Bytealigned), nil
}
