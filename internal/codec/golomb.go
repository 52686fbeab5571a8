// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import "github.com/bitpack/bitstring/internal/bitbuf"

// EncodeUE encodes a non-negative integer as an unsigned exponential
// Golomb code: len(bin(i+1))-1 leading zeros, followed by bin(i+1).
func EncodeUE(i uint64) *bitbuf.Buffer {
	m := i + 1
	nbits := bitLen64(m)
	leadingZeros := nbits - 1
	buf := bitbuf.New(leadingZeros + nbits)
	for k := 0; k < leadingZeros; k++ {
		buf.Set(k, false)
	}
	for k := 0; k < nbits; k++ {
		buf.Set(leadingZeros+k, m&(1<<uint(nbits-1-k)) != 0)
	}
	return buf
}

// DecodeUE decodes an unsigned exponential Golomb code from the start of
// buf, returning the value and the number of bits consumed.
func DecodeUE(buf *bitbuf.Buffer) (uint64, int) {
	n := buf.Len()
	k := 0
	for k < n && !buf.Get(k) {
		k++
	}
	if k >= n {
		panic(codecError("exp-golomb code ran out of bits"))
	}
	width := k + 1
	if k+width > n {
		panic(codecError("exp-golomb code ran out of bits"))
	}
	var m uint64
	for j := 0; j < width; j++ {
		m <<= 1
		if buf.Get(k + j) {
			m |= 1
		}
	}
	return m - 1, k + width
}

// EncodeSE zigzag-maps a signed integer onto EncodeUE: 0 -> ue(0),
// positive i -> ue(2i-1), negative i -> ue(-2i).
func EncodeSE(i int64) *bitbuf.Buffer {
	switch {
	case i == 0:
		return EncodeUE(0)
	case i > 0:
		return EncodeUE(uint64(2*i - 1))
	default:
		return EncodeUE(uint64(-2 * i))
	}
}

// DecodeSE decodes a signed exponential Golomb code.
func DecodeSE(buf *bitbuf.Buffer) (int64, int) {
	m, n := DecodeUE(buf)
	if m == 0 {
		return 0, n
	}
	if m%2 == 1 {
		return int64((m + 1) / 2), n
	}
	return -int64(m / 2), n
}

// EncodeUIE encodes a non-negative integer as an interleaved exponential
// Golomb code: for i := n downto 1, emit a '1' continuation bit followed
// by bit i of (v+1); terminate with a '0' stop bit.
func EncodeUIE(v uint64) *bitbuf.Buffer {
	m := v + 1
	n := bitLen64(m) - 1 // Number of bits below the leading 1.
	buf := bitbuf.New(2*n + 1)
	idx := 0
	for k := n; k >= 1; k-- {
		buf.Set(idx, true)
		idx++
		bit := (m>>uint(k-1))&1 == 1
		buf.Set(idx, bit)
		idx++
	}
	buf.Set(idx, false)
	return buf
}

// DecodeUIE decodes an interleaved exponential Golomb code from the start
// of buf, returning the value and bits consumed.
func DecodeUIE(buf *bitbuf.Buffer) (uint64, int) {
	n := buf.Len()
	m := uint64(1)
	pos := 0
	for {
		if pos >= n {
			panic(codecError("interleaved exp-golomb code ran out of bits"))
		}
		cont := buf.Get(pos)
		pos++
		if !cont {
			break
		}
		if pos >= n {
			panic(codecError("interleaved exp-golomb code ran out of bits"))
		}
		bit := buf.Get(pos)
		pos++
		m <<= 1
		if bit {
			m |= 1
		}
	}
	return m - 1, pos
}

// EncodeSIE zigzag-maps a signed integer onto EncodeUIE the same way
// EncodeSE maps onto EncodeUE.
func EncodeSIE(i int64) *bitbuf.Buffer {
	switch {
	case i == 0:
		return EncodeUIE(0)
	case i > 0:
		return EncodeUIE(uint64(2*i - 1))
	default:
		return EncodeUIE(uint64(-2 * i))
	}
}

// DecodeSIE decodes a signed interleaved exponential Golomb code.
func DecodeSIE(buf *bitbuf.Buffer) (int64, int) {
	m, n := DecodeUIE(buf)
	if m == 0 {
		return 0, n
	}
	if m%2 == 1 {
		return int64((m + 1) / 2), n
	}
	return -int64(m / 2), n
}

func bitLen64(v uint64) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}
	if n == 0 {
		n = 1
	}
	return n
}
