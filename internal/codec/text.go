// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"strings"

	"github.com/bitpack/bitstring/internal/bitbuf"
)

const hexDigits = "0123456789abcdef"

// EncodeHex encodes a hex-digit string (n, a multiple of 4, bits per
// digit) into a buffer. The string must consist solely of hex digits.
func EncodeHex(s string) *bitbuf.Buffer {
	buf := bitbuf.New(len(s) * 4)
	for i, c := range strings.ToLower(s) {
		v := strings.IndexRune(hexDigits, c)
		if v < 0 {
			panic(codecError("invalid hex digit " + string(c)))
		}
		for j := 0; j < 4; j++ {
			buf.Set(i*4+j, v&(0x8>>uint(j)) != 0)
		}
	}
	return buf
}

// DecodeHex decodes a buffer whose length is a multiple of 4 into a hex string.
func DecodeHex(buf *bitbuf.Buffer) string {
	if buf.Len()%4 != 0 {
		panic(codecError("hex requires a bit length that is a multiple of 4"))
	}
	n := buf.Len() / 4
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		var v int
		for j := 0; j < 4; j++ {
			v <<= 1
			if buf.Get(i*4 + j) {
				v |= 1
			}
		}
		sb.WriteByte(hexDigits[v])
	}
	return sb.String()
}

// EncodeOct encodes an octal-digit string (3 bits per digit).
func EncodeOct(s string) *bitbuf.Buffer {
	buf := bitbuf.New(len(s) * 3)
	for i, c := range s {
		if c < '0' || c > '7' {
			panic(codecError("invalid octal digit " + string(c)))
		}
		v := int(c - '0')
		for j := 0; j < 3; j++ {
			buf.Set(i*3+j, v&(0x4>>uint(j)) != 0)
		}
	}
	return buf
}

// DecodeOct decodes a buffer whose length is a multiple of 3 into an octal string.
func DecodeOct(buf *bitbuf.Buffer) string {
	if buf.Len()%3 != 0 {
		panic(codecError("oct requires a bit length that is a multiple of 3"))
	}
	n := buf.Len() / 3
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		var v int
		for j := 0; j < 3; j++ {
			v <<= 1
			if buf.Get(i*3 + j) {
				v |= 1
			}
		}
		sb.WriteByte(byte('0' + v))
	}
	return sb.String()
}

// EncodeBin encodes a string of '0'/'1' characters (1 bit per digit).
func EncodeBin(s string) *bitbuf.Buffer {
	buf := bitbuf.New(len(s))
	for i, c := range s {
		switch c {
		case '0':
			buf.Set(i, false)
		case '1':
			buf.Set(i, true)
		default:
			panic(codecError("invalid binary digit " + string(c)))
		}
	}
	return buf
}

// DecodeBin decodes a buffer into a string of '0'/'1' characters.
func DecodeBin(buf *bitbuf.Buffer) string {
	var sb strings.Builder
	sb.Grow(buf.Len())
	for i := 0; i < buf.Len(); i++ {
		if buf.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
