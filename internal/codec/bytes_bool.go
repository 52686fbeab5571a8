// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import "github.com/bitpack/bitstring/internal/bitbuf"

// EncodeBytes packs raw bytes verbatim, 8 bits each.
func EncodeBytes(b []byte) *bitbuf.Buffer {
	return bitbuf.FromBytes(b, len(b)*8, 0)
}

// DecodeBytes unpacks a byte-aligned buffer into raw bytes.
func DecodeBytes(buf *bitbuf.Buffer) []byte {
	if buf.Len()%8 != 0 {
		panic(codecError("bytes requires a bit length that is a multiple of 8"))
	}
	return buf.ToBytes()
}

// EncodeBool encodes a single bit.
func EncodeBool(v bool) *bitbuf.Buffer {
	buf := bitbuf.New(1)
	buf.Set(0, v)
	return buf
}

// DecodeBool decodes a single-bit buffer.
func DecodeBool(buf *bitbuf.Buffer) bool {
	if buf.Len() != 1 {
		panic(codecError("bool requires exactly 1 bit"))
	}
	return buf.Get(0)
}
