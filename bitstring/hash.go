// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a stable 64-bit digest of b's length and content, so that
// Bits with equal content hash equally regardless of how each was
// constructed (spec.md §3's hashing invariant).
func (b Bits) Hash() uint64 {
	var lenPrefix [8]byte
	binary.BigEndian.PutUint64(lenPrefix[:], uint64(b.buf.Len()))
	h := xxhash.New()
	h.Write(lenPrefix[:])
	h.Write(b.buf.ToBytes())
	return h.Sum64()
}

// Equal reports whether a and b have identical length and content.
func (a Bits) Equal(b Bits) bool { return a.buf.Equal(b.buf) }
