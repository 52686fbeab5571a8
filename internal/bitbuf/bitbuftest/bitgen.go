// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitbuftest provides terse helpers for building bitbuf.Buffer
// fixtures in tests, in the spirit of the teacher's BitGen mini-language
// (internal/testutil/bitgen.go in dsnet-compress): short, human-typeable
// tokens rather than manual byte-slice construction.
package bitbuftest

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bitpack/bitstring/internal/bitbuf"
)

// MustBin builds a Buffer from a string of '0'/'1' characters (MSB first).
// Whitespace is ignored. Panics on any other character.
func MustBin(s string) *bitbuf.Buffer {
	s = strings.Join(strings.Fields(s), "")
	buf := bitbuf.New(len(s))
	for i, c := range s {
		switch c {
		case '0':
			buf.Set(i, false)
		case '1':
			buf.Set(i, true)
		default:
			panic(fmt.Sprintf("bitbuftest: invalid bit char %q", c))
		}
	}
	return buf
}

// MustHex builds a Buffer from a hex string (even number of nibbles),
// interpreted as whole bytes.
func MustHex(s string) *bitbuf.Buffer {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("bitbuftest: invalid hex %q: %v", s, err))
	}
	return bitbuf.FromBytes(b, len(b)*8, 0)
}
