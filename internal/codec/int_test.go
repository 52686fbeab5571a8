// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"math/big"
	"testing"

	"github.com/bitpack/bitstring/internal/bitbuf"
	"github.com/bitpack/bitstring/internal/bitbuf/bitbuftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeUintRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 255, 256, 65535} {
		buf := EncodeUint(16, big.NewInt(v))
		require.Equal(t, 16, buf.Len())
		got := DecodeUint(buf)
		assert.Equal(t, big.NewInt(v), got)
	}
}

func TestEncodeUintRejectsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { EncodeUint(8, big.NewInt(256)) })
	assert.Panics(t, func() { EncodeUint(8, big.NewInt(-1)) })
}

func TestEncodeDecodeIntRoundTrip(t *testing.T) {
	for _, v := range []int64{0, -1, 127, -128, 1, -2} {
		buf := EncodeInt(8, big.NewInt(v))
		got := DecodeInt(buf)
		assert.Equal(t, big.NewInt(v), got, "value %d", v)
	}
}

func TestEncodeIntRejectsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { EncodeInt(8, big.NewInt(128)) })
	assert.Panics(t, func() { EncodeInt(8, big.NewInt(-129)) })
}

func TestReverseByteOrder(t *testing.T) {
	buf := bitbuftest.MustHex("01020304")
	rev := ReverseByteOrder(buf)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, rev.ToBytes())
}

func TestReverseByteOrderRequiresByteMultiple(t *testing.T) {
	assert.Panics(t, func() { ReverseByteOrder(bitbuf.New(4)) })
	assert.Panics(t, func() { ReverseByteOrder(bitbuf.New(0)) })
}
