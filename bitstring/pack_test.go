// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackPositional(t *testing.T) {
	b, err := Pack("uint:8, uint:8", uint64(1), uint64(2))
	require.NoError(t, err)
	assert.Equal(t, 16, b.Len())
}

func TestPackLiteralTokensNeedNoArgs(t *testing.T) {
	b, err := Pack("0xff, uint:8=3")
	require.NoError(t, err)
	assert.Equal(t, 16, b.Len())
}

func TestPackPadTokenConsumesNoArgsAndIsZero(t *testing.T) {
	b, err := Pack("pad:4, uint:4", uint64(0xf))
	require.NoError(t, err)
	assert.Equal(t, "00001111", b.Bin())
}

func TestPackPadWithoutLengthErrors(t *testing.T) {
	_, err := Pack("pad")
	assert.Error(t, err)
}

func TestPackTooManyValuesErrors(t *testing.T) {
	_, err := Pack("uint:8", uint64(1), uint64(2))
	assert.Error(t, err)
}

func TestPackTooFewValuesErrors(t *testing.T) {
	_, err := Pack("uint:8, uint:8", uint64(1))
	assert.Error(t, err)
}

func TestPackStretchyTokenUsesNaturalLength(t *testing.T) {
	b, err := Pack("bytes", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 24, b.Len())
}

func TestPackNamedFillsByTokenName(t *testing.T) {
	b, err := PackNamed("uint:8, hex:8", map[string]any{
		"uint": uint64(9),
		"hex":  "ab",
	})
	require.NoError(t, err)
	assert.Equal(t, 16, b.Len())
}

func TestPackNamedMissingKeyErrors(t *testing.T) {
	_, err := PackNamed("uint:8", map[string]any{})
	assert.Error(t, err)
}

func TestPackNamedPadToken(t *testing.T) {
	b, err := PackNamed("pad:3, bool", map[string]any{"bool": true})
	require.NoError(t, err)
	assert.Equal(t, "0001", b.Bin())
}

func TestPackInvalidFormatErrors(t *testing.T) {
	_, err := Pack("???")
	assert.Error(t, err)
}
