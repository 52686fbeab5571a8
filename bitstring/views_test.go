// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewUintAndInt(t *testing.T) {
	b := MustNew(Uint(200, 8))
	u, err := b.Uint()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(200), u)

	neg := MustNew(Bin("11111111"))
	i, err := neg.Int()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(-1), i)
}

func TestViewHexRequiresMultipleOfFour(t *testing.T) {
	b := MustNew(Bin("101"))
	_, err := b.Hex()
	assert.Error(t, err)
}

func TestViewOctRequiresMultipleOfThree(t *testing.T) {
	b := MustNew(Bin("11"))
	_, err := b.Oct()
	assert.Error(t, err)
}

func TestViewBinAlwaysSucceeds(t *testing.T) {
	b := MustNew(Bin("101"))
	assert.Equal(t, "101", b.Bin())
}

func TestViewBytesRequiresMultipleOfEight(t *testing.T) {
	b := MustNew(Bin("1111"))
	_, err := b.Bytes()
	assert.Error(t, err)

	ok := MustNew(Hex("ff"))
	data, err := ok.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff}, data)
}

func TestViewBoolRequiresOneBit(t *testing.T) {
	one := MustNew(Bin("1"))
	v, err := one.Bool()
	require.NoError(t, err)
	assert.True(t, v)

	two := MustNew(Bin("11"))
	_, err = two.Bool()
	assert.Error(t, err)
}

func TestViewFloat(t *testing.T) {
	b := MustNew(Float(3.5, 64))
	v, err := b.Float()
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestViewFloatRequiresValidWidth(t *testing.T) {
	b := MustNew(Bin("10101010"))
	_, err := b.Float()
	assert.Error(t, err)
}

func TestViewBfloat(t *testing.T) {
	b := MustNew(Bfloat(1.25))
	v, err := b.Bfloat()
	require.NoError(t, err)
	assert.InDelta(t, 1.25, v, 1e-3)
}

func TestViewAsGenericDispatch(t *testing.T) {
	b := MustNew(Uint(42, 16))
	v, err := b.As("uint")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(42), v)
}
