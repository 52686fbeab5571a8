// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBitArrayAndMutableImmutableRoundTrip(t *testing.T) {
	arr, err := NewBitArray(Bin("1010"))
	require.NoError(t, err)
	assert.Equal(t, 4, arr.Len())

	b := arr.Immutable()
	assert.Equal(t, "1010", b.Bin())

	arr2 := b.Mutable()
	require.NoError(t, arr2.SetBit(0, false))
	assert.Equal(t, "1010", b.Bin(), "original must be unaffected by mutation of the copy")
}

func TestGetSetBit(t *testing.T) {
	arr := MustNew(Bin("000")).Mutable()
	v, err := arr.Get(1)
	require.NoError(t, err)
	assert.False(t, v)

	require.NoError(t, arr.SetBit(1, true))
	v, err = arr.Get(1)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestInsert(t *testing.T) {
	arr := MustNew(Bin("1111")).Mutable()
	require.NoError(t, arr.Insert(2, MustNew(Bin("00"))))
	assert.Equal(t, "110011", arr.Immutable().Bin())
}

func TestInsertOutOfRange(t *testing.T) {
	arr := MustNew(Bin("11")).Mutable()
	assert.Error(t, arr.Insert(5, MustNew(Bin("0"))))
}

func TestOverwriteWithinBounds(t *testing.T) {
	arr := MustNew(Bin("00000")).Mutable()
	require.NoError(t, arr.Overwrite(1, MustNew(Bin("111"))))
	assert.Equal(t, "01110", arr.Immutable().Bin())
}

func TestOverwritePastEndExtends(t *testing.T) {
	arr := MustNew(Bin("00")).Mutable()
	require.NoError(t, arr.Overwrite(1, MustNew(Bin("111"))))
	assert.Equal(t, "0111", arr.Immutable().Bin())
}

func TestOverwriteNegativePosErrors(t *testing.T) {
	arr := MustNew(Bin("00")).Mutable()
	assert.Error(t, arr.Overwrite(-1, MustNew(Bin("1"))))
}

func TestDelete(t *testing.T) {
	arr := MustNew(Bin("110011")).Mutable()
	require.NoError(t, arr.Delete(2, 4))
	assert.Equal(t, "1111", arr.Immutable().Bin())
}

func TestDeleteInvalidRange(t *testing.T) {
	arr := MustNew(Bin("1111")).Mutable()
	assert.Error(t, arr.Delete(3, 1))
	assert.Error(t, arr.Delete(0, 10))
}

func TestReplaceBasic(t *testing.T) {
	arr := MustNew(Bin("00110011")).Mutable()
	n, err := arr.Replace(MustNew(Bin("11")), MustNew(Bin("000")), -1, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "0000000000", arr.Immutable().Bin())
}

func TestReplaceDoesNotRematchInsertedBits(t *testing.T) {
	arr := MustNew(Bin("11")).Mutable()
	n, err := arr.Replace(MustNew(Bin("1")), MustNew(Bin("11")), -1, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "1111", arr.Immutable().Bin())
}

func TestReplaceCountLimit(t *testing.T) {
	arr := MustNew(Bin("111111")).Mutable()
	n, err := arr.Replace(MustNew(Bin("1")), MustNew(Bin("0")), 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "001111", arr.Immutable().Bin())
}

func TestReverse(t *testing.T) {
	arr := MustNew(Bin("1100")).Mutable()
	require.NoError(t, arr.Reverse(0, 4))
	assert.Equal(t, "0011", arr.Immutable().Bin())
}

func TestReverseSubRange(t *testing.T) {
	arr := MustNew(Bin("110011")).Mutable()
	require.NoError(t, arr.Reverse(2, 4))
	assert.Equal(t, "110011", arr.Immutable().Bin())
}

func TestInvert(t *testing.T) {
	arr := MustNew(Bin("1100")).Mutable()
	require.NoError(t, arr.Invert(0, 2))
	assert.Equal(t, "0000", arr.Immutable().Bin())
}

func TestRotateLeft(t *testing.T) {
	arr := MustNew(Bin("11000")).Mutable()
	require.NoError(t, arr.RotateLeft(2, 0, 5))
	assert.Equal(t, "00011", arr.Immutable().Bin())
}

func TestRotateRight(t *testing.T) {
	arr := MustNew(Bin("00011")).Mutable()
	require.NoError(t, arr.RotateRight(2, 0, 5))
	assert.Equal(t, "11000", arr.Immutable().Bin())
}

func TestRotateByMoreThanLength(t *testing.T) {
	arr := MustNew(Bin("110")).Mutable()
	require.NoError(t, arr.RotateLeft(5, 0, 3)) // 5 % 3 == 2
	assert.Equal(t, "011", arr.Immutable().Bin())
}

func TestRotateEmptyIsNoop(t *testing.T) {
	arr := MustNew(Bin("")).Mutable()
	require.NoError(t, arr.RotateLeft(3, 0, 0))
	assert.Equal(t, 0, arr.Len())
}

func TestRotateSubRange(t *testing.T) {
	arr := MustNew(Bin("11010011")).Mutable()
	require.NoError(t, arr.RotateLeft(2, 2, 6))
	assert.Equal(t, "11000111", arr.Immutable().Bin())
}

func TestByteswap(t *testing.T) {
	arr := MustNew(Hex("0102")).Mutable()
	n, err := arr.Byteswap(0, 0, arr.Len(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	hexStr, err := arr.Immutable().Hex()
	require.NoError(t, err)
	assert.Equal(t, "0201", hexStr)
}

func TestByteswapRepeatingWordSize(t *testing.T) {
	arr := MustNew(Hex("01020304")).Mutable()
	n, err := arr.Byteswap(2, 0, arr.Len(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	hexStr, err := arr.Immutable().Hex()
	require.NoError(t, err)
	assert.Equal(t, "02010403", hexStr)
}

func TestSetAll(t *testing.T) {
	arr := MustNew(Bin("0000")).Mutable()
	require.NoError(t, arr.Set(true))
	assert.Equal(t, "1111", arr.Immutable().Bin())
}

func TestSetPositions(t *testing.T) {
	arr := MustNew(Bin("0000")).Mutable()
	require.NoError(t, arr.Set(true, 0, -1))
	assert.Equal(t, "1001", arr.Immutable().Bin())
}
