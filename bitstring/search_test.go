// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBasic(t *testing.T) {
	hay := MustNew(Bin("00011000"))
	sub := MustNew(Bin("11"))
	pos, found, err := hay.Find(sub, 0, nil)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, pos)
}

func TestFindNotFound(t *testing.T) {
	hay := MustNew(Bin("0000"))
	sub := MustNew(Bin("11"))
	_, found, err := hay.Find(sub, 0, nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindStartOffset(t *testing.T) {
	hay := MustNew(Bin("11011"))
	sub := MustNew(Bin("11"))
	pos, found, err := hay.Find(sub, 1, nil)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, pos)
}

func TestRFindBasic(t *testing.T) {
	hay := MustNew(Bin("11011011"))
	sub := MustNew(Bin("11"))
	pos, found, err := hay.RFind(sub, hay.Len(), nil)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 6, pos)
}

func TestFindAllOverlapping(t *testing.T) {
	hay := MustNew(Bin("1111"))
	sub := MustNew(Bin("11"))
	positions, err := hay.FindAll(sub, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, positions)
}

func TestFindAllBytealigned(t *testing.T) {
	hay := MustNew(Hex("ffff"))
	sub := MustNew(Hex("ff"))
	opts := &Options{Bytealigned: true}
	positions, err := hay.FindAll(sub, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 8}, positions)
}

func TestFindBytealignedSkipsUnalignedMatch(t *testing.T) {
	hay := MustNew(Bin("0111111100"))
	sub := MustNew(Bin("11111111"))
	opts := &Options{Bytealigned: true}
	_, found, err := hay.Find(sub, 0, opts)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindEmptySubstringErrors(t *testing.T) {
	hay := MustNew(Bin("1010"))
	empty := MustNew(Bin(""))
	_, _, err := hay.Find(empty, 0, nil)
	assert.Error(t, err)
}

func TestFindAllEmptySubstringErrors(t *testing.T) {
	hay := MustNew(Bin("1010"))
	empty := MustNew(Bin(""))
	_, err := hay.FindAll(empty, nil)
	assert.Error(t, err)
}

func TestFindSubLongerThanHaystack(t *testing.T) {
	hay := MustNew(Bin("1"))
	sub := MustNew(Bin("11"))
	_, found, err := hay.Find(sub, 0, nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRFindNoMatch(t *testing.T) {
	hay := MustNew(Bin("0000"))
	sub := MustNew(Bin("11"))
	_, found, err := hay.RFind(sub, hay.Len(), nil)
	require.NoError(t, err)
	assert.False(t, found)
}
