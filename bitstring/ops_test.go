// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsAndOrXor(t *testing.T) {
	a := MustNew(Bin("1100"))
	b := MustNew(Bin("1010"))

	and, err := a.And(b)
	require.NoError(t, err)
	assert.Equal(t, "1000", and.Bin())

	or, err := a.Or(b)
	require.NoError(t, err)
	assert.Equal(t, "1110", or.Bin())

	xor, err := a.Xor(b)
	require.NoError(t, err)
	assert.Equal(t, "0110", xor.Bin())
}

func TestBitsNot(t *testing.T) {
	a := MustNew(Bin("1100"))
	n, err := a.Not()
	require.NoError(t, err)
	assert.Equal(t, "0011", n.Bin())
}

func TestBitsLogicalOpsRequireEqualLength(t *testing.T) {
	a := MustNew(Bin("11"))
	b := MustNew(Bin("111"))
	_, err := a.And(b)
	assert.Error(t, err)
}

func TestBitsLshift(t *testing.T) {
	b := MustNew(Bin("10110000"))
	s, err := b.Lshift(2)
	require.NoError(t, err)
	assert.Equal(t, "11000000", s.Bin())
}

func TestBitsRshift(t *testing.T) {
	b := MustNew(Bin("00001101"))
	s, err := b.Rshift(2)
	require.NoError(t, err)
	assert.Equal(t, "00000011", s.Bin())
}

func TestBitsShiftRejectsNegative(t *testing.T) {
	b := MustNew(Bin("1010"))
	_, err := b.Lshift(-1)
	assert.Error(t, err)
}

func TestBitArrayLogicalOpsInPlace(t *testing.T) {
	a := MustNew(Bin("1100")).Mutable()
	b := MustNew(Bin("1010")).Mutable()
	require.NoError(t, a.And(b))
	assert.Equal(t, "1000", a.Immutable().Bin())
}

func TestBitArrayNotInPlace(t *testing.T) {
	a := MustNew(Bin("1100")).Mutable()
	require.NoError(t, a.Not())
	assert.Equal(t, "0011", a.Immutable().Bin())
}

func TestBitArrayShiftsInPlace(t *testing.T) {
	a := MustNew(Bin("10110000")).Mutable()
	require.NoError(t, a.Lshift(2))
	assert.Equal(t, "11000000", a.Immutable().Bin())

	b := MustNew(Bin("00001101")).Mutable()
	require.NoError(t, b.Rshift(2))
	assert.Equal(t, "00000011", b.Immutable().Bin())
}
