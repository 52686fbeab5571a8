// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashStableAcrossConstructionPaths(t *testing.T) {
	a := MustNew(Hex("ab"))
	b := MustNew(Bin("10101011"))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHashDiffersOnLengthEvenIfBytesMatch(t *testing.T) {
	a := MustNew(Bin("101"))
	b := MustNew(Bin("1010"))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestEqualTrueForMatchingContent(t *testing.T) {
	a := MustNew(Hex("cafe"))
	b := MustNew(Hex("cafe"))
	assert.True(t, a.Equal(b))
}

func TestEqualFalseForDifferentContent(t *testing.T) {
	a := MustNew(Hex("cafe"))
	b := MustNew(Hex("babe"))
	assert.False(t, a.Equal(b))
}

func TestEqualFalseForDifferentLength(t *testing.T) {
	a := MustNew(Bin("1"))
	b := MustNew(Bin("11"))
	assert.False(t, a.Equal(b))
}
