// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEachKeyword(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
		want string
	}{
		{"bin", Bin("1011"), "1011"},
		{"hex", Hex("ab"), "10101011"},
		{"oct", Oct("17"), "001111"},
		{"uint", Uint(255, 8), "11111111"},
		{"bool-true", Bool(true), "1"},
		{"bool-false", Bool(false), "0"},
	}
	for _, c := range cases {
		b, err := New(c.opt)
		require.NoError(t, err, c.name)
		assert.Equal(t, c.want, b.Bin(), c.name)
	}
}

func TestNewRejectsMultipleInitializers(t *testing.T) {
	_, err := New(Bin("1"), Hex("a"))
	assert.Error(t, err)
}

func TestNewRejectsNoInitializer(t *testing.T) {
	_, err := New()
	assert.Error(t, err)
}

func TestMustNewPanicsOnError(t *testing.T) {
	assert.Panics(t, func() { MustNew(Bin("1"), Hex("a")) })
}

func TestAutoFromFormatString(t *testing.T) {
	b := MustNew(Auto("0xff"))
	assert.Equal(t, 8, b.Len())
	hexStr, err := b.Hex()
	require.NoError(t, err)
	assert.Equal(t, "ff", hexStr)
}

func TestAutoFromBoolSlice(t *testing.T) {
	b := MustNew(Auto([]bool{true, false, true}))
	assert.Equal(t, "101", b.Bin())
}

func TestAutoFromBytes(t *testing.T) {
	b := MustNew(Auto([]byte{0xde, 0xad}))
	got, err := b.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, got)
}

func TestAutoFromReader(t *testing.T) {
	r := strings.NewReader("AB")
	b := MustNew(Auto(r))
	got, err := b.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("AB"), got)
}

func TestAutoFromBitsAndBitArray(t *testing.T) {
	src := MustNew(Bin("110"))
	b := MustNew(Auto(src))
	assert.Equal(t, "110", b.Bin())

	arr := src.Mutable()
	b2 := MustNew(Auto(arr))
	assert.Equal(t, "110", b2.Bin())
}

func TestAutoRejectsUnsupportedType(t *testing.T) {
	_, err := New(Auto(42))
	assert.Error(t, err)
}

func TestParseAutoMultipleTokens(t *testing.T) {
	b, err := ParseAuto("uint:8=255,hex:8=ff")
	require.NoError(t, err)
	assert.Equal(t, 16, b.Len())
	hexStr, err := b.Hex()
	require.NoError(t, err)
	assert.Equal(t, "ffff", hexStr)
}

func TestParseAutoRequiresValues(t *testing.T) {
	_, err := ParseAuto("uint:8")
	assert.Error(t, err)
}

func TestUintIntFamiliesAcceptBigInt(t *testing.T) {
	b := MustNew(Uint(big.NewInt(300), 16))
	v, err := b.Uint()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(300), v)
}

func TestFloatAndBfloatKeywords(t *testing.T) {
	b := MustNew(Float(1.5, 32))
	v, err := b.Float()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	bf := MustNew(Bfloat(2.0))
	v2, err := bf.Bfloat()
	require.NoError(t, err)
	assert.Equal(t, 2.0, v2)
}

func TestExpGolombKeywords(t *testing.T) {
	for _, opt := range []Option{UE(5), SE(-3), UIE(7), SIE(2)} {
		b, err := New(opt)
		require.NoError(t, err)
		assert.Greater(t, b.Len(), 0)
	}
}

func TestBytesValueKeyword(t *testing.T) {
	b := MustNew(BytesValue([]byte{1, 2, 3}))
	got, err := b.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestLen(t *testing.T) {
	b := MustNew(Uint(1, 13))
	assert.Equal(t, 13, b.Len())
}
