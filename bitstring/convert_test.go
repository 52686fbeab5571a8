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

func TestConvertTokenValueString(t *testing.T) {
	v, err := convertTokenValue("hex", "ff")
	require.NoError(t, err)
	assert.Equal(t, "ff", v)
}

func TestConvertTokenValueBytes(t *testing.T) {
	v, err := convertTokenValue("bytes", "ab")
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), v)
}

func TestConvertTokenValueBool(t *testing.T) {
	for _, s := range []string{"1", "true", "True"} {
		v, err := convertTokenValue("bool", s)
		require.NoError(t, err)
		assert.Equal(t, true, v)
	}
	for _, s := range []string{"0", "false", "False"} {
		v, err := convertTokenValue("bool", s)
		require.NoError(t, err)
		assert.Equal(t, false, v)
	}
	_, err := convertTokenValue("bool", "maybe")
	assert.Error(t, err)
}

func TestConvertTokenValueFloat(t *testing.T) {
	v, err := convertTokenValue("float", "1.5")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	_, err = convertTokenValue("float", "nope")
	assert.Error(t, err)
}

func TestConvertTokenValueBigInt(t *testing.T) {
	v, err := convertTokenValue("uint", "300")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(300), v)

	v2, err := convertTokenValue("int", "-5")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(-5), v2)

	_, err = convertTokenValue("uint", "notanumber")
	assert.Error(t, err)
}

func TestConvertTokenValueUE(t *testing.T) {
	v, err := convertTokenValue("ue", "5")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), v)
}

func TestConvertTokenValueUnknownFamily(t *testing.T) {
	_, err := convertTokenValue("notafamily", "x")
	assert.Error(t, err)
}

func TestBaseFamilyStripsEmbeddedLength(t *testing.T) {
	assert.Equal(t, "uint", baseFamily("uint8"))
	assert.Equal(t, "hex", baseFamily("hex"))
}

func TestBufOfBitsAndBitArray(t *testing.T) {
	b := MustNew(Bin("101"))
	assert.NotNil(t, bufOf(b))

	arr := b.Mutable()
	assert.NotNil(t, bufOf(arr))
}

func TestBufOfUnsupportedTypePanics(t *testing.T) {
	assert.Panics(t, func() { bufOf(42) })
}
