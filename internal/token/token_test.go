// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiterals(t *testing.T) {
	_, toks, err := Parse("0xff,0o17,0b101")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, Token{Name: "hex", Length: 8, Value: "ff", HasValue: true}, toks[0])
	assert.Equal(t, Token{Name: "oct", Length: 6, Value: "17", HasValue: true}, toks[1])
	assert.Equal(t, Token{Name: "bin", Length: 3, Value: "101", HasValue: true}, toks[2])
}

func TestParseNamedTokens(t *testing.T) {
	_, toks, err := Parse("uint:8=255, hex:16")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, Token{Name: "uint", Length: 8, Value: "255", HasValue: true}, toks[0])
	assert.Equal(t, Token{Name: "hex", Length: 16}, toks[1])
}

func TestParseFactor(t *testing.T) {
	_, toks, err := Parse("3*uint:8=1")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	for _, tok := range toks {
		assert.Equal(t, "uint", tok.Name)
		assert.Equal(t, 8, tok.Length)
		assert.Equal(t, "1", tok.Value)
	}
}

func TestParseGroupExpansion(t *testing.T) {
	_, toks, err := Parse("2*(uint:8,bool)")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, []string{"uint", "bool", "uint", "bool"}, namesOf(toks))
}

func TestParseNestedGroups(t *testing.T) {
	_, toks, err := Parse("2*(2*(bool))")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	for _, tok := range toks {
		assert.Equal(t, "bool", tok.Name)
	}
}

func TestParseStretchyToken(t *testing.T) {
	stretchy, toks, err := Parse("uint:8, bytes")
	require.NoError(t, err)
	assert.True(t, stretchy)
	require.Len(t, toks, 2)
	assert.Equal(t, "bytes", toks[1].Name)
	assert.Equal(t, -1, toks[1].Length)
}

func TestParseMoreThanOneStretchyTokenErrors(t *testing.T) {
	_, _, err := Parse("bytes, bits")
	assert.Error(t, err)
}

func TestParsePadTokenNotStretchy(t *testing.T) {
	stretchy, toks, err := Parse("pad")
	require.NoError(t, err)
	assert.False(t, stretchy)
	require.Len(t, toks, 1)
	assert.Equal(t, -1, toks[0].Length)
}

func TestParseInvalidToken(t *testing.T) {
	_, _, err := Parse("???")
	assert.Error(t, err)
}

func TestParseUnbalancedParens(t *testing.T) {
	_, _, err := Parse("2*(uint:8")
	assert.Error(t, err)
}

func TestExpandStructCode(t *testing.T) {
	_, toks, err := Parse(">2hB")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "intbe", toks[0].Name)
	assert.Equal(t, 16, toks[0].Length)
	assert.Equal(t, "intbe", toks[1].Name)
	assert.Equal(t, "uint", toks[2].Name)
	assert.Equal(t, 8, toks[2].Length)
}

func TestExpandStructEndianness(t *testing.T) {
	_, toks, err := Parse("<f")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "floatle", toks[0].Name)
	assert.Equal(t, 32, toks[0].Length)
}

func TestExpandStructUnknownCode(t *testing.T) {
	_, _, err := Parse(">2z")
	assert.Error(t, err)
}

func namesOf(toks []Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Name
	}
	return out
}
