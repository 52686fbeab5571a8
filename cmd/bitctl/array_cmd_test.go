// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatList(t *testing.T) {
	vals, err := parseFloatList("1, 2.5, -3")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, vals)
}

func TestParseFloatListRejectsGarbage(t *testing.T) {
	_, err := parseFloatList("1, nope")
	assert.Error(t, err)
}

func TestParseFloatListRequiresAtLeastOne(t *testing.T) {
	_, err := parseFloatList("")
	assert.Error(t, err)
}

func TestValuesForDtypeUintRounds(t *testing.T) {
	out, err := valuesForDtype("uint", 8, []float64{1.6, 2.4})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []any{big.NewInt(2), big.NewInt(2)}, out)
}

func TestValuesForDtypeFloatPassesThrough(t *testing.T) {
	out, err := valuesForDtype("float", 32, []float64{1.5})
	require.NoError(t, err)
	assert.Equal(t, 1.5, out[0])
}

func TestArrayCmdPrintsUintElements(t *testing.T) {
	var noColor bool = true
	cmd := newArrayCmd(&noColor)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--dtype", "uint", "--length", "8", "--values", "1,2,3"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "[0] 1")
	assert.Contains(t, out.String(), "[2] 3")
}

func TestArrayCmdWithExplicitScale(t *testing.T) {
	var noColor bool = true
	cmd := newArrayCmd(&noColor)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--dtype", "float", "--length", "32", "--values", "4.0", "--scale", "2.0"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "[0] 4")
}
