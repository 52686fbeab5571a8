// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksGzipped(t *testing.T) {
	assert.True(t, looksGzipped([]byte{0x1f, 0x8b, 0x08}))
	assert.False(t, looksGzipped([]byte{0x00, 0x01}))
	assert.False(t, looksGzipped([]byte{0x1f}))
}

func TestHasGzExt(t *testing.T) {
	assert.True(t, hasGzExt("foo.gz"))
	assert.False(t, hasGzExt("foo.bin"))
	assert.False(t, hasGzExt("gz"))
}

func TestWriteThenReadPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	payload := []byte{1, 2, 3, 4}

	require.NoError(t, writeOutput(path, payload))
	got, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestWriteThenReadGzipFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.gz")
	payload := []byte("hello bitstring")

	require.NoError(t, writeOutput(path, payload))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, looksGzipped(raw))

	got, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestReadInputDetectsGzipByMagicRegardlessOfExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("magic detected"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	got, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("magic detected"), got)
}
