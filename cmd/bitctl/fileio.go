// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// readInput reads path fully, transparently gunzipping it if its content
// starts with the gzip magic bytes; the file name's extension is not
// consulted. "-" reads stdin
// verbatim (stdin is never sniffed for gzip, matching pipe-friendly CLI
// conventions).
func readInput(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !looksGzipped(data) {
		return data, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// looksGzipped reports whether data opens with the gzip magic bytes.
func looksGzipped(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}

// writeOutput writes data to path, gzip-compressing it first when path
// ends in ".gz". "-" writes stdout verbatim.
func writeOutput(path string, data []byte) error {
	if path == "-" || path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if !hasGzExt(path) {
		return os.WriteFile(path, data, 0o644)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func hasGzExt(path string) bool {
	return len(path) > 3 && path[len(path)-3:] == ".gz"
}
