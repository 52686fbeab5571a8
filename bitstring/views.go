// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"math/big"

	"github.com/bitpack/bitstring/internal/dtype"
)

// As decodes the whole of b under the named fixed-length dtype family,
// the general form behind the canonical typed views below (spec.md §6).
// It raises InterpretError if the family can't accept b's length.
func (b Bits) As(name string) (val any, err error) {
	defer errRecover(&err)
	d, derr := dtype.New(name, b.buf.Len(), false, false, 0, resolveOverflow(nil))
	if derr != nil {
		return nil, InterpretError(derr.Error())
	}
	return d.Decode(b.buf), nil
}

// Uint interprets the bits as an unsigned big-endian integer.
func (b Bits) Uint() (*big.Int, error) {
	v, err := b.As("uint")
	if err != nil {
		return nil, err
	}
	return v.(*big.Int), nil
}

// Int interprets the bits as a two's-complement signed integer.
func (b Bits) Int() (*big.Int, error) {
	v, err := b.As("int")
	if err != nil {
		return nil, err
	}
	return v.(*big.Int), nil
}

// Hex renders the bits as a hex-digit string; Len() must be a multiple of 4.
func (b Bits) Hex() (string, error) {
	v, err := b.As("hex")
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Oct renders the bits as an octal-digit string; Len() must be a multiple of 3.
func (b Bits) Oct() (string, error) {
	v, err := b.As("oct")
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Bin renders the bits as a string of '0'/'1' characters; always succeeds.
func (b Bits) Bin() string {
	v, _ := b.As("bin")
	return v.(string)
}

// Bytes renders the bits as raw bytes; Len() must be a multiple of 8.
func (b Bits) Bytes() ([]byte, error) {
	v, err := b.As("bytes")
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Bool interprets a single bit as a boolean.
func (b Bits) Bool() (bool, error) {
	v, err := b.As("bool")
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// Float interprets the bits as an IEEE-754 binary float; Len() must be 16, 32, or 64.
func (b Bits) Float() (float64, error) {
	v, err := b.As("float")
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// Bfloat interprets the bits as a bfloat16; Len() must be 16.
func (b Bits) Bfloat() (float64, error) {
	v, err := b.As("bfloat")
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}
