// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"fmt"

	"github.com/bitpack/bitstring/internal/bitbuf"
)

// Encode renders value as this Dtype, applying scale (dividing the raw
// numeric value before delegating to the family's Encode) per spec.md
// §4.3 point 5. length is required when d.Length is unresolved (-1) —
// used for "any length" families like bytes/bits/bin whose natural
// length comes from the value itself.
func (d Dtype) Encode(value any, inferredLength int) *bitbuf.Buffer {
	def := d.Def()
	n := d.Length
	if n < 0 {
		n = inferredLength
	}
	if d.HasScale && !d.ScaleAuto {
		value = toFloat64(value) / d.Scale
	}
	if def.EncodeWithPolicy != nil {
		return def.EncodeWithPolicy(n, value, d.Overflow)
	}
	return def.Encode(n, value)
}

// Decode reads a fixed-length Dtype's full buffer and applies scale.
func (d Dtype) Decode(buf *bitbuf.Buffer) any {
	def := d.Def()
	if def.VariableLength {
		panic(fmt.Sprintf("dtype: %q is variable-length; use DecodeVar", d.Name))
	}
	var v any
	if def.DecodeWithPolicy != nil {
		v = def.DecodeWithPolicy(buf, d.Overflow)
	} else {
		v = def.Decode(buf)
	}
	return d.applyScale(v)
}

// DecodeVar reads a variable-length Dtype starting at the front of buf.
func (d Dtype) DecodeVar(buf *bitbuf.Buffer) (any, int) {
	def := d.Def()
	if !def.VariableLength {
		panic(fmt.Sprintf("dtype: %q is fixed-length; use Decode", d.Name))
	}
	v, consumed := def.DecodeVar(buf)
	return d.applyScale(v), consumed
}

func (d Dtype) applyScale(v any) any {
	if !d.HasScale || d.ScaleAuto {
		return v
	}
	return toFloat64(v) * d.Scale
}

// ReadAt implements the registry's positional reader (spec.md §4.3): for
// fixed-length families it checks start+bitlength<=len(buf) and decodes
// the slice; for variable-length families it decodes the suffix starting
// at start and returns the new position.
func (d Dtype) ReadAt(buf *bitbuf.Buffer, start int) (value any, newPos int, err error) {
	def := d.Def()
	if def.VariableLength {
		suffix := buf.Slice(start, buf.Len(), 1)
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("dtype: %v", r)
			}
		}()
		v, consumed := d.DecodeVar(suffix)
		return v, start + consumed, nil
	}
	bl := d.BitLength()
	if start+bl > buf.Len() {
		return nil, 0, fmt.Errorf("dtype: not enough bits to read %q at position %d", d.Name, start)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dtype: %v", r)
		}
	}()
	v := d.Decode(buf.Slice(start, start+bl, 1))
	return v, start + bl, nil
}
