// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"fmt"

	"github.com/bitpack/bitstring/internal/bitbuf"
	"github.com/bitpack/bitstring/internal/dtype"
	"github.com/bitpack/bitstring/internal/token"
)

// Pack builds a Bits from a format string, per spec.md §4.4/§6: each
// token that already carries a literal value (e.g. "0xff" or
// "uint:8=3") is encoded as-is, and each value-less token consumes the
// next positional argument in order. A "pad" token with an explicit
// length consumes no argument and encodes as zero bits.
func Pack(format string, args ...any) (result Bits, err error) {
	defer errRecover(&err)
	_, toks, perr := token.Parse(format)
	if perr != nil {
		return Bits{}, CreationError(perr.Error())
	}
	out := bitbuf.New(0)
	argIdx := 0
	for _, t := range toks {
		if t.Name == "pad" && !t.HasValue {
			if t.Length < 0 {
				return Bits{}, CreationError("pad token requires an explicit length in pack")
			}
			out.Append(bitbuf.New(t.Length))
			continue
		}
		val, verr := resolvePackValue(t, func() (any, bool) {
			if argIdx >= len(args) {
				return nil, false
			}
			v := args[argIdx]
			argIdx++
			return v, true
		})
		if verr != nil {
			return Bits{}, verr
		}
		d, derr := dtype.New(t.Name, t.Length, false, false, 0, resolveOverflow(nil))
		if derr != nil {
			return Bits{}, CreationError(derr.Error())
		}
		length := t.Length
		if length < 0 {
			length = naturalLength(t.Name, val)
		}
		out.Append(d.Encode(val, length))
	}
	if argIdx < len(args) {
		return Bits{}, CreationError(fmt.Sprintf("too many values supplied to pack: used %d of %d", argIdx, len(args)))
	}
	return Bits{buf: out}, nil
}

// PackNamed is Pack's keyword-argument form: each value-less token is
// filled from kwargs by its name rather than positionally.
func PackNamed(format string, kwargs map[string]any) (result Bits, err error) {
	defer errRecover(&err)
	_, toks, perr := token.Parse(format)
	if perr != nil {
		return Bits{}, CreationError(perr.Error())
	}
	out := bitbuf.New(0)
	for _, t := range toks {
		if t.Name == "pad" && !t.HasValue {
			if t.Length < 0 {
				return Bits{}, CreationError("pad token requires an explicit length in pack")
			}
			out.Append(bitbuf.New(t.Length))
			continue
		}
		val, verr := resolvePackValue(t, func() (any, bool) {
			v, ok := kwargs[t.Name]
			return v, ok
		})
		if verr != nil {
			return Bits{}, verr
		}
		d, derr := dtype.New(t.Name, t.Length, false, false, 0, resolveOverflow(nil))
		if derr != nil {
			return Bits{}, CreationError(derr.Error())
		}
		length := t.Length
		if length < 0 {
			length = naturalLength(t.Name, val)
		}
		out.Append(d.Encode(val, length))
	}
	return Bits{buf: out}, nil
}

// resolvePackValue resolves one non-pad token's value, either from its
// literal text or by calling next to pull the next supplied value.
func resolvePackValue(t token.Token, next func() (any, bool)) (val any, err error) {
	if t.HasValue {
		v, cerr := convertTokenValue(t.Name, t.Value)
		if cerr != nil {
			return nil, cerr
		}
		return v, nil
	}
	v, ok := next()
	if !ok {
		return nil, CreationError(fmt.Sprintf("no value supplied for token %q", t.Name))
	}
	return v, nil
}
