// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitstring implements an immutable bit-sequence value (Bits)
// and its mutable counterpart (BitArray), a streaming read cursor over
// them (ConstBitStream/BitStream), and a homogeneous typed container
// (Array), per spec.md.
package bitstring

import (
	"fmt"
	"io"

	"github.com/bitpack/bitstring/internal/bitbuf"
	"github.com/bitpack/bitstring/internal/dtype"
	"github.com/bitpack/bitstring/internal/token"
)

// Bits is an immutable handle over a bit sequence (spec.md §3). Its
// length and content never change after construction; equality is
// structural over bit content and length, not over the dtype used to
// build it.
type Bits struct {
	buf *bitbuf.Buffer
}

// Len returns the number of bits.
func (b Bits) Len() int { return b.buf.Len() }

// builder accumulates exactly one initializer's worth of state, matching
// spec.md §4.5's "exactly one initializer must apply".
type builder struct {
	set      bool
	name     string // Empty when the builder was set via a raw/auto source.
	value    any
	length   int // -1 = unspecified/inferred.
	raw      *bitbuf.Buffer
	overflow *MXFPOverflowPolicy // nil = use the process default.
}

// Option configures a single Bits/BitArray initializer.
type Option func(*builder) error

func setOnce(b *builder, name string, value any, length int) error {
	if b.set {
		return CreationError(fmt.Sprintf("more than one initializer given (already have %q, got %q)", b.name, name))
	}
	b.set, b.name, b.value, b.length = true, name, value, length
	return nil
}

// WithOverflow overrides the process-default MXFP overflow policy
// (spec.md §5) for this one construction; it composes with whichever
// initializer option also applies rather than counting as one itself.
func WithOverflow(policy MXFPOverflowPolicy) Option {
	return func(b *builder) error {
		b.overflow = &policy
		return nil
	}
}

// Keyword constructs a Bits from any registered dtype family by name
// (e.g. "uintbe", "e4m3mxfp"), with an explicit length in bits for
// families that need one. Pass length -1 for families whose length is
// inferred from value (bytes, bits, hex, oct, bin).
func Keyword(name string, value any, length int) Option {
	return func(b *builder) error { return setOnce(b, name, value, length) }
}

// Bin constructs a Bits from a string of '0'/'1' characters.
func Bin(s string) Option { return Keyword("bin", s, len(s)) }

// Hex constructs a Bits from a hex-digit string.
func Hex(s string) Option { return Keyword("hex", s, len(s)*4) }

// Oct constructs a Bits from an octal-digit string.
func Oct(s string) Option { return Keyword("oct", s, len(s)*3) }

// Uint constructs an arbitrary-width unsigned integer Bits.
func Uint(v any, length int) Option { return Keyword("uint", v, length) }

// Int constructs an arbitrary-width two's-complement signed integer Bits.
func Int(v any, length int) Option { return Keyword("int", v, length) }

// Bool constructs a single-bit Bits.
func Bool(v bool) Option { return Keyword("bool", v, 1) }

// BytesValue constructs a Bits from raw bytes, verbatim.
func BytesValue(b []byte) Option { return Keyword("bytes", b, len(b)*8) }

// Float constructs an IEEE-754 float Bits of the given bit length (16/32/64).
func Float(v float64, length int) Option { return Keyword("float", v, length) }

// Bfloat constructs a bfloat16 Bits.
func Bfloat(v float64) Option { return Keyword("bfloat", v, 16) }

// UE constructs an unsigned exponential-Golomb Bits.
func UE(v uint64) Option { return Keyword("ue", v, -1) }

// SE constructs a signed exponential-Golomb Bits.
func SE(v int64) Option { return Keyword("se", v, -1) }

// UIE constructs an unsigned interleaved exponential-Golomb Bits.
func UIE(v uint64) Option { return Keyword("uie", v, -1) }

// SIE constructs a signed interleaved exponential-Golomb Bits.
func SIE(v int64) Option { return Keyword("sie", v, -1) }

// Raw wraps an already-built bitbuf.Buffer verbatim (internal escape
// hatch used by slicing/concatenation; not part of the public surface
// for hand-authored construction).
func raw(buf *bitbuf.Buffer) Option {
	return func(b *builder) error {
		if b.set {
			return CreationError("more than one initializer given")
		}
		b.set, b.raw = true, buf
		return nil
	}
}

// Auto constructs a Bits from a positional value: a format string (parsed
// per spec.md §4.4/§6), a []bool, raw []byte, an io.Reader (file-like,
// read to completion), or another Bits/BitArray.
func Auto(v any) Option {
	return func(b *builder) error {
		if b.set {
			return CreationError("more than one initializer given")
		}
		switch x := v.(type) {
		case string:
			bits, err := ParseAuto(x)
			if err != nil {
				return err
			}
			b.set, b.raw = true, bits.buf
		case []bool:
			buf := bitbuf.New(len(x))
			for i, bit := range x {
				buf.Set(i, bit)
			}
			b.set, b.raw = true, buf
		case []byte:
			b.set, b.raw = true, bitbuf.FromBytes(x, len(x)*8, 0)
		case io.Reader:
			data, err := io.ReadAll(x)
			if err != nil {
				return CreationError(fmt.Sprintf("reading file-like source: %v", err))
			}
			b.set, b.raw = true, bitbuf.FromBytes(data, len(data)*8, 0)
		case Bits:
			b.set, b.raw = true, x.buf.Clone()
		case BitArray:
			b.set, b.raw = true, x.buf.Clone()
		default:
			return CreationError(fmt.Sprintf("unsupported auto-initializer type %T", v))
		}
		return nil
	}
}

// New builds an immutable Bits from exactly one Option.
func New(opts ...Option) (result Bits, err error) {
	defer errRecover(&err)
	buf, buildErr := build(opts)
	if buildErr != nil {
		return Bits{}, buildErr
	}
	return Bits{buf: buf}, nil
}

// MustNew is New but panics on error; handy for package-level fixtures
// and literals whose validity is obvious at the call site.
func MustNew(opts ...Option) Bits {
	b, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return b
}

func build(opts []Option) (*bitbuf.Buffer, error) {
	var b builder
	b.length = -1
	for _, opt := range opts {
		if err := opt(&b); err != nil {
			return nil, err
		}
	}
	if !b.set {
		return nil, CreationError("no initializer given")
	}
	if b.raw != nil {
		return b.raw, nil
	}
	d, err := dtype.New(b.name, b.length, false, false, 0, resolveOverflow(b.overflow))
	if err != nil {
		return nil, CreationError(err.Error())
	}
	inferred := b.length
	if inferred < 0 {
		inferred = naturalLength(b.name, b.value)
	}
	buf := d.Encode(b.value, inferred)
	return buf, nil
}

// naturalLength computes the bit length implied by value alone, for
// families whose Dtype.Length may be left unresolved (bytes, bits, hex,
// oct, bin).
func naturalLength(name string, value any) int {
	switch name {
	case "bytes":
		return len(value.([]byte)) * 8
	case "bits":
		return value.(*bitbuf.Buffer).Len()
	case "hex":
		return len(value.(string)) * 4
	case "oct":
		return len(value.(string)) * 3
	case "bin":
		return len(value.(string))
	default:
		return -1
	}
}

// ParseAuto parses a format string positionally, per spec.md §6: a
// bare literal (0x.../0o.../0b...) or a comma-separated list of
// name[:length]=value tokens, concatenating their encoded bits. Every
// token must carry a value (ParseAuto does not resolve holes; use pack
// for that).
func ParseAuto(format string) (result Bits, err error) {
	defer errRecover(&err)
	_, toks, err := token.Parse(format)
	if err != nil {
		return Bits{}, CreationError(err.Error())
	}
	out := bitbuf.New(0)
	for _, t := range toks {
		if !t.HasValue {
			return Bits{}, CreationError(fmt.Sprintf("token %q has no value to auto-construct from", t.Name))
		}
		d, err := dtype.New(t.Name, t.Length, false, false, 0, resolveOverflow(nil))
		if err != nil {
			return Bits{}, CreationError(err.Error())
		}
		val, convErr := convertTokenValue(t.Name, t.Value)
		if convErr != nil {
			return Bits{}, convErr
		}
		length := t.Length
		if length < 0 {
			length = naturalLength(t.Name, val)
		}
		out.Append(d.Encode(val, length))
	}
	return Bits{buf: out}, nil
}
