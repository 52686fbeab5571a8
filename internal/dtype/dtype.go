// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"fmt"

	"github.com/bitpack/bitstring/internal/codec"
)

// AutoScale is the placeholder scale value that triggers auto-computation
// at Array construction (spec.md §3, §4.7).
const AutoScale = "auto"

// Dtype is an immutable, interned (name, length, scale) tuple (spec.md §3).
// Two Dtypes compare equal (==) iff all their fields match (name, length,
// scale settings and MXFP overflow policy), since Go
// struct equality over comparable fields already gives the "hash+equality
// by identity tuple" spec.md asks for once values are interned through
// the Cache.
type Dtype struct {
	Name      string
	Length    int  // -1 means null/unset (variable-length families, or fixed families before resolution).
	HasScale  bool
	ScaleAuto bool
	Scale     float64
	// Overflow selects the MXFP overflow policy (spec.md §4.2, §5); the
	// zero value is codec.Saturate, which every non-MXFP family ignores.
	Overflow codec.OverflowPolicy
}

// Def looks up the registered family backing this Dtype. Panics if the
// family was never registered; callers are expected to have validated
// the name via New.
func (d Dtype) Def() *Definition {
	def, ok := registry[d.Name]
	if !ok {
		panic(fmt.Sprintf("dtype: unknown family %q", d.Name))
	}
	return def
}

// BitLength returns length * bits-per-item for a resolved, fixed-length
// Dtype. Panics for variable-length or unresolved Dtypes.
func (d Dtype) BitLength() int {
	def := d.Def()
	if def.VariableLength {
		panic(fmt.Sprintf("dtype: %q is variable-length and has no fixed bitlength", d.Name))
	}
	if d.Length < 0 {
		panic(fmt.Sprintf("dtype: %q has no resolved length", d.Name))
	}
	return d.Length * def.BitsPerItem
}

// IsSigned reports the family's signedness.
func (d Dtype) IsSigned() bool { return d.Def().Signed }

// VariableLength reports whether the family is variable-length.
func (d Dtype) VariableLength() bool { return d.Def().VariableLength }

// ReturnType describes the decoded value's logical Go type, for callers
// that want to branch without a type switch on a dummy value.
func (d Dtype) ReturnType() ReturnType { return d.Def().ReturnType }

// MaxFinite returns the family's largest finite representable magnitude
// at this Dtype's resolved length, and whether the family supports one
// at all (spec.md §4.7's scale "auto" needs this; integer and
// string/byte families do not have one).
func (d Dtype) MaxFinite() (float64, bool) {
	def := d.Def()
	if def.MaxFinite == nil {
		return 0, false
	}
	return def.MaxFinite(d.Length), true
}

// String renders the Dtype in "name:length" form, matching the token
// grammar spec.md §4.4 defines.
func (d Dtype) String() string {
	if d.Length < 0 {
		return d.Name
	}
	return fmt.Sprintf("%s:%d", d.Name, d.Length)
}

// ReturnType enumerates the logical shapes a family's decoded value can take.
type ReturnType int

const (
	ReturnBigInt ReturnType = iota
	ReturnBool
	ReturnBytes
	ReturnString
	ReturnFloat
	ReturnUint
	ReturnInt
	ReturnBits
)
