// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dtype implements the DtypeRegistry (spec.md §4.3): named
// format families with their encode/decode pairs, and the immutable,
// interned Dtype value that pins a family down to a concrete
// (name, length, scale) tuple.
package dtype

// LengthSpec describes which bit lengths a family accepts. An empty
// LengthSpec (all fields zero) allows any length, matching spec.md
// §4.3's "empty set = any".
type LengthSpec struct {
	Fixed    []int // A specific enumerated set of allowed lengths, if non-empty.
	Multiple int   // If > 0, length must be a positive multiple of this value.
	Min      int   // Minimum allowed length (0 means no minimum beyond Multiple/Fixed).
}

// Allows reports whether n is an acceptable length under the spec.
func (ls LengthSpec) Allows(n int) bool {
	if n < 0 {
		return false
	}
	if n == 0 {
		return ls.IsAny()
	}
	if len(ls.Fixed) > 0 {
		for _, f := range ls.Fixed {
			if f == n {
				return true
			}
		}
		return false
	}
	if ls.Multiple > 0 && n%ls.Multiple != 0 {
		return false
	}
	if ls.Min > 0 && n < ls.Min {
		return false
	}
	return true
}

// IsAny reports whether ls places no constraint on length at all.
func (ls LengthSpec) IsAny() bool {
	return len(ls.Fixed) == 0 && ls.Multiple == 0 && ls.Min == 0
}
