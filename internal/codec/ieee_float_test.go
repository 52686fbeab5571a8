// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestFloatRoundTrip(t *testing.T) {
	for _, n := range []int{16, 32, 64} {
		for _, v := range []float64{0, 1, -1, 3.5, -3.5, 65504} {
			buf := EncodeFloat(n, v)
			got := DecodeFloat(n, buf)
			if diff := cmp.Diff(v, got, cmpopts.EquateApprox(0, 1e-2)); diff != "" {
				t.Errorf("length %d value %v round-trip mismatch (-want +got):\n%s", n, v, diff)
			}
		}
	}
}

func TestFloat32And64Exact(t *testing.T) {
	v := math.Pi
	buf64 := EncodeFloat(64, v)
	assert.Equal(t, v, DecodeFloat(64, buf64))

	v32 := float64(float32(math.Pi))
	buf32 := EncodeFloat(32, v32)
	assert.Equal(t, v32, DecodeFloat(32, buf32))
}

func TestFloat16SpecialValues(t *testing.T) {
	inf := EncodeFloat(16, math.Inf(1))
	assert.True(t, math.IsInf(DecodeFloat(16, inf), 1))

	nan := EncodeFloat(16, math.NaN())
	assert.True(t, math.IsNaN(DecodeFloat(16, nan)))

	zero := EncodeFloat(16, 0)
	assert.Equal(t, float64(0), DecodeFloat(16, zero))
}

func TestEncodeFloatBadLength(t *testing.T) {
	assert.Panics(t, func() { EncodeFloat(24, 1.0) })
}

func TestBfloat16RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 100, -100} {
		buf := EncodeBfloat16(v)
		got := DecodeBfloat16(buf)
		assert.InDelta(t, v, got, 1.0)
	}
}

func TestBfloat16TruncatesMantissa(t *testing.T) {
	buf := EncodeBfloat16(1.0 / 3.0)
	got := DecodeBfloat16(buf)
	assert.NotEqual(t, 1.0/3.0, got)
	assert.InDelta(t, 1.0/3.0, got, 0.01)
}
