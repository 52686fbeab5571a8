// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"fmt"
	"io"
	"math"
	"math/big"

	"github.com/bitpack/bitstring/internal/bitbuf"
	"github.com/bitpack/bitstring/internal/codec"
	"github.com/bitpack/bitstring/internal/dtype"
)

// Array is a homogeneous, densely-packed sequence of fixed-length dtype
// elements (spec.md §4.7): every element shares one Dtype, and indexing
// operates per-element rather than per-bit.
type Array struct {
	dt  dtype.Dtype
	buf *bitbuf.Buffer
}

// NewArray builds an Array of the named dtype from initial values. name
// must resolve to a fixed-length (non-variable-length) family. overflow
// is variadic: pass nothing to use the process-default MXFP overflow
// policy (spec.md §5), or exactly one value to pin it for this array.
func NewArray(name string, length int, values []any, overflow ...MXFPOverflowPolicy) (a Array, err error) {
	defer errRecover(&err)
	d, derr := dtype.New(name, length, false, false, 0, resolveOverflow(firstOverflow(overflow)))
	if derr != nil {
		panic(CreationError(derr.Error()))
	}
	if d.VariableLength() {
		panic(CreationError(fmt.Sprintf("array element dtype %q must be fixed-length", name)))
	}
	buf := bitbuf.New(0)
	for _, v := range values {
		buf.Append(d.Encode(v, d.Length))
	}
	return Array{dt: d, buf: buf}, nil
}

// NewScaledArray builds an Array whose dtype carries a scale factor. If
// scaleAuto is true, the scale is resolved per spec.md's "auto" rule:
// the smallest power of two such that the largest magnitude in values,
// divided by the scale, stays within the family's largest finite
// representable magnitude.
func NewScaledArray(name string, length int, values []float64, scale float64, scaleAuto bool, overflow ...MXFPOverflowPolicy) (a Array, err error) {
	defer errRecover(&err)
	resolvedScale := scale
	if scaleAuto {
		s, serr := resolveAutoScale(name, length, values)
		if serr != nil {
			return Array{}, serr
		}
		resolvedScale = s
	}
	d, derr := dtype.New(name, length, true, false, resolvedScale, resolveOverflow(firstOverflow(overflow)))
	if derr != nil {
		panic(CreationError(derr.Error()))
	}
	if d.VariableLength() {
		panic(CreationError(fmt.Sprintf("array element dtype %q must be fixed-length", name)))
	}
	buf := bitbuf.New(0)
	for _, v := range values {
		buf.Append(d.Encode(v, d.Length))
	}
	return Array{dt: d, buf: buf}, nil
}

// resolveAutoScale implements scale == "auto": the smallest power of two
// scale such that max(|values|)/scale does not exceed the family's
// largest finite magnitude. Families with no notion of a maximum
// magnitude (integers, strings, bytes) cannot auto-scale.
func resolveAutoScale(name string, length int, values []float64) (float64, error) {
	probe, err := dtype.New(name, length, false, false, 0)
	if err != nil {
		return 0, CreationError(err.Error())
	}
	maxFinite, ok := probe.MaxFinite()
	if !ok {
		return 0, CreationError(fmt.Sprintf("dtype %q does not support scale \"auto\"", name))
	}
	maxAbs := 0.0
	for _, v := range values {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}
	if maxAbs == 0 {
		return 1, nil
	}
	required := maxAbs / maxFinite
	exponent := 0
	if required > 0 {
		exponent = int(math.Ceil(math.Log2(required)))
	}
	return math.Pow(2, float64(exponent)), nil
}

// firstOverflow returns overflow[0] as a pointer, or nil if empty, letting
// NewArray/NewScaledArray/AsType's variadic overflow param feed straight
// into resolveOverflow.
func firstOverflow(overflow []MXFPOverflowPolicy) *MXFPOverflowPolicy {
	if len(overflow) == 0 {
		return nil
	}
	return &overflow[0]
}

// Dtype returns the element dtype.
func (a Array) Dtype() dtype.Dtype { return a.dt }

// Count returns the number of elements.
func (a Array) Count() int {
	w := a.dt.BitLength()
	if w == 0 {
		return 0
	}
	return a.buf.Len() / w
}

func (a Array) itemRange(i int) (start, end int) {
	w := a.dt.BitLength()
	return i * w, (i + 1) * w
}

// Get decodes element i.
func (a Array) Get(i int) (v any, err error) {
	defer errRecover(&err)
	if i < 0 || i >= a.Count() {
		panic(IndexError(fmt.Sprintf("array index %d out of range [0,%d)", i, a.Count())))
	}
	start, end := a.itemRange(i)
	return a.dt.Decode(a.buf.Slice(start, end, 1)), nil
}

// Set overwrites element i.
func (a Array) Set(i int, v any) (err error) {
	defer errRecover(&err)
	if i < 0 || i >= a.Count() {
		panic(IndexError(fmt.Sprintf("array index %d out of range [0,%d)", i, a.Count())))
	}
	start, _ := a.itemRange(i)
	encoded := a.dt.Encode(v, a.dt.Length)
	for k := 0; k < encoded.Len(); k++ {
		a.buf.Set(start+k, encoded.Get(k))
	}
	return nil
}

// Append adds one element to the end.
func (a *Array) Append(v any) (err error) {
	defer errRecover(&err)
	a.buf.Append(a.dt.Encode(v, a.dt.Length))
	return nil
}

// Extend appends every element of other, which must share this array's dtype.
func (a *Array) Extend(other Array) (err error) {
	defer errRecover(&err)
	if other.dt != a.dt {
		panic(ValueError("extend requires matching element dtype"))
	}
	a.buf.Append(other.buf)
	return nil
}

// Insert splices one element in before index i.
func (a *Array) Insert(i int, v any) (err error) {
	defer errRecover(&err)
	if i < 0 || i > a.Count() {
		panic(IndexError(fmt.Sprintf("insert index %d out of range [0,%d]", i, a.Count())))
	}
	start, _ := a.itemRange(i)
	a.buf.Insert(start, a.dt.Encode(v, a.dt.Length))
	return nil
}

// Pop removes and returns element i.
func (a *Array) Pop(i int) (v any, err error) {
	defer errRecover(&err)
	if i < 0 || i >= a.Count() {
		panic(IndexError(fmt.Sprintf("pop index %d out of range [0,%d)", i, a.Count())))
	}
	start, end := a.itemRange(i)
	v = a.dt.Decode(a.buf.Slice(start, end, 1))
	a.buf.Delete(start, end)
	return v, nil
}

// Reverse reverses element order in place (not bit order within elements).
func (a *Array) Reverse() {
	n := a.Count()
	w := a.dt.BitLength()
	out := bitbuf.New(0)
	for i := n - 1; i >= 0; i-- {
		out.Append(a.buf.Slice(i*w, (i+1)*w, 1))
	}
	a.buf = out
}

// CountValue counts the elements equal to v.
func (a Array) CountValue(v any) (n int, err error) {
	defer errRecover(&err)
	for i := 0; i < a.Count(); i++ {
		ev, _ := a.Get(i)
		if anyEqual(ev, v) {
			n++
		}
	}
	return n, nil
}

// Byteswap reverses the byte order within every element in place; the
// element width must be a non-zero multiple of 8.
func (a *Array) Byteswap() (err error) {
	defer errRecover(&err)
	w := a.dt.BitLength()
	n := a.Count()
	out := bitbuf.New(0)
	for i := 0; i < n; i++ {
		out.Append(codec.ReverseByteOrder(a.buf.Slice(i*w, (i+1)*w, 1)))
	}
	a.buf = out
	return nil
}

// AsType re-encodes every element as the named dtype, converting through
// float64 (exact for the IEEE/MXFP families; large big.Int values beyond
// float64's 53-bit mantissa lose precision, matching the teacher's own
// float-based numeric codecs).
func (a Array) AsType(name string, length int, overflow ...MXFPOverflowPolicy) (out Array, err error) {
	defer errRecover(&err)
	vals := make([]float64, a.Count())
	for i := range vals {
		v, _ := a.Get(i)
		vals[i] = anyToFloat64(v)
	}
	d, derr := dtype.New(name, length, false, false, 0, resolveOverflow(firstOverflow(overflow)))
	if derr != nil {
		return Array{}, CreationError(derr.Error())
	}
	return buildArrayFromFloats(d, vals)
}

// promote picks the dtype that survives elementwise arithmetic between
// two arrays: float beats integer, signed beats unsigned, wider beats
// narrower, and a tie keeps the left operand (spec.md's resolved Open
// Question on Array promotion).
func promote(a, b dtype.Dtype) dtype.Dtype {
	af, bf := a.ReturnType() == dtype.ReturnFloat, b.ReturnType() == dtype.ReturnFloat
	if af != bf {
		if af {
			return a
		}
		return b
	}
	as, bs := a.IsSigned(), b.IsSigned()
	if as != bs {
		if as {
			return a
		}
		return b
	}
	al, bl := a.BitLength(), b.BitLength()
	if al > bl {
		return a
	}
	if bl > al {
		return b
	}
	return a
}

func (a Array) elementwise(b Array, op func(x, y float64) float64) (Array, error) {
	if a.Count() != b.Count() {
		return Array{}, ValueError("arrays differ in length")
	}
	dt := promote(a.dt, b.dt)
	vals := make([]float64, a.Count())
	for i := range vals {
		av, _ := a.Get(i)
		bv, _ := b.Get(i)
		vals[i] = op(anyToFloat64(av), anyToFloat64(bv))
	}
	return buildArrayFromFloats(dt, vals)
}

// Add returns the elementwise sum, with dtype promotion.
func (a Array) Add(b Array) (res Array, err error) {
	defer errRecover(&err)
	return a.elementwise(b, func(x, y float64) float64 { return x + y })
}

// Sub returns the elementwise difference, with dtype promotion.
func (a Array) Sub(b Array) (res Array, err error) {
	defer errRecover(&err)
	return a.elementwise(b, func(x, y float64) float64 { return x - y })
}

// Mul returns the elementwise product, with dtype promotion.
func (a Array) Mul(b Array) (res Array, err error) {
	defer errRecover(&err)
	return a.elementwise(b, func(x, y float64) float64 { return x * y })
}

// Div returns the elementwise quotient, with dtype promotion.
func (a Array) Div(b Array) (res Array, err error) {
	defer errRecover(&err)
	return a.elementwise(b, func(x, y float64) float64 { return x / y })
}

// FloorDiv returns the elementwise floor division, with dtype promotion.
func (a Array) FloorDiv(b Array) (res Array, err error) {
	defer errRecover(&err)
	return a.elementwise(b, func(x, y float64) float64 { return math.Floor(x / y) })
}

// Mod returns the elementwise modulo, with dtype promotion.
func (a Array) Mod(b Array) (res Array, err error) {
	defer errRecover(&err)
	return a.elementwise(b, func(x, y float64) float64 { return math.Mod(x, y) })
}

// Lshift returns a left-shifted by b's elements, each treated as a shift
// count (spec.md §4.7's Array-Array `<<`), with dtype promotion.
func (a Array) Lshift(b Array) (res Array, err error) {
	defer errRecover(&err)
	return a.elementwise(b, func(x, y float64) float64 { return x * math.Pow(2, y) })
}

// Rshift returns a right-shifted by b's elements, each treated as a shift
// count (spec.md §4.7's Array-Array `>>`), with dtype promotion.
func (a Array) Rshift(b Array) (res Array, err error) {
	defer errRecover(&err)
	return a.elementwise(b, func(x, y float64) float64 { return math.Floor(x / math.Pow(2, y)) })
}

// And returns the elementwise bitwise AND; both arrays must share a dtype.
func (a Array) And(b Array) (res Array, err error) {
	defer errRecover(&err)
	return a.bitwise(b, (*bitbuf.Buffer).And)
}

// Or returns the elementwise bitwise OR; both arrays must share a dtype.
func (a Array) Or(b Array) (res Array, err error) {
	defer errRecover(&err)
	return a.bitwise(b, (*bitbuf.Buffer).Or)
}

// Xor returns the elementwise bitwise XOR; both arrays must share a dtype.
func (a Array) Xor(b Array) (res Array, err error) {
	defer errRecover(&err)
	return a.bitwise(b, (*bitbuf.Buffer).Xor)
}

func (a Array) bitwise(b Array, op func(*bitbuf.Buffer, *bitbuf.Buffer) *bitbuf.Buffer) (Array, error) {
	if a.dt != b.dt {
		return Array{}, ValueError("bitwise op requires matching element dtype")
	}
	return Array{dt: a.dt, buf: op(a.buf, b.buf)}, nil
}

func buildArrayFromFloats(dt dtype.Dtype, vals []float64) (Array, error) {
	buf := bitbuf.New(0)
	for _, v := range vals {
		var enc any
		switch dt.ReturnType() {
		case dtype.ReturnFloat:
			enc = v
		case dtype.ReturnBigInt:
			enc = big.NewInt(int64(math.Round(v)))
		case dtype.ReturnUint:
			enc = uint64(math.Round(v))
		case dtype.ReturnInt:
			enc = int64(math.Round(v))
		case dtype.ReturnBool:
			enc = v != 0
		default:
			return Array{}, ValueError(fmt.Sprintf("dtype %q cannot hold a numeric array result", dt.Name))
		}
		buf.Append(dt.Encode(enc, dt.Length))
	}
	return Array{dt: dt, buf: buf}, nil
}

func anyToFloat64(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case *big.Int:
		f := new(big.Float).SetInt(x)
		r, _ := f.Float64()
		return r
	case uint64:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		panic(ValueError(fmt.Sprintf("cannot treat %T as numeric", v)))
	}
}

// scalarElementwise applies op between every element of a and the scalar
// v, re-encoding through a's own Dtype rather than a promoted one, since
// a bare Go scalar carries no dtype of its own (spec.md §4.7's "Array +
// scalar" form, e.g. Array("uint8", [1,2,3,4]) + 10).
func (a Array) scalarElementwise(v any, op func(x, y float64) float64) (Array, error) {
	sv := anyToFloat64(v)
	vals := make([]float64, a.Count())
	for i := range vals {
		ev, _ := a.Get(i)
		vals[i] = op(anyToFloat64(ev), sv)
	}
	return buildArrayFromFloats(a.dt, vals)
}

// AddScalar returns a + v elementwise, keeping a's Dtype.
func (a Array) AddScalar(v any) (res Array, err error) {
	defer errRecover(&err)
	return a.scalarElementwise(v, func(x, y float64) float64 { return x + y })
}

// SubScalar returns a - v elementwise, keeping a's Dtype.
func (a Array) SubScalar(v any) (res Array, err error) {
	defer errRecover(&err)
	return a.scalarElementwise(v, func(x, y float64) float64 { return x - y })
}

// MulScalar returns a * v elementwise, keeping a's Dtype.
func (a Array) MulScalar(v any) (res Array, err error) {
	defer errRecover(&err)
	return a.scalarElementwise(v, func(x, y float64) float64 { return x * y })
}

// DivScalar returns a / v elementwise, keeping a's Dtype.
func (a Array) DivScalar(v any) (res Array, err error) {
	defer errRecover(&err)
	return a.scalarElementwise(v, func(x, y float64) float64 { return x / y })
}

// FloorDivScalar returns a // v elementwise (spec.md §4.7), keeping a's Dtype.
func (a Array) FloorDivScalar(v any) (res Array, err error) {
	defer errRecover(&err)
	return a.scalarElementwise(v, func(x, y float64) float64 { return math.Floor(x / y) })
}

// ModScalar returns a % v elementwise, keeping a's Dtype.
func (a Array) ModScalar(v any) (res Array, err error) {
	defer errRecover(&err)
	return a.scalarElementwise(v, math.Mod)
}

// LshiftScalar returns every element's integer value shifted left by n
// bits, keeping a's Dtype (spec.md §4.7 "Shifts").
func (a Array) LshiftScalar(n int) (res Array, err error) {
	defer errRecover(&err)
	factor := math.Pow(2, float64(n))
	return a.scalarElementwise(factor, func(x, y float64) float64 { return x * y })
}

// RshiftScalar returns every element's integer value shifted right by n
// bits (floor division by 2^n), keeping a's Dtype.
func (a Array) RshiftScalar(n int) (res Array, err error) {
	defer errRecover(&err)
	factor := math.Pow(2, float64(n))
	return a.scalarElementwise(factor, func(x, y float64) float64 { return math.Floor(x / y) })
}

// inPlace re-runs op against v and replaces a's own buffer with the
// result, backing every *Scalar method's in-place counterpart below.
func (a *Array) inPlace(op func(Array, any) (Array, error), v any) error {
	res, err := op(*a, v)
	if err != nil {
		return err
	}
	a.buf = res.buf
	return nil
}

// AddScalarInPlace mutates a to a + v elementwise.
func (a *Array) AddScalarInPlace(v any) (err error) {
	defer errRecover(&err)
	return a.inPlace(Array.AddScalar, v)
}

// SubScalarInPlace mutates a to a - v elementwise.
func (a *Array) SubScalarInPlace(v any) (err error) {
	defer errRecover(&err)
	return a.inPlace(Array.SubScalar, v)
}

// MulScalarInPlace mutates a to a * v elementwise.
func (a *Array) MulScalarInPlace(v any) (err error) {
	defer errRecover(&err)
	return a.inPlace(Array.MulScalar, v)
}

// DivScalarInPlace mutates a to a / v elementwise.
func (a *Array) DivScalarInPlace(v any) (err error) {
	defer errRecover(&err)
	return a.inPlace(Array.DivScalar, v)
}

// FloorDivScalarInPlace mutates a to a // v elementwise.
func (a *Array) FloorDivScalarInPlace(v any) (err error) {
	defer errRecover(&err)
	return a.inPlace(Array.FloorDivScalar, v)
}

// ModScalarInPlace mutates a to a % v elementwise.
func (a *Array) ModScalarInPlace(v any) (err error) {
	defer errRecover(&err)
	return a.inPlace(Array.ModScalar, v)
}

// LshiftScalarInPlace mutates a, shifting every element left by n bits.
func (a *Array) LshiftScalarInPlace(n int) (err error) {
	defer errRecover(&err)
	return a.inPlace(func(arr Array, v any) (Array, error) { return arr.LshiftScalar(v.(int)) }, n)
}

// RshiftScalarInPlace mutates a, shifting every element right by n bits.
func (a *Array) RshiftScalarInPlace(n int) (err error) {
	defer errRecover(&err)
	return a.inPlace(func(arr Array, v any) (Array, error) { return arr.RshiftScalar(v.(int)) }, n)
}

// arrayInPlace mirrors inPlace for the Array-Array operators, which take
// an Array operand rather than a bare scalar.
func (a *Array) arrayInPlace(op func(Array, Array) (Array, error), b Array) error {
	res, err := op(*a, b)
	if err != nil {
		return err
	}
	a.buf = res.buf
	return nil
}

// AddInPlace mutates a to a + b elementwise.
func (a *Array) AddInPlace(b Array) (err error) {
	defer errRecover(&err)
	return a.arrayInPlace(Array.Add, b)
}

// SubInPlace mutates a to a - b elementwise.
func (a *Array) SubInPlace(b Array) (err error) {
	defer errRecover(&err)
	return a.arrayInPlace(Array.Sub, b)
}

// MulInPlace mutates a to a * b elementwise.
func (a *Array) MulInPlace(b Array) (err error) {
	defer errRecover(&err)
	return a.arrayInPlace(Array.Mul, b)
}

// DivInPlace mutates a to a / b elementwise.
func (a *Array) DivInPlace(b Array) (err error) {
	defer errRecover(&err)
	return a.arrayInPlace(Array.Div, b)
}

// FloorDivInPlace mutates a to a // b elementwise.
func (a *Array) FloorDivInPlace(b Array) (err error) {
	defer errRecover(&err)
	return a.arrayInPlace(Array.FloorDiv, b)
}

// ModInPlace mutates a to a % b elementwise.
func (a *Array) ModInPlace(b Array) (err error) {
	defer errRecover(&err)
	return a.arrayInPlace(Array.Mod, b)
}

// LshiftInPlace mutates a, shifting every element left by b's elements.
func (a *Array) LshiftInPlace(b Array) (err error) {
	defer errRecover(&err)
	return a.arrayInPlace(Array.Lshift, b)
}

// RshiftInPlace mutates a, shifting every element right by b's elements.
func (a *Array) RshiftInPlace(b Array) (err error) {
	defer errRecover(&err)
	return a.arrayInPlace(Array.Rshift, b)
}

// Equals compares a and b elementwise by decoded numeric value (not raw
// bits or matching Dtype), returning a bool-dtype Array per
// SPEC_FULL.md §12; differing Dtypes compare by value instead of
// erroring the way the bitwise ops above do, since equality is
// well-defined across dtypes even when AND/OR/XOR are not. Differing
// lengths still error, since there is no sensible elementwise result.
func (a Array) Equals(b Array) (res Array, err error) {
	defer errRecover(&err)
	if a.Count() != b.Count() {
		return Array{}, ValueError("arrays differ in length")
	}
	boolDt, derr := dtype.New("bool", 1, false, false, 0)
	if derr != nil {
		return Array{}, CreationError(derr.Error())
	}
	buf := bitbuf.New(0)
	for i := 0; i < a.Count(); i++ {
		av, _ := a.Get(i)
		bv, _ := b.Get(i)
		buf.Append(boolDt.Encode(anyToFloat64(av) == anyToFloat64(bv), 1))
	}
	return Array{dt: boolDt, buf: buf}, nil
}

// EqualsScalar compares every element of a against the scalar v,
// returning a bool-dtype Array.
func (a Array) EqualsScalar(v any) (res Array, err error) {
	defer errRecover(&err)
	sv := anyToFloat64(v)
	boolDt, derr := dtype.New("bool", 1, false, false, 0)
	if derr != nil {
		return Array{}, CreationError(derr.Error())
	}
	buf := bitbuf.New(0)
	for i := 0; i < a.Count(); i++ {
		ev, _ := a.Get(i)
		buf.Append(boolDt.Encode(anyToFloat64(ev) == sv, 1))
	}
	return Array{dt: boolDt, buf: buf}, nil
}

// GetSlice returns elements [start:end) stepping by step as a new Array
// sharing a's Dtype (spec.md §4.7 "slice get/set"). Negative start/end
// count from the end, matching Bits.Slice.
func (a Array) GetSlice(start, end, step int) (res Array, err error) {
	defer errRecover(&err)
	if step < 1 {
		panic(ValueError("slice step must be >= 1"))
	}
	s, e, rerr := resolveRange(start, end, a.Count(), false)
	if rerr != nil {
		return Array{}, rerr
	}
	w := a.dt.BitLength()
	buf := bitbuf.New(0)
	for i := s; i < e; i += step {
		buf.Append(a.buf.Slice(i*w, (i+1)*w, 1))
	}
	return Array{dt: a.dt, buf: buf}, nil
}

// SetSlice assigns values into elements [start:end) stepping by step. A
// step of 1 may resize the array when len(values) != end-start; any
// other step requires values to supply exactly as many elements as the
// slice selects (spec.md §4.7).
func (a *Array) SetSlice(start, end, step int, values []any) (err error) {
	defer errRecover(&err)
	if step < 1 {
		panic(ValueError("slice step must be >= 1"))
	}
	s, e, rerr := resolveRange(start, end, a.Count(), false)
	if rerr != nil {
		return rerr
	}
	w := a.dt.BitLength()
	if step == 1 {
		replacement := bitbuf.New(0)
		for _, v := range values {
			replacement.Append(a.dt.Encode(v, a.dt.Length))
		}
		a.buf.Delete(s*w, e*w)
		a.buf.Insert(s*w, replacement)
		return nil
	}
	count := 0
	for i := s; i < e; i += step {
		count++
	}
	if len(values) != count {
		return ValueError(fmt.Sprintf("slice assignment with step %d requires exactly %d values, got %d", step, count, len(values)))
	}
	idx := 0
	for i := s; i < e; i += step {
		encoded := a.dt.Encode(values[idx], a.dt.Length)
		for k := 0; k < encoded.Len(); k++ {
			a.buf.Set(i*w+k, encoded.Get(k))
		}
		idx++
	}
	return nil
}

// ArrayFromFile reads n elements of the named fixed-length dtype from r,
// byte-aligned (spec.md §6 "fromfile").
func ArrayFromFile(r io.Reader, name string, length, n int) (a Array, err error) {
	defer errRecover(&err)
	d, derr := dtype.New(name, length, false, false, 0)
	if derr != nil {
		panic(CreationError(derr.Error()))
	}
	if d.VariableLength() {
		panic(CreationError(fmt.Sprintf("array element dtype %q must be fixed-length", name)))
	}
	w := d.BitLength()
	needed := (n*w + 7) / 8
	data := make([]byte, needed)
	if _, rerr := io.ReadFull(r, data); rerr != nil {
		return Array{}, CreationError(fmt.Sprintf("reading array from file: %v", rerr))
	}
	return Array{dt: d, buf: bitbuf.FromBytes(data, n*w, 0)}, nil
}

// ToFile writes every element's packed bits to w, byte-aligned; trailing
// bits in the final byte are zero-padded (spec.md §6 "tofile").
func (a Array) ToFile(w io.Writer) (n int, err error) {
	defer errRecover(&err)
	n, werr := w.Write(a.buf.ToBytes())
	if werr != nil {
		return n, CreationError(fmt.Sprintf("writing array to file: %v", werr))
	}
	return n, nil
}

func anyEqual(a, b any) bool {
	switch x := a.(type) {
	case *big.Int:
		y, ok := b.(*big.Int)
		return ok && x.Cmp(y) == 0
	default:
		return a == b
	}
}
