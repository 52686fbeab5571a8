// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"

	"github.com/bitpack/bitstring/internal/bitbuf"
	"github.com/bitpack/bitstring/internal/codec"
)

// Definition is a registry entry describing one format family (spec.md §4.3).
type Definition struct {
	Name           string
	Lengths        LengthSpec
	Signed         bool
	VariableLength bool
	BitsPerItem    int // 8 for byte-oriented families (bytes), 1 otherwise.
	ReturnType     ReturnType

	// Encode renders value into a buffer of the given length (ignored for
	// variable-length families, which size their own output).
	Encode func(length int, value any) *bitbuf.Buffer

	// Decode reads a fixed-length family's full buffer.
	Decode func(buf *bitbuf.Buffer) any

	// EncodeWithPolicy is Encode for families whose encoding depends on an
	// overflow policy (currently only the MXFP families). Nil for every
	// other family, in which case Encode's own built-in default applies.
	EncodeWithPolicy func(length int, value any, policy codec.OverflowPolicy) *bitbuf.Buffer

	// DecodeWithPolicy mirrors EncodeWithPolicy for the decode direction,
	// so a value encoded under an overridden policy reads back correctly.
	DecodeWithPolicy func(buf *bitbuf.Buffer, policy codec.OverflowPolicy) any

	// DecodeVar reads a variable-length family starting at the front of
	// buf, returning the value and the number of bits consumed.
	DecodeVar func(buf *bitbuf.Buffer) (value any, consumed int)

	// MaxFinite reports the family's largest finite representable
	// magnitude at the given resolved length, for families that support
	// scale "auto" (spec.md §4.7, §9). Nil for families with no natural
	// notion of a maximum magnitude (uint, int, bytes, ...).
	MaxFinite func(length int) float64
}

var registry = map[string]*Definition{}

func register(d *Definition) { registry[d.Name] = d }

// Lookup returns the registered family by name, or nil if unknown.
func Lookup(name string) *Definition { return registry[name] }

// Names returns every registered family name, for diagnostics.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	return out
}

var nativeIsLittleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

func toBigInt(v any) *big.Int {
	switch x := v.(type) {
	case *big.Int:
		return x
	case int:
		return big.NewInt(int64(x))
	case int64:
		return big.NewInt(x)
	case uint64:
		return new(big.Int).SetUint64(x)
	default:
		panic(fmt.Sprintf("dtype: cannot interpret %T as an integer", v))
	}
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	default:
		panic(fmt.Sprintf("dtype: cannot interpret %T as a float", v))
	}
}

func init() {
	register(&Definition{
		Name: "uint", Lengths: LengthSpec{Min: 1}, Signed: false, BitsPerItem: 1, ReturnType: ReturnBigInt,
		Encode: func(n int, v any) *bitbuf.Buffer { return codec.EncodeUint(n, toBigInt(v)) },
		Decode: func(buf *bitbuf.Buffer) any { return codec.DecodeUint(buf) },
	})
	register(&Definition{
		Name: "int", Lengths: LengthSpec{Min: 2}, Signed: true, BitsPerItem: 1, ReturnType: ReturnBigInt,
		Encode: func(n int, v any) *bitbuf.Buffer { return codec.EncodeInt(n, toBigInt(v)) },
		Decode: func(buf *bitbuf.Buffer) any { return codec.DecodeInt(buf) },
	})

	registerByteOrderInt("uintbe", false, beOrder)
	registerByteOrderInt("uintle", false, leOrder)
	registerByteOrderInt("uintne", false, neOrder)
	registerByteOrderInt("intbe", true, beOrder)
	registerByteOrderInt("intle", true, leOrder)
	registerByteOrderInt("intne", true, neOrder)

	register(&Definition{
		Name: "bool", Lengths: LengthSpec{Fixed: []int{1}}, BitsPerItem: 1, ReturnType: ReturnBool,
		Encode: func(n int, v any) *bitbuf.Buffer { return codec.EncodeBool(v.(bool)) },
		Decode: func(buf *bitbuf.Buffer) any { return codec.DecodeBool(buf) },
	})
	register(&Definition{
		Name: "bytes", Lengths: LengthSpec{Min: 0}, BitsPerItem: 8, ReturnType: ReturnBytes,
		Encode: func(n int, v any) *bitbuf.Buffer { return codec.EncodeBytes(v.([]byte)) },
		Decode: func(buf *bitbuf.Buffer) any { return codec.DecodeBytes(buf) },
	})
	register(&Definition{
		Name: "bits", Lengths: LengthSpec{Min: 0}, BitsPerItem: 1, ReturnType: ReturnBits,
		Encode: func(n int, v any) *bitbuf.Buffer { return v.(*bitbuf.Buffer).Clone() },
		Decode: func(buf *bitbuf.Buffer) any { return buf.Clone() },
	})

	register(&Definition{
		Name: "hex", Lengths: LengthSpec{Multiple: 4}, BitsPerItem: 1, ReturnType: ReturnString,
		Encode: func(n int, v any) *bitbuf.Buffer { return codec.EncodeHex(v.(string)) },
		Decode: func(buf *bitbuf.Buffer) any { return codec.DecodeHex(buf) },
	})
	register(&Definition{
		Name: "oct", Lengths: LengthSpec{Multiple: 3}, BitsPerItem: 1, ReturnType: ReturnString,
		Encode: func(n int, v any) *bitbuf.Buffer { return codec.EncodeOct(v.(string)) },
		Decode: func(buf *bitbuf.Buffer) any { return codec.DecodeOct(buf) },
	})
	register(&Definition{
		Name: "bin", Lengths: LengthSpec{Min: 0}, BitsPerItem: 1, ReturnType: ReturnString,
		Encode: func(n int, v any) *bitbuf.Buffer { return codec.EncodeBin(v.(string)) },
		Decode: func(buf *bitbuf.Buffer) any { return codec.DecodeBin(buf) },
	})

	registerFloat("float", beOrder)
	registerFloat("floatbe", beOrder)
	registerFloat("floatle", leOrder)
	registerFloat("floatne", neOrder)
	registerBfloat("bfloat", beOrder)
	registerBfloat("bfloatbe", beOrder)
	registerBfloat("bfloatle", leOrder)
	registerBfloat("bfloatne", neOrder)

	register(&Definition{
		Name: "p4binary8", Lengths: LengthSpec{Fixed: []int{8}}, Signed: true, BitsPerItem: 1, ReturnType: ReturnFloat,
		Encode:    func(n int, v any) *bitbuf.Buffer { return codec.EncodeFP8(codec.P4Binary8, toFloat64(v)) },
		Decode:    func(buf *bitbuf.Buffer) any { return codec.DecodeFP8(codec.P4Binary8, buf) },
		MaxFinite: func(int) float64 { return codec.P4Binary8.MaxFinite() },
	})
	register(&Definition{
		Name: "p3binary8", Lengths: LengthSpec{Fixed: []int{8}}, Signed: true, BitsPerItem: 1, ReturnType: ReturnFloat,
		Encode:    func(n int, v any) *bitbuf.Buffer { return codec.EncodeFP8(codec.P3Binary8, toFloat64(v)) },
		Decode:    func(buf *bitbuf.Buffer) any { return codec.DecodeFP8(codec.P3Binary8, buf) },
		MaxFinite: func(int) float64 { return codec.P3Binary8.MaxFinite() },
	})

	registerMXFP("e4m3mxfp", codec.E4M3)
	registerMXFP("e5m2mxfp", codec.E5M2)
	registerMXFP("e2m1mxfp", codec.E2M1)
	registerMXFP("e3m2mxfp", codec.E3M2)
	register(&Definition{
		Name: "e8m0mxfp", Lengths: LengthSpec{Fixed: []int{8}}, Signed: false, BitsPerItem: 1, ReturnType: ReturnFloat,
		Encode: func(n int, v any) *bitbuf.Buffer { return codec.EncodeE8M0(toFloat64(v)) },
		Decode: func(buf *bitbuf.Buffer) any { return codec.DecodeE8M0(buf) },
	})

	register(&Definition{
		Name: "ue", VariableLength: true, BitsPerItem: 1, ReturnType: ReturnUint,
		Encode: func(_ int, v any) *bitbuf.Buffer { return codec.EncodeUE(toUint64(v)) },
		DecodeVar: func(buf *bitbuf.Buffer) (any, int) { v, n := codec.DecodeUE(buf); return v, n },
	})
	register(&Definition{
		Name: "se", VariableLength: true, Signed: true, BitsPerItem: 1, ReturnType: ReturnInt,
		Encode: func(_ int, v any) *bitbuf.Buffer { return codec.EncodeSE(toInt64(v)) },
		DecodeVar: func(buf *bitbuf.Buffer) (any, int) { v, n := codec.DecodeSE(buf); return v, n },
	})
	register(&Definition{
		Name: "uie", VariableLength: true, BitsPerItem: 1, ReturnType: ReturnUint,
		Encode: func(_ int, v any) *bitbuf.Buffer { return codec.EncodeUIE(toUint64(v)) },
		DecodeVar: func(buf *bitbuf.Buffer) (any, int) { v, n := codec.DecodeUIE(buf); return v, n },
	})
	register(&Definition{
		Name: "sie", VariableLength: true, Signed: true, BitsPerItem: 1, ReturnType: ReturnInt,
		Encode: func(_ int, v any) *bitbuf.Buffer { return codec.EncodeSIE(toInt64(v)) },
		DecodeVar: func(buf *bitbuf.Buffer) (any, int) { v, n := codec.DecodeSIE(buf); return v, n },
	})

	register(&Definition{
		Name: "pad", VariableLength: false, Lengths: LengthSpec{Min: 0}, BitsPerItem: 1, ReturnType: ReturnBits,
		Encode: func(n int, v any) *bitbuf.Buffer { return bitbuf.New(n) },
		Decode: func(buf *bitbuf.Buffer) any { return buf.Clone() },
	})
}

func toUint64(v any) uint64 {
	switch x := v.(type) {
	case uint64:
		return x
	case int:
		return uint64(x)
	case int64:
		return uint64(x)
	case *big.Int:
		return x.Uint64()
	default:
		panic(fmt.Sprintf("dtype: cannot interpret %T as uint64", v))
	}
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case *big.Int:
		return x.Int64()
	default:
		panic(fmt.Sprintf("dtype: cannot interpret %T as int64", v))
	}
}

type byteOrder int

const (
	beOrder byteOrder = iota
	leOrder
	neOrder
)

func effectiveLE(o byteOrder) bool {
	switch o {
	case leOrder:
		return true
	case neOrder:
		return nativeIsLittleEndian
	default:
		return false
	}
}

func registerByteOrderInt(name string, signed bool, order byteOrder) {
	register(&Definition{
		Name: name, Lengths: LengthSpec{Multiple: 8}, Signed: signed, BitsPerItem: 1, ReturnType: ReturnBigInt,
		Encode: func(n int, v any) *bitbuf.Buffer {
			var buf *bitbuf.Buffer
			if signed {
				buf = codec.EncodeInt(n, toBigInt(v))
			} else {
				buf = codec.EncodeUint(n, toBigInt(v))
			}
			if effectiveLE(order) {
				buf = codec.ReverseByteOrder(buf)
			}
			return buf
		},
		Decode: func(buf *bitbuf.Buffer) any {
			if effectiveLE(order) {
				buf = codec.ReverseByteOrder(buf)
			}
			if signed {
				return codec.DecodeInt(buf)
			}
			return codec.DecodeUint(buf)
		},
	})
}

func registerFloat(name string, order byteOrder) {
	register(&Definition{
		Name: name, Lengths: LengthSpec{Fixed: []int{16, 32, 64}}, Signed: true, BitsPerItem: 1, ReturnType: ReturnFloat,
		Encode: func(n int, v any) *bitbuf.Buffer {
			buf := codec.EncodeFloat(n, toFloat64(v))
			if effectiveLE(order) {
				buf = codec.ReverseByteOrder(buf)
			}
			return buf
		},
		Decode: func(buf *bitbuf.Buffer) any {
			if effectiveLE(order) {
				buf = codec.ReverseByteOrder(buf)
			}
			return codec.DecodeFloat(buf.Len(), buf)
		},
		MaxFinite: ieeeMaxFinite,
	})
}

func registerBfloat(name string, order byteOrder) {
	register(&Definition{
		Name: name, Lengths: LengthSpec{Fixed: []int{16}}, Signed: true, BitsPerItem: 1, ReturnType: ReturnFloat,
		Encode: func(n int, v any) *bitbuf.Buffer {
			buf := codec.EncodeBfloat16(toFloat64(v))
			if effectiveLE(order) {
				buf = codec.ReverseByteOrder(buf)
			}
			return buf
		},
		Decode: func(buf *bitbuf.Buffer) any {
			if effectiveLE(order) {
				buf = codec.ReverseByteOrder(buf)
			}
			return codec.DecodeBfloat16(buf)
		},
		MaxFinite: bfloatMaxFinite,
	})
}

func registerMXFP(name string, p codec.MXFPParams) {
	register(&Definition{
		Name: name, Lengths: LengthSpec{Fixed: []int{p.Width()}}, Signed: true, BitsPerItem: 1, ReturnType: ReturnFloat,
		Encode: func(n int, v any) *bitbuf.Buffer { return codec.EncodeMXFP(p, toFloat64(v)) },
		EncodeWithPolicy: func(n int, v any, policy codec.OverflowPolicy) *bitbuf.Buffer {
			return codec.EncodeMXFPWithPolicy(p, toFloat64(v), policy)
		},
		Decode: func(buf *bitbuf.Buffer) any { return codec.DecodeMXFP(p, buf) },
		DecodeWithPolicy: func(buf *bitbuf.Buffer, policy codec.OverflowPolicy) any {
			return codec.DecodeMXFPWithPolicy(p, buf, policy)
		},
		MaxFinite: func(int) float64 { return p.MaxFinite() },
	})
}

// ieeeMaxFinite gives the largest finite IEEE-754 binaryN magnitude for
// the float lengths spec.md §4.2 supports.
func ieeeMaxFinite(length int) float64 {
	switch length {
	case 16:
		return 65504
	case 32:
		return math.MaxFloat32
	default:
		return math.MaxFloat64
	}
}

// bfloatMaxFinite gives bfloat16's largest finite magnitude: same
// exponent range as float32, truncated mantissa.
func bfloatMaxFinite(int) float64 { return 3.3895313892515355e+38 }

// embeddedLengthRE matches a family name with a trailing decimal length,
// e.g. "uint8", "float32" (spec.md §4.3 point 1).
var embeddedLengthRE = regexp.MustCompile(`^([a-zA-Z]+)(\d+)$`)

// SplitEmbeddedLength splits a name like "uint8" into ("uint", 8, true).
// It returns ok=false if name has no trailing digits or isn't registered
// once split.
func SplitEmbeddedLength(name string) (base string, length int, ok bool) {
	m := embeddedLengthRE.FindStringSubmatch(name)
	if m == nil {
		return "", 0, false
	}
	if registry[m[1]] == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], n, true
}
