// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/bitpack/bitstring/internal/bitbuf"
	"github.com/bitpack/bitstring/internal/dtype"
)

// convertTokenValue parses a format-string token's literal value text
// into the Go value its family's Encode expects, per the family's
// ReturnType. Base/name families (hex/oct/bin/bytes) take the text
// itself; numeric families parse it; bool parses "true"/"false"/"1"/"0".
func convertTokenValue(name, text string) (any, error) {
	text = strings.TrimSpace(text)
	def := dtype.Lookup(baseFamily(name))
	if def == nil {
		return nil, CreationError(fmt.Sprintf("unknown family %q", name))
	}
	switch def.ReturnType {
	case dtype.ReturnString:
		return text, nil
	case dtype.ReturnBytes:
		return []byte(text), nil
	case dtype.ReturnBool:
		switch text {
		case "1", "true", "True":
			return true, nil
		case "0", "false", "False":
			return false, nil
		default:
			return nil, CreationError(fmt.Sprintf("invalid bool literal %q", text))
		}
	case dtype.ReturnFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, CreationError(fmt.Sprintf("invalid float literal %q", text))
		}
		return f, nil
	case dtype.ReturnBigInt:
		v, ok := new(big.Int).SetString(text, 0)
		if !ok {
			return nil, CreationError(fmt.Sprintf("invalid integer literal %q", text))
		}
		return v, nil
	case dtype.ReturnUint:
		u, err := strconv.ParseUint(text, 0, 64)
		if err != nil {
			return nil, CreationError(fmt.Sprintf("invalid unsigned literal %q", text))
		}
		return u, nil
	case dtype.ReturnInt:
		i, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, CreationError(fmt.Sprintf("invalid integer literal %q", text))
		}
		return i, nil
	case dtype.ReturnBits:
		return nil, CreationError(fmt.Sprintf("family %q cannot take a literal token value", name))
	default:
		return nil, CreationError(fmt.Sprintf("unsupported family %q", name))
	}
}

// baseFamily strips an embedded length suffix (e.g. "uint8" -> "uint")
// so the registry lookup finds the family definition.
func baseFamily(name string) string {
	if base, _, ok := dtype.SplitEmbeddedLength(name); ok {
		return base
	}
	return name
}

// bufOf returns the underlying bitbuf.Buffer for a Bits or BitArray,
// used internally by Concat to accept mixed Bits/BitArray parts.
func bufOf(v any) *bitbuf.Buffer {
	switch x := v.(type) {
	case Bits:
		return x.buf
	case BitArray:
		return x.buf
	default:
		panic(fmt.Sprintf("bitstring: bufOf: unsupported type %T", v))
	}
}
