// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"fmt"
	"strconv"
)

// structSizes gives the byte size of each compact struct code.
var structSizes = map[byte]int{
	'b': 1, 'B': 1,
	'h': 2, 'H': 2,
	'l': 4, 'L': 4,
	'q': 8, 'Q': 8,
	'e': 2, 'f': 4, 'd': 8,
}

// expandStruct expands a compact struct-style code (e.g. ">2h4B") into
// its per-field tokens, per spec.md §6's "compact struct codes".
func expandStruct(tok string) ([]Token, error) {
	endian := tok[0]
	body := tok[1:]

	var out []Token
	i := 0
	for i < len(body) {
		start := i
		for i < len(body) && body[i] >= '0' && body[i] <= '9' {
			i++
		}
		count := 1
		if i > start {
			n, err := strconv.Atoi(body[start:i])
			if err != nil {
				return nil, fmt.Errorf("token: invalid repeat count in struct code %q", tok)
			}
			count = n
		}
		if i >= len(body) {
			return nil, fmt.Errorf("token: trailing digits with no code in struct code %q", tok)
		}
		code := body[i]
		i++
		size, ok := structSizes[code]
		if !ok {
			return nil, fmt.Errorf("token: unknown struct code %q in %q", code, tok)
		}
		name, err := structFieldName(code, size, endian)
		if err != nil {
			return nil, err
		}
		for k := 0; k < count; k++ {
			out = append(out, Token{Name: name, Length: size * 8})
		}
	}
	return out, nil
}

func structFieldName(code byte, sizeBytes int, endian byte) (string, error) {
	switch code {
	case 'b':
		return "int", nil
	case 'B':
		return "uint", nil
	case 'h', 'l', 'q':
		return signedFamily(endian), nil
	case 'H', 'L', 'Q':
		return unsignedFamily(endian), nil
	case 'e', 'f', 'd':
		return floatFamily(endian), nil
	default:
		return "", fmt.Errorf("token: unsupported struct code %q", code)
	}
}

func signedFamily(endian byte) string {
	switch endian {
	case '<':
		return "intle"
	case '>':
		return "intbe"
	default:
		return "intne"
	}
}

func unsignedFamily(endian byte) string {
	switch endian {
	case '<':
		return "uintle"
	case '>':
		return "uintbe"
	default:
		return "uintne"
	}
}

func floatFamily(endian byte) string {
	switch endian {
	case '<':
		return "floatle"
	case '>':
		return "floatbe"
	default:
		return "floatne"
	}
}
