// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitpack/bitstring/internal/bitbuf"
)

// PPOptions configures Bits.PrettyPrint (spec.md §6): which symbol
// alphabet to render in, how symbols are grouped and separated, how
// many groups fit on a line before wrapping, and whether each line is
// prefixed with its starting bit offset.
type PPOptions struct {
	// Format is "bin", "hex", or "oct".
	Format string
	// GroupSize is the number of symbols per group; 0 means no grouping.
	GroupSize int
	// Separator is inserted between groups.
	Separator string
	// GroupsPerLine wraps output after this many groups; 0 means one line.
	GroupsPerLine int
	// ShowOffset prefixes each line with its starting bit offset in hex.
	ShowOffset bool
}

// DefaultPPOptions mirrors the teacher's own sensible-default CLI
// formatting: grouped nibbles of hex, 8 groups per line, offsets shown.
func DefaultPPOptions() PPOptions {
	return PPOptions{Format: "hex", GroupSize: 2, Separator: " ", GroupsPerLine: 8, ShowOffset: true}
}

// PrettyPrint writes b to w using opts, as a text sink suitable for
// terminal or log output (coloring, if wanted, is layered on top by the
// caller since Options.NoColor belongs to the CLI, not this package).
func (b Bits) PrettyPrint(w io.Writer, opts PPOptions) (err error) {
	defer errRecover(&err)
	symbols, bitsPerSymbol, perr := b.ppSymbols(opts.Format)
	if perr != nil {
		return perr
	}
	groupSize := opts.GroupSize
	if groupSize <= 0 {
		groupSize = len(symbols)
		if groupSize == 0 {
			groupSize = 1
		}
	}
	var groups []string
	for i := 0; i < len(symbols); i += groupSize {
		end := i + groupSize
		if end > len(symbols) {
			end = len(symbols)
		}
		groups = append(groups, symbols[i:end])
	}
	perLine := opts.GroupsPerLine
	if perLine <= 0 {
		perLine = len(groups)
		if perLine == 0 {
			perLine = 1
		}
	}
	offsetBits := 0
	for i := 0; i < len(groups); i += perLine {
		end := i + perLine
		if end > len(groups) {
			end = len(groups)
		}
		line := strings.Join(groups[i:end], opts.Separator)
		if opts.ShowOffset {
			if _, werr := fmt.Fprintf(w, "%#08x: %s\n", offsetBits, line); werr != nil {
				return werr
			}
		} else if _, werr := fmt.Fprintf(w, "%s\n", line); werr != nil {
			return werr
		}
		offsetBits += (end - i) * groupSize * bitsPerSymbol
	}
	return nil
}

// ppSymbols renders the whole bitstream as a slice of single-character
// symbols in the requested alphabet, plus that alphabet's bits-per-symbol.
func (b Bits) ppSymbols(format string) (string, int, error) {
	switch format {
	case "bin", "":
		return b.Bin(), 1, nil
	case "hex":
		s, err := b.padAndRender(4, func(bits Bits) (string, error) { return bits.Hex() })
		return s, 4, err
	case "oct":
		s, err := b.padAndRender(3, func(bits Bits) (string, error) { return bits.Oct() })
		return s, 3, err
	default:
		return "", 0, CreationError(fmt.Sprintf("unknown pretty-print format %q", format))
	}
}

// padAndRender right-pads b with zero bits to a multiple of unitBits
// before rendering, so odd-length bitstreams still pretty-print instead
// of erroring; the padding is cosmetic only; it does not round-trip.
func (b Bits) padAndRender(unitBits int, render func(Bits) (string, error)) (string, error) {
	rem := b.buf.Len() % unitBits
	padded := b
	if rem != 0 {
		extended := b.buf.Clone()
		extended.Append(bitbuf.New(unitBits - rem))
		padded = Bits{buf: extended}
	}
	return render(padded)
}
