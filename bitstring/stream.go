// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"fmt"

	"github.com/bitpack/bitstring/internal/dtype"
	"github.com/bitpack/bitstring/internal/token"
)

// ConstBitStream is a read-only cursor over a Bits value (spec.md §6):
// Read/Peek/ReadList/PeekList/ReadTo/Bytealign all consume or inspect
// bits relative to a current position rather than an explicit index.
type ConstBitStream struct {
	bits Bits
	pos  int
}

// NewConstBitStream returns a cursor positioned at the start of b.
func NewConstBitStream(b Bits) *ConstBitStream { return &ConstBitStream{bits: b} }

// Pos returns the current bit position.
func (s *ConstBitStream) Pos() int { return s.pos }

// Len returns the total number of bits.
func (s *ConstBitStream) Len() int { return s.bits.Len() }

// SetPos moves the cursor to an absolute bit position.
func (s *ConstBitStream) SetPos(pos int) (err error) {
	defer errRecover(&err)
	if pos < 0 || pos > s.bits.Len() {
		panic(IndexError("position out of range"))
	}
	s.pos = pos
	return nil
}

// Read decodes one value of the named dtype at the current position and
// advances past it.
func (s *ConstBitStream) Read(name string, length int) (val any, err error) {
	defer errRecover(&err)
	return s.readAt(name, length, &s.pos)
}

// Peek decodes one value without advancing the cursor.
func (s *ConstBitStream) Peek(name string, length int) (val any, err error) {
	defer errRecover(&err)
	pos := s.pos
	return s.readAt(name, length, &pos)
}

func (s *ConstBitStream) readAt(name string, length int, pos *int) (any, error) {
	d, derr := dtype.New(name, length, false, false, 0, resolveOverflow(nil))
	if derr != nil {
		return nil, ReadError(derr.Error())
	}
	v, newPos, rerr := d.ReadAt(s.bits.buf, *pos)
	if rerr != nil {
		return nil, ReadError(rerr.Error())
	}
	*pos = newPos
	return v, nil
}

// FieldSpec names one dtype family and its length for ReadList/PeekList,
// mirroring one format-string token (spec.md §4.4).
type FieldSpec struct {
	Name   string
	Length int
}

// ReadList decodes each field in order, advancing the cursor as it goes.
// At most one field may carry Length == -1 ("stretchy", spec.md §4.4,
// §9): its length is resolved once, up front, as the stream's remaining
// bits minus every other fixed-length field's contribution.
func (s *ConstBitStream) ReadList(fields []FieldSpec) (vals []any, err error) {
	defer errRecover(&err)
	resolved, rerr := resolveStretchyFields(fields, s.bits.Len()-s.pos)
	if rerr != nil {
		return nil, rerr
	}
	for _, f := range resolved {
		v, rerr := s.readAt(f.Name, f.Length, &s.pos)
		if rerr != nil {
			return nil, rerr
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// PeekList decodes each field in order without moving the cursor.
func (s *ConstBitStream) PeekList(fields []FieldSpec) (vals []any, err error) {
	defer errRecover(&err)
	resolved, rerr := resolveStretchyFields(fields, s.bits.Len()-s.pos)
	if rerr != nil {
		return nil, rerr
	}
	pos := s.pos
	for _, f := range resolved {
		v, rerr := s.readAt(f.Name, f.Length, &pos)
		if rerr != nil {
			return nil, rerr
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// resolveStretchyFields returns fields with its one stretchy entry (if
// any) rewritten to a concrete length: available bits minus the total
// contributed by every other fixed-length field. Variable-length
// families (ue/se/uie/sie) are self-delimiting and excluded from that
// total, since their actual bit cost isn't known until decode time.
func resolveStretchyFields(fields []FieldSpec, available int) ([]FieldSpec, error) {
	stretchyIdx := -1
	fixedTotal := 0
	for i, f := range fields {
		if f.Length < 0 {
			if stretchyIdx != -1 {
				return nil, ValueError("more than one stretchy field in read list")
			}
			stretchyIdx = i
			continue
		}
		def := dtype.Lookup(baseFamily(f.Name))
		if def == nil {
			return nil, ReadError(fmt.Sprintf("unknown family %q", f.Name))
		}
		if def.VariableLength {
			continue
		}
		bitsPerItem := def.BitsPerItem
		if bitsPerItem == 0 {
			bitsPerItem = 1
		}
		fixedTotal += f.Length * bitsPerItem
	}
	if stretchyIdx == -1 {
		return fields, nil
	}
	remaining := available - fixedTotal
	if remaining < 0 {
		return nil, ReadError("stretchy field has no bits left to fill")
	}
	def := dtype.Lookup(baseFamily(fields[stretchyIdx].Name))
	if def == nil {
		return nil, ReadError(fmt.Sprintf("unknown family %q", fields[stretchyIdx].Name))
	}
	bitsPerItem := def.BitsPerItem
	if bitsPerItem == 0 {
		bitsPerItem = 1
	}
	out := make([]FieldSpec, len(fields))
	copy(out, fields)
	out[stretchyIdx].Length = remaining / bitsPerItem
	return out, nil
}

// ReadTo reads and returns every bit up to and including the next
// occurrence of sub, advancing the cursor past it.
func (s *ConstBitStream) ReadTo(sub Bits, o *Options) (found Bits, err error) {
	defer errRecover(&err)
	opts := resolveOptions(o)
	pos, ok := coreFind(s.bits.buf, sub.buf, s.pos, opts.Bytealigned)
	if !ok {
		return Bits{}, ReadError("sub-bitstring not found")
	}
	end := pos + sub.buf.Len()
	result := s.bits.buf.Slice(s.pos, end, 1)
	s.pos = end
	return Bits{buf: result}, nil
}

// Unpack decodes the whole of b against a format string (spec.md §4.5):
// each token names a family and optionally a length, with at most one
// stretchy (length-omitted) token resolved against b's own length; a
// bare "pad" token still consumes its bits but contributes no value.
func (b Bits) Unpack(format string) (vals []any, err error) {
	defer errRecover(&err)
	_, toks, perr := token.Parse(format)
	if perr != nil {
		return nil, CreationError(perr.Error())
	}
	fields := make([]FieldSpec, len(toks))
	for i, t := range toks {
		fields[i] = FieldSpec{Name: t.Name, Length: t.Length}
	}
	all, rerr := NewConstBitStream(b).ReadList(fields)
	if rerr != nil {
		return nil, rerr
	}
	for i, t := range toks {
		if t.Name == "pad" && !t.HasValue {
			continue
		}
		vals = append(vals, all[i])
	}
	return vals, nil
}

// Unpack decodes the whole of b against a format string, per Bits.Unpack.
func (b BitArray) Unpack(format string) ([]any, error) {
	return b.Immutable().Unpack(format)
}

// Bytealign advances the cursor to the next byte boundary, returning the
// number of bits skipped.
func (s *ConstBitStream) Bytealign() int {
	skip := (8 - s.pos%8) % 8
	s.pos += skip
	return skip
}

// BitStream is the mutable counterpart to ConstBitStream, reading from
// and editing a BitArray. Per spec.md §6, any edit that changes the
// overall length resets the cursor to 0, since bit positions recorded
// before the edit no longer mean the same thing afterward.
type BitStream struct {
	Array BitArray
	pos   int
}

// NewBitStream returns a cursor/editor over arr.
func NewBitStream(arr BitArray) *BitStream { return &BitStream{Array: arr} }

// Pos returns the current bit position.
func (s *BitStream) Pos() int { return s.pos }

// Len returns the total number of bits.
func (s *BitStream) Len() int { return s.Array.Len() }

// SetPos moves the cursor to an absolute bit position.
func (s *BitStream) SetPos(pos int) (err error) {
	defer errRecover(&err)
	if pos < 0 || pos > s.Array.Len() {
		panic(IndexError("position out of range"))
	}
	s.pos = pos
	return nil
}

// Read decodes one value at the current position and advances past it.
func (s *BitStream) Read(name string, length int) (val any, err error) {
	defer errRecover(&err)
	d, derr := dtype.New(name, length, false, false, 0, resolveOverflow(nil))
	if derr != nil {
		return nil, ReadError(derr.Error())
	}
	v, newPos, rerr := d.ReadAt(s.Array.buf, s.pos)
	if rerr != nil {
		return nil, ReadError(rerr.Error())
	}
	s.pos = newPos
	return v, nil
}

// Bytealign advances the cursor to the next byte boundary, returning the
// number of bits skipped.
func (s *BitStream) Bytealign() int {
	skip := (8 - s.pos%8) % 8
	s.pos += skip
	return skip
}

// Insert splices other in at the cursor and resets the cursor to 0.
func (s *BitStream) Insert(other Bits) error {
	if err := s.Array.Insert(s.pos, other); err != nil {
		return err
	}
	s.pos = 0
	return nil
}

// Delete removes [start, end) and resets the cursor to 0.
func (s *BitStream) Delete(start, end int) error {
	if err := s.Array.Delete(start, end); err != nil {
		return err
	}
	s.pos = 0
	return nil
}

// Overwrite writes other's bits starting at the cursor; length is
// unchanged unless the write extends past the end, which also resets
// the cursor to 0 per the length-change rule above.
func (s *BitStream) Overwrite(other Bits) error {
	before := s.Array.Len()
	if err := s.Array.Overwrite(s.pos, other); err != nil {
		return err
	}
	if s.Array.Len() != before {
		s.pos = 0
	}
	return nil
}
