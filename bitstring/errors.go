// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import "runtime"

// The five error kinds spec.md §7 requires, each following the teacher's
// own "type Error string" idiom (see flate/common.go, brotli/error.go,
// bzip2/common.go in dsnet-compress): a bare string type implementing
// error, grouped here instead of scattered sentinel vars since callers
// need to distinguish *kind*, not just identity.

// CreationError reports malformed construction: an unknown keyword, a
// value out of range, a wrong length for the declared dtype, or too
// few/many values passed to pack.
type CreationError string

func (e CreationError) Error() string { return "bitstring: creation error: " + string(e) }

// InterpretError reports that existing bits cannot be interpreted under
// the requested dtype.
type InterpretError string

func (e InterpretError) Error() string { return "bitstring: interpret error: " + string(e) }

// ReadError reports that a stream ran out of bits before the requested
// token could be filled.
type ReadError string

func (e ReadError) Error() string { return "bitstring: read error: " + string(e) }

// ValueError reports invalid arguments to an edit method.
type ValueError string

func (e ValueError) Error() string { return "bitstring: value error: " + string(e) }

// IndexError reports an out-of-range single-bit or single-element index.
type IndexError string

func (e IndexError) Error() string { return "bitstring: index error: " + string(e) }

// errRecover is deferred at every exported entry point, mirroring the
// teacher's errRecover(err *error) in flate/common.go and brotli/error.go:
// internal codec/parser/bitbuf code panics one of the typed errors above
// (or a plain Go error bubbled up from internal/dtype or internal/token),
// and the public API turns that panic back into a normal error return.
// A runtime.Error (nil pointer deref, index out of range from a genuine
// bug) is re-panicked rather than swallowed.
func errRecover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok {
		if _, isRuntime := e.(runtime.Error); isRuntime {
			panic(e)
		}
		*err = e
		return
	}
	panic(r)
}
