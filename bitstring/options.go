// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstring

import (
	"os"
	"sync"

	"github.com/bitpack/bitstring/internal/codec"
)

// MXFPOverflowPolicy selects what encoding an MXFP value beyond the
// family's largest finite magnitude does (spec.md §4.2, §5).
type MXFPOverflowPolicy int

const (
	// MXFPSaturate clamps an overflowing magnitude to the largest finite value.
	MXFPSaturate MXFPOverflowPolicy = iota
	// MXFPOverflowToInf permits encoding to a signed infinity.
	MXFPOverflowToInf
)

// toCodec translates the public policy enum into internal/codec's own,
// the boundary between bitstring's Options surface and the MXFP encoder
// it configures.
func (p MXFPOverflowPolicy) toCodec() codec.OverflowPolicy {
	if p == MXFPOverflowToInf {
		return codec.Overflow
	}
	return codec.Saturate
}

// Options is the process-wide options object spec.md §5 describes:
// lsb0 numbering, a default bytealigned search/replace mode, the MXFP
// overflow policy, and a read-only no_color flag derived from NO_COLOR.
//
// Entry points that consult LSB0 or Bytealigned take an *Options
// explicitly (nil falls back to the package default). The MXFP overflow
// policy is read from the package default unless a call overrides it
// (WithOverflow, or the overflow argument of the Array constructors).
type Options struct {
	LSB0          bool
	Bytealigned   bool
	MXFPOverflow  MXFPOverflowPolicy
	NoColor       bool
}

var (
	defaultMu      sync.RWMutex
	defaultOptions = Options{NoColor: noColorFromEnv()}
)

// noColorFromEnv derives the initial NoColor value from the NO_COLOR
// environment variable, per the https://no-color.org convention spec.md
// §5/§6 calls out by name.
func noColorFromEnv() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return set
}

// DefaultOptions returns a copy of the current process-wide defaults.
func DefaultOptions() Options {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultOptions
}

// SetDefaultOptions replaces the process-wide defaults. NoColor is
// preserved from the environment regardless of what the caller passes,
// since spec.md §5 calls it "read-only, derived from the NO_COLOR env
// var".
func SetDefaultOptions(o Options) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	o.NoColor = defaultOptions.NoColor
	defaultOptions = o
}

// resolveOptions returns o if non-nil, else the current process default.
func resolveOptions(o *Options) Options {
	if o != nil {
		return *o
	}
	return DefaultOptions()
}

// resolveOverflow returns override if set, else the process default's
// MXFPOverflow, translated to internal/codec's policy type. Every
// construction path that calls dtype.New for a possibly-MXFP family
// threads its result through, so Options.MXFPOverflow (and WithOverflow
// overrides) actually reach codec.EncodeMXFPWithPolicy.
func resolveOverflow(override *MXFPOverflowPolicy) codec.OverflowPolicy {
	if override != nil {
		return override.toCodec()
	}
	return DefaultOptions().MXFPOverflow.toCodec()
}
