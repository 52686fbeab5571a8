// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"container/list"
	"fmt"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/bitpack/bitstring/internal/codec"
)

// cacheSize bounds the interning cache, matching spec.md §9's "bounded
// LRU of moderate size (≈256)".
const cacheSize = 256

type cache struct {
	mu    sync.Mutex
	ll    *list.List
	items map[uint64]*list.Element
}

type cacheEntry struct {
	key   string
	value Dtype
}

var dtypeCache = &cache{ll: list.New(), items: map[uint64]*list.Element{}}

// cacheKey renders the full (name,length,scale) identity tuple as a
// string, then hashes it with xxhash for a compact map key. Collisions
// are resolved by storing the original string alongside the value and
// comparing it on lookup.
func cacheKey(name string, length int, hasScale, scaleAuto bool, scale float64, overflow codec.OverflowPolicy) string {
	switch {
	case hasScale && scaleAuto:
		return fmt.Sprintf("%s:%d:auto:%d", name, length, overflow)
	case hasScale:
		return fmt.Sprintf("%s:%d:%s:%d", name, length, strconv.FormatFloat(scale, 'g', -1, 64), overflow)
	default:
		return fmt.Sprintf("%s:%d:%d", name, length, overflow)
	}
}

func (c *cache) get(key string) (Dtype, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h := xxhash.Sum64String(key)
	el, ok := c.items[h]
	if !ok || el.Value.(*cacheEntry).key != key {
		return Dtype{}, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*cacheEntry).value, true
}

func (c *cache) put(key string, d Dtype) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h := xxhash.Sum64String(key)
	if el, ok := c.items[h]; ok {
		e := el.Value.(*cacheEntry)
		e.key, e.value = key, d
		c.ll.MoveToFront(el)
		return
	}
	el := c.ll.PushFront(&cacheEntry{key: key, value: d})
	c.items[h] = el
	if c.ll.Len() > cacheSize {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			old := oldest.Value.(*cacheEntry)
			oldH := xxhash.Sum64String(old.key)
			delete(c.items, oldH)
		}
	}
}

// New resolves and interns a Dtype per spec.md §4.3. length<0 means
// "unspecified"; the zero value of Scale combined with hasScale=false
// means "no scale". overflow is variadic so every existing call site
// keeps compiling unchanged; omit it to get the family's own default
// (codec.Saturate), or pass exactly one value to pin the MXFP overflow
// policy a caller resolved from bitstring.Options.
func New(name string, length int, hasScale, scaleAuto bool, scale float64, overflow ...codec.OverflowPolicy) (Dtype, error) {
	ovf := codec.Saturate
	if len(overflow) > 0 {
		ovf = overflow[0]
	}
	base, embeddedLen, ok := SplitEmbeddedLength(name)
	if ok {
		if length >= 0 && length != embeddedLen {
			return Dtype{}, fmt.Errorf("dtype: conflicting lengths for %q: embedded %d vs explicit %d", name, embeddedLen, length)
		}
		name, length = base, embeddedLen
	}

	def := Lookup(name)
	if def == nil {
		return Dtype{}, fmt.Errorf("dtype: unknown family %q", name)
	}

	if def.VariableLength {
		if length >= 0 {
			return Dtype{}, fmt.Errorf("dtype: family %q is variable-length and takes no length", name)
		}
	} else if !def.Lengths.IsAny() || length >= 0 {
		if length < 0 && len(def.Lengths.Fixed) == 1 {
			length = def.Lengths.Fixed[0]
		}
		if length < 0 {
			return Dtype{}, fmt.Errorf("dtype: family %q requires an explicit length", name)
		}
		if !def.Lengths.Allows(length) {
			return Dtype{}, fmt.Errorf("dtype: length %d not allowed for family %q", length, name)
		}
	}

	key := cacheKey(name, length, hasScale, scaleAuto, scale, ovf)
	if d, found := dtypeCache.get(key); found {
		return d, nil
	}
	d := Dtype{Name: name, Length: length, HasScale: hasScale, ScaleAuto: scaleAuto, Scale: scale, Overflow: ovf}
	dtypeCache.put(key, d)
	return d, nil
}

// MustNew is New but panics on error, for registry bootstrap and
// call-sites that have already validated their inputs.
func MustNew(name string, length int) Dtype {
	d, err := New(name, length, false, false, 0)
	if err != nil {
		panic(err)
	}
	return d
}
