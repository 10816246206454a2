// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package array implements the per-physical-layout typed arrays of §4.5,
// each a view over a proxy.Proxy exposing a uniform optional-value
// interface (§4.4's ArrayBase).
package array

import (
	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/bitutil"
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
)

// Array is the capability every physical layout satisfies: §4.4's
// ArrayBase restated as a Go interface rather than a CRTP base class
// (DESIGN NOTES §9).
type Array interface {
	Len() int
	NullN() int
	IsValid(i int) bool
	IsNull(i int) bool
	DataType() arrow.Type
	Proxy() *proxy.Proxy
	Release()
}

// base embeds the common bookkeeping every concrete array shares: it owns
// a Proxy and knows how to answer the validity questions purely from the
// proxy's validity buffer (buffer 0 for every non-union, non-null layout).
type base struct {
	p  *proxy.Proxy
	dt arrow.Type
}

func newBase(p *proxy.Proxy, dt arrow.Type) base { return base{p: p, dt: dt} }

func (b *base) Len() int              { return int(b.p.Length()) }
func (b *base) DataType() arrow.Type  { return b.dt }
func (b *base) Proxy() *proxy.Proxy   { return b.p }
func (b *base) Release()              { b.p.Release() }

// NullN returns the number of nulls within [offset, offset+length), the
// slice actually exposed — not necessarily the proxy's full buffer.
func (b *base) NullN() int {
	n := 0
	for i := 0; i < b.Len(); i++ {
		if !b.IsValid(i) {
			n++
		}
	}
	return n
}

// IsValid implements §4.4's `operator[](i).has_value() ==
// bitmap[i + proxy.offset]` rule, short-circuiting to true when the proxy
// carries no validity buffer (buffer 0 is absent) or reports null_count 0.
func (b *base) IsValid(i int) bool {
	if b.p.NullCount() == 0 {
		return true
	}
	raw := b.p.RawBuffer(0)
	if raw == nil {
		return true
	}
	return bitutil.BitIsSet(raw, int(b.p.Offset())+i)
}

func (b *base) IsNull(i int) bool { return !b.IsValid(i) }

// Bitmap returns the validity bit of every position in [0, Len()) as a
// plain bool slice — §4.4's "bitmap() range over booleans", materialized
// for ranging rather than returned as a lazy view, since the source bits
// may be packed (or absent entirely when null_count is 0).
func (b *base) Bitmap() []bool {
	out := make([]bool, b.Len())
	for i := range out {
		out[i] = b.IsValid(i)
	}
	return out
}

// NullableRef is a read reference to value i that knows whether it is
// null, the Go realization of §3's `operator[](i) -> Optional<Ref<T>>`.
type NullableRef[T any] struct {
	value T
	valid bool
}

// NullableValue constructs a NullableRef.
func NullableValue[T any](v T, valid bool) NullableRef[T] {
	return NullableRef[T]{value: v, valid: valid}
}

// Valid reports whether the reference holds a value.
func (r NullableRef[T]) Valid() bool { return r.valid }

// Value returns the underlying value; callers must check Valid first,
// same discipline as the BitReference/At() split in §4.2 — garbage-in,
// garbage-out rather than a panic, since this mirrors a dereference, not a
// bounds check.
func (r NullableRef[T]) Value() T { return r.value }
