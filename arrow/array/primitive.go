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

package array

import (
	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/cdata"
	"github.com/Alex-PLACET/sparrow/arrow/memory"
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
)

// Primitive[T] is the fixed-width contiguous-buffer layout (§4.5):
// [validity, values]. Every scalar physical layout this module supports
// — integers, floats, float16.Num, and the fixed-width temporal kinds
// (stored as their underlying int32/int64/interval-struct representation)
// — is a Primitive[T] instantiation, the way the teacher's
// numericbuilder.gen.go generated one near-identical type per Go numeric
// kind before generics existed.
type Primitive[T any] struct {
	base
}

// NewPrimitive wraps p as a Primitive[T] array of the given decoded type.
func NewPrimitive[T any](p *proxy.Proxy, dt arrow.Type) *Primitive[T] {
	return &Primitive[T]{base: newBase(p, dt)}
}

// Value returns the value at i without regard for validity; callers that
// care about nulls should use At.
func (a *Primitive[T]) Value(i int) T {
	return proxy.Buffer[T](a.p, 1).At(int(a.p.Offset()) + i)
}

// At is §3's `operator[](i) -> Optional<Ref<T>>`.
func (a *Primitive[T]) At(i int) NullableRef[T] {
	return NullableValue(a.Value(i), a.IsValid(i))
}

// Values returns every value in [0, Len()) regardless of validity —
// §4.4's "values() range over raw T", materialized as a plain slice so
// callers can `range` it directly.
func (a *Primitive[T]) Values() []T {
	out := make([]T, a.Len())
	off := int(a.p.Offset())
	view := proxy.Buffer[T](a.p, 1)
	for i := range out {
		out[i] = view.At(off + i)
	}
	return out
}

var _ Array = (*Primitive[int32])(nil)

// PrimitiveBuilder[T] is the two-phase owning mutator (§4.5 NEW Builders):
// accumulate with Append/AppendNull, freeze with NewArray.
type PrimitiveBuilder[T any] struct {
	alloc  memory.Allocator
	format string
	dt     arrow.Type

	values    *memory.Buffer[T]
	valid     []bool
	nullCount int
}

// NewPrimitiveBuilder returns an empty builder for the given format
// string and decoded type (e.g. format "i", dt arrow.INT32).
func NewPrimitiveBuilder[T any](alloc memory.Allocator, format string, dt arrow.Type) *PrimitiveBuilder[T] {
	return &PrimitiveBuilder[T]{
		alloc:  alloc,
		format: format,
		dt:     dt,
		values: memory.NewBuffer[T](alloc),
	}
}

func (b *PrimitiveBuilder[T]) Len() int { return b.values.Size() }

// Append adds a non-null value.
func (b *PrimitiveBuilder[T]) Append(v T) {
	b.values.PushBack(v)
	b.valid = append(b.valid, true)
}

// AppendNull adds a null slot; its underlying value is the zero value of
// T, matching §4.2's "bit=0 means null" independent of stored bytes.
func (b *PrimitiveBuilder[T]) AppendNull() {
	var zero T
	b.values.PushBack(zero)
	b.valid = append(b.valid, false)
	b.nullCount++
}

// Resize implements the owning-array `resize(n, fill)` mutator (§4.5):
// grows or shrinks to n elements, filling new slots as non-null fill.
func (b *PrimitiveBuilder[T]) Resize(n int, fill T) {
	old := b.Len()
	b.values.Resize(n, fill)
	if n > old {
		for i := old; i < n; i++ {
			b.valid = append(b.valid, true)
		}
	} else {
		for i := old - 1; i >= n; i-- {
			if !b.valid[i] {
				b.nullCount--
			}
		}
		b.valid = b.valid[:n]
	}
}

// Insert implements `insert(pos, …)`, shifting the tail right by one and
// writing v at pos.
func (b *PrimitiveBuilder[T]) Insert(pos int, v T, valid bool) {
	old := b.Len()
	b.values.Insert(pos, 1, v)
	b.valid = append(b.valid, false)
	copy(b.valid[pos+1:], b.valid[pos:old])
	b.valid[pos] = valid
	if !valid {
		b.nullCount++
	}
}

// Erase implements `erase(pos_range)`.
func (b *PrimitiveBuilder[T]) Erase(first, last int) {
	for i := first; i < last; i++ {
		if !b.valid[i] {
			b.nullCount--
		}
	}
	b.values.Erase(first, last)
	b.valid = append(b.valid[:first], b.valid[last:]...)
}

// NewArray freezes the builder into an immutable Primitive[T], allocating
// the validity bitmap only if at least one null was appended (an
// all-valid array may omit its validity buffer per §4.3.1).
func (b *PrimitiveBuilder[T]) NewArray() *Primitive[T] {
	n := b.Len()
	var validityBuf []byte
	nullCount := int64(b.nullCount)
	if b.nullCount > 0 {
		validityBuf = make([]byte, (n+7)/8)
		for i, v := range b.valid {
			if v {
				validityBuf[i/8] |= 1 << (i % 8)
			}
		}
	} else {
		nullCount = 0
	}

	values := b.values
	p := proxy.Export(proxy.ExportSpec{
		Format: b.format,
		Length: int64(n),
		NullCount: nullCount,
		Buffers: []cdata.BufferPtr{
			{Data: validityBuf},
			{Data: values.Bytes()},
		},
		Teardown: func() { values.Release() },
	})
	return NewPrimitive[T](p, b.dt)
}
