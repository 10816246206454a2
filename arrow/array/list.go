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
	"golang.org/x/exp/constraints"

	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/cdata"
	"github.com/Alex-PLACET/sparrow/arrow/memory"
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
)

// List[Offset] realizes List/LargeList (§4.5): [validity, offsets] plus
// one child array holding every element's values concatenated.
type List[Offset constraints.Signed] struct {
	base
	values Array
}

// NewList wraps p together with the already-constructed values child.
func NewList[Offset constraints.Signed](p *proxy.Proxy, dt arrow.Type, values Array) *List[Offset] {
	return &List[Offset]{base: newBase(p, dt), values: values}
}

func (a *List[Offset]) offsets() memory.BufferView[Offset] { return proxy.Buffer[Offset](a.p, 1) }

// ValueOffsets returns the [start, end) index range into Values() for
// element i.
func (a *List[Offset]) ValueOffsets(i int) (start, end Offset) {
	off := a.offsets()
	idx := int(a.p.Offset()) + i
	return off.At(idx), off.At(idx + 1)
}

// Values returns the flattened child array.
func (a *List[Offset]) Values() Array { return a.values }

var (
	_ Array = (*List[int32])(nil)
	_ Array = (*List[int64])(nil)
)

// ListBuilder is the two-phase owning mutator. It delegates element
// storage to a caller-supplied value builder via Append/child — callers
// append to the value builder directly, then call AppendValue to close
// off the current list (or AppendNull to close an empty, null list).
type ListBuilder[Offset constraints.Signed] struct {
	format string
	dt     arrow.Type

	offsets *memory.Buffer[Offset]
	valid   []bool
	nulls   int
}

// NewListBuilder returns an empty builder. The values child is tracked by
// the caller's own value-builder and handed to NewArray explicitly, since
// a single concrete ListBuilder can't know the value builder's
// compile-time type.
func NewListBuilder[Offset constraints.Signed](alloc memory.Allocator, format string, dt arrow.Type) *ListBuilder[Offset] {
	b := &ListBuilder[Offset]{format: format, dt: dt, offsets: memory.NewBuffer[Offset](alloc)}
	b.offsets.PushBack(0)
	return b
}

func (b *ListBuilder[Offset]) Len() int { return b.offsets.Size() - 1 }

// AppendValue closes the current list slot: childLen is the value
// builder's length after appending this slot's elements.
func (b *ListBuilder[Offset]) AppendValue(childLen int) {
	b.offsets.PushBack(Offset(childLen))
	b.valid = append(b.valid, true)
}

// AppendNull closes an empty, null list slot.
func (b *ListBuilder[Offset]) AppendNull() {
	last := b.offsets.Data()[b.offsets.Size()-1]
	b.offsets.PushBack(last)
	b.valid = append(b.valid, false)
	b.nulls++
}

// NewArray freezes the builder, pairing it with the already-finished
// values child array.
func (b *ListBuilder[Offset]) NewArray(values Array) *List[Offset] {
	n := b.Len()
	var validityBuf []byte
	nullCount := int64(b.nulls)
	if b.nulls > 0 {
		validityBuf = make([]byte, (n+7)/8)
		for i, v := range b.valid {
			if v {
				validityBuf[i/8] |= 1 << (i % 8)
			}
		}
	}

	offsets := b.offsets
	childProxy := values.Proxy()
	p := proxy.Export(proxy.ExportSpec{
		Format:    b.format,
		Length:    int64(n),
		NullCount: nullCount,
		Buffers: []cdata.BufferPtr{
			{Data: validityBuf},
			{Data: offsets.Bytes()},
		},
		Children: []*proxy.Proxy{childProxy},
		Teardown: func() { offsets.Release() },
	})
	return NewList[Offset](p, b.dt, values)
}
