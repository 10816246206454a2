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
	"github.com/JohnCGriffin/overflow"
	"golang.org/x/exp/constraints"

	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/cdata"
	"github.com/Alex-PLACET/sparrow/arrow/memory"
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
)

// VariableBinary[Offset] realizes both String/LargeString and
// Binary/LargeBinary (§4.5): [validity, offsets(Offset), bytes]. Offset is
// int32 for the small variants, int64 for the Large ones — one generic
// type standing in for what the teacher's array/binary.go and
// array/string.go keep as separate hand-written types.
type VariableBinary[Offset constraints.Signed] struct {
	base
	utf8 bool
}

// NewVariableBinary wraps p. utf8 records whether the bytes came from a
// `u`/`U` format (string) vs `z`/`Z` (binary); it is only stored, and
// neither Value nor ValueString consults it.
func NewVariableBinary[Offset constraints.Signed](p *proxy.Proxy, dt arrow.Type, utf8 bool) *VariableBinary[Offset] {
	return &VariableBinary[Offset]{base: newBase(p, dt), utf8: utf8}
}

func (a *VariableBinary[Offset]) offsets() memory.BufferView[Offset] {
	return proxy.Buffer[Offset](a.p, 1)
}

// ValueOffsets returns the [start, end) byte range of element i, honoring
// proxy.Offset() as the logical origin per §3.
func (a *VariableBinary[Offset]) ValueOffsets(i int) (start, end Offset) {
	off := a.offsets()
	idx := int(a.p.Offset()) + i
	return off.At(idx), off.At(idx + 1)
}

// Value returns element i's raw bytes.
func (a *VariableBinary[Offset]) Value(i int) []byte {
	start, end := a.ValueOffsets(i)
	return a.p.RawBuffer(2)[start:end]
}

// ValueString is Value decoded as a string, for utf8-typed instantiations.
func (a *VariableBinary[Offset]) ValueString(i int) string {
	return string(a.Value(i))
}

// At is §3's optional-value accessor.
func (a *VariableBinary[Offset]) At(i int) NullableRef[[]byte] {
	return NullableValue(a.Value(i), a.IsValid(i))
}

var (
	_ Array = (*VariableBinary[int32])(nil)
	_ Array = (*VariableBinary[int64])(nil)
)

// VariableBinaryBuilder is the two-phase owning mutator.
type VariableBinaryBuilder[Offset constraints.Signed] struct {
	format string
	dt     arrow.Type
	utf8   bool

	offsets *memory.Buffer[Offset]
	data    *memory.Buffer[byte]
	valid   []bool
	nulls   int
}

// NewVariableBinaryBuilder returns an empty builder. format/dt must agree
// with Offset's width (e.g. format "u", dt arrow.STRING for Offset=int32).
func NewVariableBinaryBuilder[Offset constraints.Signed](alloc memory.Allocator, format string, dt arrow.Type, utf8 bool) *VariableBinaryBuilder[Offset] {
	b := &VariableBinaryBuilder[Offset]{format: format, dt: dt, utf8: utf8,
		offsets: memory.NewBuffer[Offset](alloc), data: memory.NewBuffer[byte](alloc)}
	b.offsets.PushBack(0)
	return b
}

func (b *VariableBinaryBuilder[Offset]) Len() int { return b.offsets.Size() - 1 }

// Append adds a non-null value.
func (b *VariableBinaryBuilder[Offset]) Append(v []byte) {
	for _, byt := range v {
		b.data.PushBack(byt)
	}
	last := b.offsets.Data()[b.offsets.Size()-1]
	next, ok := overflow.Add(int(last), len(v))
	if !ok {
		panic("array: variable binary offset overflow")
	}
	b.offsets.PushBack(Offset(next))
	b.valid = append(b.valid, true)
}

// AppendString is Append for the utf8-typed instantiations.
func (b *VariableBinaryBuilder[Offset]) AppendString(s string) { b.Append([]byte(s)) }

// AppendNull adds a null, zero-length slot.
func (b *VariableBinaryBuilder[Offset]) AppendNull() {
	last := b.offsets.Data()[b.offsets.Size()-1]
	b.offsets.PushBack(last)
	b.valid = append(b.valid, false)
	b.nulls++
}

// NewArray freezes the builder.
func (b *VariableBinaryBuilder[Offset]) NewArray() *VariableBinary[Offset] {
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

	offsets, data := b.offsets, b.data
	p := proxy.Export(proxy.ExportSpec{
		Format:    b.format,
		Length:    int64(n),
		NullCount: nullCount,
		Buffers: []cdata.BufferPtr{
			{Data: validityBuf},
			{Data: offsets.Bytes()},
			{Data: data.Bytes()},
		},
		Teardown: func() {
			offsets.Release()
			data.Release()
		},
	})
	return NewVariableBinary[Offset](p, b.dt, b.utf8)
}
