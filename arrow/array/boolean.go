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
	"github.com/Alex-PLACET/sparrow/arrow/bitset"
	"github.com/Alex-PLACET/sparrow/arrow/cdata"
	"github.com/Alex-PLACET/sparrow/arrow/memory"
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
)

// Boolean is bool's Primitive specialization: values are bit-packed
// (buffer 1, like every other layout's value buffer, just interpreted a
// bit at a time via bitset.DynamicBitsetView rather than byte at a time).
type Boolean struct {
	base
}

// NewBoolean wraps p as a Boolean array.
func NewBoolean(p *proxy.Proxy) *Boolean {
	return &Boolean{base: newBase(p, arrow.BOOL)}
}

func (a *Boolean) valueView() bitset.DynamicBitsetView[uint8] {
	raw := a.p.RawBuffer(1)
	if raw == nil {
		return bitset.NewDynamicBitsetViewAllValid[uint8](a.Len())
	}
	return bitset.NewDynamicBitsetView[uint8](raw, int(a.p.Offset())+a.Len(), -1)
}

// Value returns the bit at i, ignoring validity.
func (a *Boolean) Value(i int) bool {
	return a.valueView().Test(int(a.p.Offset()) + i)
}

// At is §3's optional-value accessor.
func (a *Boolean) At(i int) NullableRef[bool] {
	return NullableValue(a.Value(i), a.IsValid(i))
}

var _ Array = (*Boolean)(nil)

// BooleanBuilder is the two-phase owning mutator for Boolean.
type BooleanBuilder struct {
	values *bitset.DynamicBitset[uint8]
	valid  *bitset.DynamicBitset[uint8]
}

// NewBooleanBuilder returns an empty builder using alloc for both the
// value and validity bitsets.
func NewBooleanBuilder(alloc memory.Allocator) *BooleanBuilder {
	return &BooleanBuilder{
		values: bitset.NewDynamicBitset[uint8](alloc),
		valid:  bitset.NewDynamicBitset[uint8](alloc),
	}
}

func (b *BooleanBuilder) Len() int { return b.values.Size() }

// Append adds a non-null bool.
func (b *BooleanBuilder) Append(v bool) {
	b.values.PushBack(v)
	b.valid.PushBack(true)
}

// AppendNull adds a null slot.
func (b *BooleanBuilder) AppendNull() {
	b.values.PushBack(false)
	b.valid.PushBack(false)
}

// NewArray freezes the builder, omitting the validity buffer when no
// nulls were ever appended.
func (b *BooleanBuilder) NewArray() *Boolean {
	n := b.Len()
	var validityBuf []byte
	nullCount := int64(b.valid.NullCount())
	if nullCount > 0 {
		validityBuf = append([]byte(nil), rawBitsetBytes(b.valid)...)
	} else {
		nullCount = 0
	}

	values, valid := b.values, b.valid
	p := proxy.Export(proxy.ExportSpec{
		Format:    "b",
		Length:    int64(n),
		NullCount: nullCount,
		Buffers: []cdata.BufferPtr{
			{Data: validityBuf},
			{Data: append([]byte(nil), rawBitsetBytes(values)...)},
		},
		Teardown: func() {
			values.Release()
			valid.Release()
		},
	})
	return NewBoolean(p)
}

func rawBitsetBytes(b *bitset.DynamicBitset[uint8]) []byte {
	data := b.Data()
	if len(data) == 0 {
		return nil
	}
	return data
}
