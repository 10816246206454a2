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
	"strconv"

	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/cdata"
	"github.com/Alex-PLACET/sparrow/arrow/memory"
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
)

// FixedWidthBinary is §4.5's FixedWidthBinary(n): [validity, bytes], with
// `value(i) = bytes[i*n : (i+1)*n]`.
type FixedWidthBinary struct {
	base
	byteWidth int
}

// NewFixedWidthBinary wraps p with the given per-element byte width.
func NewFixedWidthBinary(p *proxy.Proxy, byteWidth int) *FixedWidthBinary {
	return &FixedWidthBinary{base: newBase(p, arrow.FIXED_SIZE_BINARY), byteWidth: byteWidth}
}

func (a *FixedWidthBinary) ByteWidth() int { return a.byteWidth }

// Value returns element i's raw bytes.
func (a *FixedWidthBinary) Value(i int) []byte {
	idx := int(a.p.Offset()) + i
	start := idx * a.byteWidth
	return a.p.RawBuffer(1)[start : start+a.byteWidth]
}

// At is §3's optional-value accessor.
func (a *FixedWidthBinary) At(i int) NullableRef[[]byte] {
	return NullableValue(a.Value(i), a.IsValid(i))
}

var _ Array = (*FixedWidthBinary)(nil)

// FixedWidthBinaryBuilder is the two-phase owning mutator.
type FixedWidthBinaryBuilder struct {
	byteWidth int
	data      *memory.Buffer[byte]
	valid     []bool
	nulls     int
}

// NewFixedWidthBinaryBuilder returns an empty builder for byteWidth-byte
// elements.
func NewFixedWidthBinaryBuilder(alloc memory.Allocator, byteWidth int) *FixedWidthBinaryBuilder {
	return &FixedWidthBinaryBuilder{byteWidth: byteWidth, data: memory.NewBuffer[byte](alloc)}
}

func (b *FixedWidthBinaryBuilder) Len() int { return len(b.valid) }

// Append adds a non-null value; len(v) must equal the builder's byte
// width.
func (b *FixedWidthBinaryBuilder) Append(v []byte) {
	if len(v) != b.byteWidth {
		panic("array: fixed-width-binary value has wrong byte width")
	}
	for _, byt := range v {
		b.data.PushBack(byt)
	}
	b.valid = append(b.valid, true)
}

// AppendNull adds a zero-filled null slot.
func (b *FixedWidthBinaryBuilder) AppendNull() {
	b.data.Resize(b.data.Size() + b.byteWidth)
	b.valid = append(b.valid, false)
	b.nulls++
}

// NewArray freezes the builder.
func (b *FixedWidthBinaryBuilder) NewArray() *FixedWidthBinary {
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

	data := b.data
	p := proxy.Export(proxy.ExportSpec{
		Format:    "w:" + strconv.Itoa(b.byteWidth),
		Length:    int64(n),
		NullCount: nullCount,
		Buffers: []cdata.BufferPtr{
			{Data: validityBuf},
			{Data: data.Bytes()},
		},
		Teardown: func() { data.Release() },
	})
	return NewFixedWidthBinary(p, b.byteWidth)
}
