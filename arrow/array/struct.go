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
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
)

// Struct is §4.5's Struct layout: [validity] plus one child per field,
// every child sharing the struct's own logical length and offset.
type Struct struct {
	base
	fields     []string
	fieldArray []Array
}

// NewStruct wraps p with the given field names and already-constructed
// field arrays.
func NewStruct(p *proxy.Proxy, fields []string, fieldArrays []Array) *Struct {
	return &Struct{base: newBase(p, arrow.STRUCT), fields: fields, fieldArray: fieldArrays}
}

// NumFields returns the number of child fields.
func (a *Struct) NumFields() int { return len(a.fieldArray) }

// FieldName returns field i's name.
func (a *Struct) FieldName(i int) string { return a.fields[i] }

// Field returns field i's child array.
func (a *Struct) Field(i int) Array { return a.fieldArray[i] }

var _ Array = (*Struct)(nil)

// NewStructArray exports a Struct from a validity mask and already-built
// field arrays — struct layouts have no offsets or value bytes of their
// own, so there is nothing a staged Builder would accumulate beyond the
// validity bits; callers build each field array independently and pair
// them here.
func NewStructArray(valid []bool, fields []string, fieldArrays []Array) *Struct {
	length := len(valid)
	var validityBuf []byte
	nullCount := int64(0)
	for i, v := range valid {
		if !v {
			nullCount++
			if validityBuf == nil {
				validityBuf = make([]byte, (length+7)/8)
				for j := 0; j < i; j++ {
					validityBuf[j/8] |= 1 << (j % 8)
				}
			}
		} else if validityBuf != nil {
			validityBuf[i/8] |= 1 << (i % 8)
		}
	}

	children := make([]*proxy.Proxy, len(fieldArrays))
	for i, f := range fieldArrays {
		children[i] = f.Proxy()
		// The child's own schema carries its field name (§6's struct child
		// shape), not the parent — otherwise the name is lost across a
		// C-ABI export/import roundtrip, since import only ever looks at
		// each child proxy's own Name().
		children[i].SetName(fields[i])
	}

	p := proxy.Export(proxy.ExportSpec{
		Format:    "+s",
		Length:    int64(length),
		NullCount: nullCount,
		Buffers: []cdata.BufferPtr{
			{Data: validityBuf},
		},
		Children: children,
	})
	return NewStruct(p, fields, fieldArrays)
}
