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
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
)

// union holds what dense and sparse unions share: [type_ids], children =
// one per variant, and the type-code table mapping a stored type id to a
// child index (§4.5).
type union struct {
	base
	typeCodes []arrow.UnionTypeCode
	children  []Array
	codeToID  map[arrow.UnionTypeCode]int
}

func newUnion(p *proxy.Proxy, dt arrow.Type, typeCodes []arrow.UnionTypeCode, children []Array) union {
	codeToID := make(map[arrow.UnionTypeCode]int, len(typeCodes))
	for i, c := range typeCodes {
		codeToID[c] = i
	}
	return union{base: newBase(p, dt), typeCodes: typeCodes, children: children, codeToID: codeToID}
}

// TypeCode returns the stored type id at logical position i.
func (a *union) TypeCode(i int) arrow.UnionTypeCode {
	raw := a.p.RawBuffer(0)
	return arrow.UnionTypeCode(raw[int(a.p.Offset())+i])
}

// ChildID returns which child the value at i lives in.
func (a *union) ChildID(i int) int { return a.codeToID[a.TypeCode(i)] }

// Child returns the Array for variant index id (not type code).
func (a *union) Child(id int) Array { return a.children[id] }

// NumFields returns the number of variants.
func (a *union) NumFields() int { return len(a.children) }

// A union has no validity buffer of its own: §4.5 "Union: [type_ids,
// (dense only: offsets)]" — nullability lives in the selected child. base's
// promoted IsValid/NullN would otherwise misread buffer 0 (type_ids) as a
// validity bitmap, so all three are overridden here.
func (a *union) IsValid(i int) bool { return true }
func (a *union) IsNull(i int) bool  { return false }
func (a *union) NullN() int         { return 0 }

// SparseUnion is union's sparse physical layout: every child has a slot
// for every logical position; the value at i lives in child ChildID(i) at
// the same physical position i.
type SparseUnion struct{ union }

// NewSparseUnion wraps p as a sparse union.
func NewSparseUnion(p *proxy.Proxy, typeCodes []arrow.UnionTypeCode, children []Array) *SparseUnion {
	return &SparseUnion{union: newUnion(p, arrow.SPARSE_UNION, typeCodes, children)}
}

var _ Array = (*SparseUnion)(nil)

// DenseUnion is union's dense physical layout: children are compact —
// the value at i lives in child ChildID(i) at ValueOffset(i), not at i
// itself.
type DenseUnion struct {
	union
	offsets []int32
}

// NewDenseUnion wraps p as a dense union. offsets has one entry per
// logical position, indexing into the selected child.
func NewDenseUnion(p *proxy.Proxy, typeCodes []arrow.UnionTypeCode, children []Array, offsets []int32) *DenseUnion {
	return &DenseUnion{union: newUnion(p, arrow.DENSE_UNION, typeCodes, children), offsets: offsets}
}

// ValueOffset returns the physical index of element i within its
// selected child.
func (a *DenseUnion) ValueOffset(i int) int32 { return a.offsets[int(a.p.Offset())+i] }

var _ Array = (*DenseUnion)(nil)
