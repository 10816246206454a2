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

package array_test

import (
	"testing"

	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/array"
	"github.com/Alex-PLACET/sparrow/arrow/cdata"
	"github.com/Alex-PLACET/sparrow/arrow/memory"
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseUnionNeverNull(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)

	ints := array.NewPrimitiveBuilder[int32](mem, "i", arrow.INT32)
	ints.Append(7)
	ints.Append(0)
	intsArr := ints.NewArray()

	strs := array.NewVariableBinaryBuilder[int32](mem, "u", arrow.STRING, true)
	strs.AppendNull()
	strs.AppendString("hi")
	strsArr := strs.NewArray()

	typeIDs := []byte{0, 1}
	p := proxy.Export(proxy.ExportSpec{
		Format: "+us:0,1",
		Length: 2,
		Buffers: []cdata.BufferPtr{
			{Data: typeIDs},
		},
	})
	arr := array.NewSparseUnion(p, []arrow.UnionTypeCode{0, 1}, []array.Array{intsArr, strsArr})

	require.Equal(t, 2, arr.Len())
	assert.Equal(t, 0, arr.NullN())
	assert.True(t, arr.IsValid(0))
	assert.True(t, arr.IsValid(1))

	assert.EqualValues(t, 0, arr.TypeCode(0))
	assert.EqualValues(t, 1, arr.TypeCode(1))
	assert.Equal(t, 0, arr.ChildID(0))
	assert.Equal(t, 1, arr.ChildID(1))

	child0 := arr.Child(0).(*array.Primitive[int32])
	assert.EqualValues(t, 7, child0.Value(0))

	// a union has no owning relationship to its children (§4.5: nullability
	// and storage live in the selected child, not the union itself), so the
	// caller releases the union and every child independently.
	arr.Release()
	intsArr.Release()
	strsArr.Release()
	mem.AssertSize(t, 0)
}

func TestDenseUnionValueOffset(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)

	ints := array.NewPrimitiveBuilder[int32](mem, "i", arrow.INT32)
	ints.Append(42)
	intsArr := ints.NewArray()

	strs := array.NewVariableBinaryBuilder[int32](mem, "u", arrow.STRING, true)
	strs.AppendString("x")
	strs.AppendString("y")
	strsArr := strs.NewArray()

	typeIDs := []byte{1, 0, 1}
	p := proxy.Export(proxy.ExportSpec{
		Format: "+ud:0,1",
		Length: 3,
		Buffers: []cdata.BufferPtr{
			{Data: typeIDs},
		},
	})
	arr := array.NewDenseUnion(p, []arrow.UnionTypeCode{0, 1}, []array.Array{intsArr, strsArr}, []int32{0, 0, 1})

	assert.EqualValues(t, 0, arr.ValueOffset(0))
	assert.EqualValues(t, 0, arr.ValueOffset(1))
	assert.EqualValues(t, 1, arr.ValueOffset(2))

	strChild := arr.Child(1).(*array.VariableBinary[int32])
	assert.Equal(t, "x", strChild.ValueString(int(arr.ValueOffset(0))))
	assert.Equal(t, "y", strChild.ValueString(int(arr.ValueOffset(2))))

	arr.Release()
	intsArr.Release()
	strsArr.Release()
	mem.AssertSize(t, 0)
}
