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
	"github.com/Alex-PLACET/sparrow/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveInt32WithNulls(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	b := array.NewPrimitiveBuilder[int32](mem, "i", arrow.INT32)

	b.Append(1)
	b.AppendNull()
	b.Append(3)

	arr := b.NewArray()

	require.Equal(t, 3, arr.Len())
	assert.Equal(t, arrow.INT32, arr.DataType())

	assert.True(t, arr.IsValid(0))
	assert.False(t, arr.IsValid(1))
	assert.True(t, arr.IsValid(2))

	assert.EqualValues(t, 1, arr.Value(0))
	assert.EqualValues(t, 3, arr.Value(2))

	v0 := arr.At(0)
	assert.True(t, v0.Valid())
	assert.EqualValues(t, 1, v0.Value())

	v1 := arr.At(1)
	assert.False(t, v1.Valid())

	assert.Equal(t, 1, arr.NullN())

	arr.Release()
	mem.AssertSize(t, 0)
}

// TestPrimitiveIteration is §8 scenario 2's iteration check: building
// Primitive<int32> from [10,20,30,40,50] with null mask [T,F,T,T,F] must
// yield [Some(10), None, Some(30), Some(40), None] walking begin()..end().
func TestPrimitiveIteration(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	b := array.NewPrimitiveBuilder[int32](mem, "i", arrow.INT32)

	valid := []bool{true, false, true, true, false}
	values := []int32{10, 20, 30, 40, 50}
	for i, v := range values {
		if valid[i] {
			b.Append(v)
		} else {
			b.AppendNull()
		}
	}
	arr := b.NewArray()

	require.Equal(t, 5, arr.Len())
	assert.Equal(t, 2, arr.NullN())
	assert.True(t, arr.At(0).Valid())
	assert.EqualValues(t, 10, arr.At(0).Value())
	assert.False(t, arr.At(1).Valid())

	var got []array.NullableRef[int32]
	for it := array.Begin[int32](arr); it.HasNext(); it = it.Next() {
		got = append(got, it.Value())
	}
	require.Len(t, got, 5)
	for i, v := range got {
		assert.Equal(t, valid[i], v.Valid())
		if valid[i] {
			assert.EqualValues(t, values[i], v.Value())
		}
	}

	assert.Equal(t, valid, arr.Bitmap())
	assert.Equal(t, values, arr.Values())

	other := array.NewPrimitiveBuilder[int32](mem, "i", arrow.INT32)
	for i, v := range values {
		if valid[i] {
			other.Append(v)
		} else {
			other.AppendNull()
		}
	}
	otherArr := other.NewArray()
	assert.True(t, array.Equal[int32](arr, otherArr))

	arr.Release()
	otherArr.Release()
	mem.AssertSize(t, 0)
}

func TestPrimitiveAllValidOmitsValidityBuffer(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	b := array.NewPrimitiveBuilder[int64](mem, "l", arrow.INT64)
	b.Append(10)
	b.Append(20)

	arr := b.NewArray()

	assert.Equal(t, 0, arr.NullN())
	assert.True(t, arr.IsValid(0))
	assert.True(t, arr.IsValid(1))

	arr.Release()
	mem.AssertSize(t, 0)
}

func TestPrimitiveBuilderInsert(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	b := array.NewPrimitiveBuilder[int32](mem, "i", arrow.INT32)
	b.Append(1)
	b.Append(2)
	b.Append(4)

	b.Insert(2, 3, true)
	arr := b.NewArray()

	require.Equal(t, 4, arr.Len())
	assert.EqualValues(t, 1, arr.Value(0))
	assert.EqualValues(t, 2, arr.Value(1))
	assert.EqualValues(t, 3, arr.Value(2))
	assert.EqualValues(t, 4, arr.Value(3))

	arr.Release()
	mem.AssertSize(t, 0)
}
