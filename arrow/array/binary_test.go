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

func TestVariableBinaryStringArray(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	b := array.NewVariableBinaryBuilder[int32](mem, "u", arrow.STRING, true)

	b.AppendString("hello")
	b.AppendNull()
	b.AppendString("")
	b.AppendString("world")

	arr := b.NewArray()

	require.Equal(t, 4, arr.Len())
	assert.True(t, arr.IsValid(0))
	assert.False(t, arr.IsValid(1))
	assert.True(t, arr.IsValid(2))
	assert.True(t, arr.IsValid(3))

	assert.Equal(t, "hello", arr.ValueString(0))
	assert.Equal(t, "", arr.ValueString(2))
	assert.Equal(t, "world", arr.ValueString(3))

	assert.Equal(t, 1, arr.NullN())

	at := arr.At(0)
	assert.True(t, at.Valid())
	assert.Equal(t, []byte("hello"), at.Value())

	arr.Release()
	mem.AssertSize(t, 0)
}

func TestVariableBinaryLargeOffsets(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	b := array.NewVariableBinaryBuilder[int64](mem, "Z", arrow.LARGE_BINARY, false)

	b.Append([]byte{0x01, 0x02})
	b.Append([]byte{0x03})

	arr := b.NewArray()

	require.Equal(t, 2, arr.Len())
	assert.Equal(t, []byte{0x01, 0x02}, arr.Value(0))
	assert.Equal(t, []byte{0x03}, arr.Value(1))

	arr.Release()
	mem.AssertSize(t, 0)
}
