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

func TestListOfInt32(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)

	values := array.NewPrimitiveBuilder[int32](mem, "i", arrow.INT32)
	lb := array.NewListBuilder[int32](mem, "+l", arrow.LIST)

	// [1, 2, 3]
	values.Append(1)
	values.Append(2)
	values.Append(3)
	lb.AppendValue(values.Len())

	// null list
	lb.AppendNull()

	// [4]
	values.Append(4)
	lb.AppendValue(values.Len())

	valuesArr := values.NewArray()
	arr := lb.NewArray(valuesArr)

	require.Equal(t, 3, arr.Len())
	assert.True(t, arr.IsValid(0))
	assert.False(t, arr.IsValid(1))
	assert.True(t, arr.IsValid(2))
	assert.Equal(t, 1, arr.NullN())

	start, end := arr.ValueOffsets(0)
	assert.EqualValues(t, 0, start)
	assert.EqualValues(t, 3, end)

	start, end = arr.ValueOffsets(1)
	assert.Equal(t, start, end)

	start, end = arr.ValueOffsets(2)
	assert.EqualValues(t, 3, start)
	assert.EqualValues(t, 4, end)

	flattened := arr.Values().(*array.Primitive[int32])
	assert.EqualValues(t, 1, flattened.Value(0))
	assert.EqualValues(t, 4, flattened.Value(3))

	// arr's proxy embeds valuesArr's own proxy as a child, so releasing
	// arr cascades into valuesArr's buffers too.
	arr.Release()
	mem.AssertSize(t, 0)
}
