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

func TestFixedSizeListArray(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)

	values := array.NewPrimitiveBuilder[int32](mem, "i", arrow.INT32)
	for _, v := range []int32{1, 2, 3, 4, 5, 6} {
		values.Append(v)
	}
	valuesArr := values.NewArray()

	arr := array.NewFixedSizeListArray([]bool{true, false, true}, 2, valuesArr)

	require.Equal(t, 3, arr.Len())
	assert.Equal(t, 2, arr.ListSize())
	assert.True(t, arr.IsValid(0))
	assert.False(t, arr.IsValid(1))
	assert.Equal(t, 1, arr.NullN())

	start, end := arr.ValueOffsets(2)
	assert.Equal(t, 4, start)
	assert.Equal(t, 6, end)

	arr.Release()
	mem.AssertSize(t, 0)
}
