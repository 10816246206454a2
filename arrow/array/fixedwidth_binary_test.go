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

	"github.com/Alex-PLACET/sparrow/arrow/array"
	"github.com/Alex-PLACET/sparrow/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWidthBinaryRoundTrip(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	b := array.NewFixedWidthBinaryBuilder(mem, 4)

	b.Append([]byte{1, 2, 3, 4})
	b.AppendNull()
	b.Append([]byte{5, 6, 7, 8})

	arr := b.NewArray()

	require.Equal(t, 3, arr.Len())
	assert.Equal(t, 4, arr.ByteWidth())
	assert.Equal(t, []byte{1, 2, 3, 4}, arr.Value(0))
	assert.False(t, arr.IsValid(1))
	assert.Equal(t, []byte{5, 6, 7, 8}, arr.Value(2))
	assert.Equal(t, 1, arr.NullN())

	arr.Release()
	mem.AssertSize(t, 0)
}

func TestFixedWidthBinaryWrongWidthPanics(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	b := array.NewFixedWidthBinaryBuilder(mem, 4)
	assert.Panics(t, func() { b.Append([]byte{1, 2}) })
}
