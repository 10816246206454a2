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

func TestBooleanWithNulls(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	b := array.NewBooleanBuilder(mem)

	b.Append(true)
	b.AppendNull()
	b.Append(false)

	arr := b.NewArray()

	require.Equal(t, 3, arr.Len())
	assert.True(t, arr.IsValid(0))
	assert.False(t, arr.IsValid(1))
	assert.True(t, arr.IsValid(2))

	assert.True(t, arr.Value(0))
	assert.False(t, arr.Value(2))

	assert.Equal(t, 1, arr.NullN())

	arr.Release()
	mem.AssertSize(t, 0)
}

func TestBooleanAllValid(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	b := array.NewBooleanBuilder(mem)
	b.Append(true)
	b.Append(true)
	b.Append(false)

	arr := b.NewArray()

	assert.Equal(t, 0, arr.NullN())
	at := arr.At(2)
	assert.True(t, at.Valid())
	assert.False(t, at.Value())

	arr.Release()
	mem.AssertSize(t, 0)
}
