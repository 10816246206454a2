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
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryIndexesIntoValues(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)

	dict := array.NewVariableBinaryBuilder[int32](mem, "u", arrow.STRING, true)
	dict.AppendString("red")
	dict.AppendString("green")
	dict.AppendString("blue")
	dictArr := dict.NewArray()

	indices := array.NewPrimitiveBuilder[int8](mem, "c", arrow.INT8)
	indices.Append(2)
	indices.Append(0)
	indices.Append(2)
	indicesArr := indices.NewArray()

	p := proxy.Export(proxy.ExportSpec{
		Format: "c",
		Length: int64(indicesArr.Len()),
	})
	// Dictionary is a pure view (see dictionary.go): it does not own
	// indicesArr/dictArr, so the caller releases all three separately.
	arr := array.NewDictionary(p, indicesArr, dictArr, false)

	require.Equal(t, 3, arr.Len())
	assert.False(t, arr.Ordered())

	idx := arr.Indices().(*array.Primitive[int8])
	values := arr.Dict().(*array.VariableBinary[int32])

	assert.Equal(t, "blue", values.ValueString(int(idx.Value(0))))
	assert.Equal(t, "red", values.ValueString(int(idx.Value(1))))

	arr.Release()
	indicesArr.Release()
	dictArr.Release()
	mem.AssertSize(t, 0)
}
