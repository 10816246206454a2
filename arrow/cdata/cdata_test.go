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

package cdata_test

import (
	"testing"

	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/cdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatSimple(t *testing.T) {
	cases := map[string]arrow.Type{
		"n": arrow.NULL,
		"b": arrow.BOOL,
		"c": arrow.INT8,
		"C": arrow.UINT8,
		"i": arrow.INT32,
		"I": arrow.UINT32,
		"l": arrow.INT64,
		"L": arrow.UINT64,
		"e": arrow.FLOAT16,
		"f": arrow.FLOAT32,
		"g": arrow.FLOAT64,
		"u": arrow.STRING,
		"U": arrow.LARGE_STRING,
		"z": arrow.BINARY,
		"Z": arrow.LARGE_BINARY,
		"tdD": arrow.DATE32,
		"tdm": arrow.DATE64,
		"tiM": arrow.INTERVAL_MONTHS,
		"tiD": arrow.INTERVAL_DAY_TIME,
		"tin": arrow.INTERVAL_MONTH_DAY_NANO,
	}
	for f, want := range cases {
		got, err := cdata.ParseFormat(f)
		require.NoError(t, err, f)
		assert.Equal(t, want, got.Type, f)
	}
}

func TestParseFormatFixedWidthBinary(t *testing.T) {
	l, err := cdata.ParseFormat("w:16")
	require.NoError(t, err)
	assert.Equal(t, arrow.FIXED_SIZE_BINARY, l.Type)
	assert.Equal(t, 16, l.ByteWidth)
}

func TestParseFormatTimestampWithZone(t *testing.T) {
	l, err := cdata.ParseFormat("tsu:UTC")
	require.NoError(t, err)
	assert.Equal(t, arrow.TIMESTAMP, l.Type)
	assert.Equal(t, arrow.Microsecond, l.Unit)
	assert.Equal(t, "UTC", l.TimeZone)
}

func TestParseFormatNested(t *testing.T) {
	l, err := cdata.ParseFormat("+l")
	require.NoError(t, err)
	assert.Equal(t, arrow.LIST, l.Type)

	l, err = cdata.ParseFormat("+w:4")
	require.NoError(t, err)
	assert.Equal(t, arrow.FIXED_SIZE_LIST, l.Type)
	assert.Equal(t, 4, l.ByteWidth)

	l, err = cdata.ParseFormat("+m")
	require.NoError(t, err)
	assert.Equal(t, arrow.MAP, l.Type)

	l, err = cdata.ParseFormat("+r")
	require.NoError(t, err)
	assert.Equal(t, arrow.RUN_END_ENCODED, l.Type)
}

func TestParseFormatUnion(t *testing.T) {
	l, err := cdata.ParseFormat("+ud:0,1,2")
	require.NoError(t, err)
	assert.Equal(t, arrow.DENSE_UNION, l.Type)
	assert.Equal(t, arrow.DenseMode, l.UnionMode)
	assert.Equal(t, []arrow.UnionTypeCode{0, 1, 2}, l.TypeCodes)

	l, err = cdata.ParseFormat("+us:5,7")
	require.NoError(t, err)
	assert.Equal(t, arrow.SPARSE_UNION, l.Type)
	assert.Equal(t, arrow.SparseMode, l.UnionMode)
	assert.Equal(t, []arrow.UnionTypeCode{5, 7}, l.TypeCodes)
}

func TestParseFormatUnrecognized(t *testing.T) {
	_, err := cdata.ParseFormat("?")
	assert.Error(t, err)
}

func TestFormatOfRoundTrip(t *testing.T) {
	cases := []string{"n", "b", "c", "C", "i", "I", "l", "L", "e", "f", "g", "u", "U", "z", "Z", "tdD", "tdm", "tiM", "tiD", "tin", "+l", "+L", "+s", "+r", "+m"}
	for _, f := range cases {
		l, err := cdata.ParseFormat(f)
		require.NoError(t, err, f)
		assert.Equal(t, f, cdata.FormatOf(l), f)
	}

	l, err := cdata.ParseFormat("w:8")
	require.NoError(t, err)
	assert.Equal(t, "w:8", cdata.FormatOf(l))
}

func TestMetadataRoundTrip(t *testing.T) {
	md := arrow.NewMetadata([]string{"k1", "k2"}, []string{"v1", "v2"})
	blob := cdata.EncodeMetadata(md)
	require.NotNil(t, blob)

	decoded, err := cdata.DecodeMetadata(blob)
	require.NoError(t, err)
	assert.True(t, md.Equal(decoded))
}

func TestMetadataRoundTripEmpty(t *testing.T) {
	blob := cdata.EncodeMetadata(arrow.Metadata{})
	assert.Nil(t, blob)

	decoded, err := cdata.DecodeMetadata(blob)
	require.NoError(t, err)
	assert.Equal(t, 0, decoded.Len())
}

func TestReleaseSchemaIdempotent(t *testing.T) {
	calls := 0
	s := &cdata.SchemaStruct{
		Format: "i",
		Release: func(*cdata.SchemaStruct) {
			calls++
		},
	}
	cdata.ReleaseSchema(s)
	assert.Equal(t, 1, calls)
	assert.True(t, s.IsReleased())

	// Releasing an already-released struct must tolerate the nil check.
	cdata.ReleaseSchema(s)
	assert.Equal(t, 1, calls)
}

func TestReleaseArrayRecursesIntoChildren(t *testing.T) {
	var order []string
	child := &cdata.ArrayStruct{
		Release: func(*cdata.ArrayStruct) { order = append(order, "child") },
	}
	parent := &cdata.ArrayStruct{
		Children: []*cdata.ArrayStruct{child},
		Release:  func(*cdata.ArrayStruct) { order = append(order, "parent") },
	}

	cdata.ReleaseArray(parent)
	assert.Equal(t, []string{"child", "parent"}, order)
	assert.True(t, parent.IsReleased())
}
