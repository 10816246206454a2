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

package proxy_test

import (
	"testing"

	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/cdata"
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyBasicAccessors(t *testing.T) {
	freed := false
	p := proxy.Export(proxy.ExportSpec{
		Format:    "i",
		Name:      "col",
		Length:    3,
		NullCount: 0,
		Buffers: []cdata.BufferPtr{
			{},
			{Data: []byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0}},
		},
		Teardown: func() { freed = true },
	})

	assert.Equal(t, "i", p.Format())
	assert.Equal(t, "col", p.Name())
	assert.EqualValues(t, 3, p.Length())
	assert.EqualValues(t, 0, p.NullCount())

	dt, err := p.DataType()
	require.NoError(t, err)
	assert.Equal(t, arrow.INT32, dt.Type)

	view := proxy.Buffer[int32](p, 1)
	require.Equal(t, 3, view.Size())
	assert.EqualValues(t, 1, view.At(0))
	assert.EqualValues(t, 3, view.At(2))

	p.Release()
	assert.True(t, freed)
}

func TestProxyChildrenLazy(t *testing.T) {
	child := proxy.Export(proxy.ExportSpec{Format: "i", Length: 1})
	parent := proxy.Export(proxy.ExportSpec{
		Format:   "+l",
		Length:   1,
		Children: []*proxy.Proxy{child},
	})

	kids := parent.Children()
	require.Len(t, kids, 1)
	assert.Equal(t, "i", kids[0].Format())

	// Calling Children() again must return the same built slice.
	assert.Same(t, kids[0], parent.Children()[0])

	parent.Release()
}

func TestProxyMetadataRoundTrip(t *testing.T) {
	md := arrow.NewMetadata([]string{"a"}, []string{"1"})
	p := proxy.Export(proxy.ExportSpec{Format: "i", Length: 0, Metadata: md})

	got, err := p.Metadata()
	require.NoError(t, err)
	assert.True(t, md.Equal(got))

	p.Release()
}

func TestProxyValidateDetectsChildCountMismatch(t *testing.T) {
	schema := &cdata.SchemaStruct{Format: "+l", Children: []*cdata.SchemaStruct{{Format: "i"}}}
	arr := &cdata.ArrayStruct{Length: 0} // no children, unlike schema
	p := proxy.New(schema, arr)

	err := p.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, arrow.ErrSchemaMismatch)
}

func TestProxyValidateDetectsDictionaryPresenceMismatch(t *testing.T) {
	schema := &cdata.SchemaStruct{Format: "c", Dictionary: &cdata.SchemaStruct{Format: "u"}}
	arr := &cdata.ArrayStruct{Length: 0} // no dictionary, unlike schema
	p := proxy.New(schema, arr)

	err := p.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, arrow.ErrSchemaMismatch)
}

func TestProxyValidateAcceptsConsistentPair(t *testing.T) {
	child := proxy.Export(proxy.ExportSpec{Format: "i", Length: 1})
	parent := proxy.Export(proxy.ExportSpec{
		Format:   "+l",
		Length:   1,
		Children: []*proxy.Proxy{child},
	})

	assert.NoError(t, parent.Validate())
	parent.Release()
}

// TestCompareSchemasBothPresentCompares is the corrected interpretation of
// §9's named Open Question: when both sides carry a name, they must
// match, not merely "be present".
func TestCompareSchemasBothPresentCompares(t *testing.T) {
	a := &cdata.SchemaStruct{Format: "i", Name: "x"}
	b := &cdata.SchemaStruct{Format: "i", Name: "y"}

	err := proxy.CompareSchemas("root", a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, arrow.ErrSchemaMismatch)
}

// TestCompareSchemasPresenceDiffersIsMismatch covers the other half of the
// fix: a name present on only one side is itself a mismatch, rather than
// being skipped (the source's inverted behavior).
func TestCompareSchemasPresenceDiffersIsMismatch(t *testing.T) {
	a := &cdata.SchemaStruct{Format: "i", Name: "x"}
	b := &cdata.SchemaStruct{Format: "i"}

	err := proxy.CompareSchemas("root", a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, arrow.ErrSchemaMismatch)
}

func TestCompareSchemasIdenticalTreesMatch(t *testing.T) {
	a := &cdata.SchemaStruct{
		Format:     "+s",
		Name:       "row",
		Children:   []*cdata.SchemaStruct{{Format: "i", Name: "id"}},
		Dictionary: nil,
	}
	b := &cdata.SchemaStruct{
		Format:     "+s",
		Name:       "row",
		Children:   []*cdata.SchemaStruct{{Format: "i", Name: "id"}},
		Dictionary: nil,
	}

	assert.NoError(t, proxy.CompareSchemas("root", a, b))
}
