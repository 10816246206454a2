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

package array

import (
	"strconv"

	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/cdata"
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
)

// FixedSizeList is §4.5's FixedSizeList(n): [validity] plus one child
// holding N*len(a) values, element i occupying [i*N, (i+1)*N) of the
// child.
type FixedSizeList struct {
	base
	n      int
	values Array
}

// NewFixedSizeList wraps p with list size n and the values child.
func NewFixedSizeList(p *proxy.Proxy, n int, values Array) *FixedSizeList {
	return &FixedSizeList{base: newBase(p, arrow.FIXED_SIZE_LIST), n: n, values: values}
}

func (a *FixedSizeList) ListSize() int { return a.n }
func (a *FixedSizeList) Values() Array { return a.values }

// ValueOffsets returns the [start, end) index range into Values() for
// element i.
func (a *FixedSizeList) ValueOffsets(i int) (start, end int) {
	idx := int(a.p.Offset()) + i
	return idx * a.n, (idx + 1) * a.n
}

var _ Array = (*FixedSizeList)(nil)

// NewFixedSizeListArray exports a FixedSizeList directly from a finished
// values child array, the shape the Builder pattern would otherwise
// delegate to (no validity mutators beyond AppendNull make sense for a
// layout with no offsets buffer, so this module exposes the exporter
// directly rather than a dedicated Builder type).
func NewFixedSizeListArray(valid []bool, n int, values Array) *FixedSizeList {
	length := len(valid)
	var validityBuf []byte
	nullCount := int64(0)
	for i, v := range valid {
		if !v {
			nullCount++
			if validityBuf == nil {
				validityBuf = make([]byte, (length+7)/8)
				for j := 0; j < i; j++ {
					validityBuf[j/8] |= 1 << (j % 8)
				}
			}
		} else if validityBuf != nil {
			validityBuf[i/8] |= 1 << (i % 8)
		}
	}

	childProxy := values.Proxy()
	p := proxy.Export(proxy.ExportSpec{
		Format:    "+w:" + strconv.Itoa(n),
		Length:    int64(length),
		NullCount: nullCount,
		Buffers: []cdata.BufferPtr{
			{Data: validityBuf},
		},
		Children: []*proxy.Proxy{childProxy},
	})
	return NewFixedSizeList(p, n, values)
}
