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
	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
)

// Null is §4.5's Null layout: no buffers at all, every position is null
// by definition.
type Null struct {
	base
}

// NewNull wraps p as a Null array.
func NewNull(p *proxy.Proxy) *Null { return &Null{base: newBase(p, arrow.NULL)} }

func (a *Null) IsValid(int) bool { return false }
func (a *Null) IsNull(int) bool  { return true }
func (a *Null) NullN() int       { return a.Len() }

var _ Array = (*Null)(nil)

// NewNullArray exports a length-n Null array directly; there is no
// Builder for this layout since it carries no buffers or children to
// accumulate.
func NewNullArray(n int) *Null {
	p := proxy.Export(proxy.ExportSpec{
		Format:    "n",
		Length:    int64(n),
		NullCount: int64(n),
	})
	return NewNull(p)
}
