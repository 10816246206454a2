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

// Dictionary is §4.5's Dictionary layout: an indices array (any primitive
// integer Array) plus a dictionary child array, `value(i) =
// dict.value(indices.value(i))`. This module's Dictionary is a pure view
// over supplied indices + values, not a deduplicating builder — see
// DESIGN.md's note on why that keeps a hash-join-style memo table (and the
// dependency it would pull in) out of scope.
type Dictionary struct {
	base
	indices Array
	dict    Array
	ordered bool
}

// NewDictionary wraps an indices array and a dictionary (values) array.
func NewDictionary(p *proxy.Proxy, indices, dict Array, ordered bool) *Dictionary {
	return &Dictionary{base: newBase(p, arrow.DICTIONARY), indices: indices, dict: dict, ordered: ordered}
}

// Indices returns the indices array.
func (a *Dictionary) Indices() Array { return a.indices }

// Dict returns the dictionary (values) array.
func (a *Dictionary) Dict() Array { return a.dict }

// Ordered reports whether the dictionary is declared ordered (flag bit 0,
// ARROW_FLAG_DICTIONARY_ORDERED).
func (a *Dictionary) Ordered() bool { return a.ordered }

var _ Array = (*Dictionary)(nil)
