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

import "bytes"

// Equal is §4.4's "equality compares lengths and element-by-element
// nullable values" for any comparable T, grounded on the per-type dispatch
// apache-arrow/go/arrow/array/compare.go uses (baseArrayEqual's length
// check, then an element loop), collapsed into one generic function since
// every Valuer[T] shares the same comparison shape regardless of T. Two
// nulls at the same position compare equal regardless of their underlying
// (zero) value.
func Equal[T comparable](a, b Valuer[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		va, vb := a.At(i), b.At(i)
		if va.Valid() != vb.Valid() {
			return false
		}
		if va.Valid() && va.Value() != vb.Value() {
			return false
		}
	}
	return true
}

// EqualBytes is Equal's []byte specialization: []byte is not comparable
// with ==, so VariableBinary's NullableRef[[]byte] values are compared
// with bytes.Equal instead, the same split apache-arrow/go/arrow/array/
// compare.go makes between its scalar-type equal helpers and
// binaryArrayEqual/stringArrayEqual.
func EqualBytes(a, b Valuer[[]byte]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		va, vb := a.At(i), b.At(i)
		if va.Valid() != vb.Valid() {
			return false
		}
		if va.Valid() && !bytes.Equal(va.Value(), vb.Value()) {
			return false
		}
	}
	return true
}
