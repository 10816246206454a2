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

package memory

import "unsafe"

// BufferView[T] is the non-owning window of §4.1: (ptr, size) over memory
// someone else owns. It is never resized; the producer must outlive every
// view taken over it.
type BufferView[T any] struct {
	data []T
}

// NewBufferView wraps an already-typed slice. The view does not copy or
// take ownership of data.
func NewBufferView[T any](data []T) BufferView[T] { return BufferView[T]{data: data} }

// NewBufferViewBytes reinterprets a raw byte slice as a view of T, the way
// a Proxy hands out its raw C ABI buffers through a typed interpretation.
func NewBufferViewBytes[T any](b []byte) BufferView[T] {
	sz := elemSize[T]()
	if sz == 0 || len(b) == 0 {
		return BufferView[T]{}
	}
	n := len(b) / sz
	return BufferView[T]{data: unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)}
}

func (v BufferView[T]) Data() []T    { return v.data }
func (v BufferView[T]) Size() int    { return len(v.data) }
func (v BufferView[T]) Empty() bool  { return len(v.data) == 0 }
func (v BufferView[T]) At(i int) T   { return v.data[i] }
