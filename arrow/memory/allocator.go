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

// Package memory provides the allocator capability and the owning/view
// buffer types (§4.1) every other package in this module builds on.
package memory

const alignment = 64

// Allocator is the pluggable allocation capability the spec assumes as an
// external collaborator (§1). Buffer[T] never allocates directly; it always
// goes through one of these.
type Allocator interface {
	Allocate(size int) []byte
	Reallocate(size int, b []byte) []byte
	Free(b []byte)
}

// DefaultAllocator is usable anywhere an Allocator is required and is safe
// for concurrent use.
var DefaultAllocator Allocator = NewGoAllocator()
