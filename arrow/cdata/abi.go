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

// Package cdata realizes the two Arrow C Data Interface structs (§6) and
// the release-callback discipline that governs them. apache-arrow's
// go/arrow/cdata package gets these field layouts from the cgo-generated
// C.struct_ArrowSchema / C.struct_ArrowArray declared against
// <arrow/c/abi.h>; this module has no cgo dependency (see DESIGN.md), so
// SchemaStruct and ArrayStruct are plain Go structs carrying the same
// fields by name and semantics (Format/Name/Metadata/Flags/Children/
// Dictionary/Release) rather than by matching C memory layout — there is
// no unsafe.Pointer struct walking in this package, since both producer
// and consumer are always Go.
package cdata

// Flag bits for SchemaStruct.Flags, matching ARROW_FLAG_* in abi.h.
const (
	FlagDictionaryOrdered int64 = 1 << 0
	FlagNullable          int64 = 1 << 1
	FlagMapKeysSorted     int64 = 1 << 2
)

// ReleaseSchemaFunc is the release callback a schema producer installs.
// abi.h models this as a C function pointer; since both sides of every
// handoff in this module are Go, it is realized directly as a Go closure
// rather than as a cgo-exported trampoline.
type ReleaseSchemaFunc func(*SchemaStruct)

// ReleaseArrayFunc is the ArrayStruct equivalent of ReleaseSchemaFunc.
type ReleaseArrayFunc func(*ArrayStruct)

// SchemaStruct is the Go realization of struct ArrowSchema.
type SchemaStruct struct {
	Format  string
	Name    string
	// Metadata is the encoded key/value blob described in metadata.go,
	// or nil if the schema carries no metadata.
	Metadata []byte
	Flags    int64

	Children   []*SchemaStruct
	Dictionary *SchemaStruct

	Release     ReleaseSchemaFunc
	PrivateData any
}

// ArrayStruct is the Go realization of struct ArrowArray.
type ArrayStruct struct {
	Length    int64
	NullCount int64
	Offset    int64

	// Buffers holds one entry per buffer this layout's format string
	// requires, in the fixed per-layout order the format grammar
	// specifies (§4.3.1). A nil entry means "no buffer" (e.g. a
	// null-count-0 array may omit its validity buffer).
	Buffers []BufferPtr

	Children   []*ArrayStruct
	Dictionary *ArrayStruct

	Release     ReleaseArrayFunc
	PrivateData any
}

// BufferPtr is a raw, type-erased view over one of an array's buffers. In
// a real cgo ABI crossing this would be a `const void*`; since no C
// toolchain is involved the byte span is kept directly rather than as a
// bare pointer+length pair, while remaining layout-equivalent (the first
// word is always the data address were this reinterpreted as a C buffer).
type BufferPtr struct {
	Data []byte
}

// IsReleased reports whether release has already run (Release == nil),
// i.e. the struct was zeroed per the release contract.
func (s *SchemaStruct) IsReleased() bool { return s.Release == nil }

// IsReleased reports whether release has already run.
func (a *ArrayStruct) IsReleased() bool { return a.Release == nil }
