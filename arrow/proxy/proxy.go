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

// Package proxy implements ArrowProxy (§4.3): a pair of C-ABI structs
// (cdata.SchemaStruct, cdata.ArrayStruct) wrapped with shared-ownership
// semantics and typed, lazily-built views over its buffers and children.
package proxy

import (
	"fmt"
	"sync"

	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/cdata"
	"github.com/Alex-PLACET/sparrow/arrow/memory"
	"golang.org/x/xerrors"
)

// Proxy wraps one (SchemaStruct, ArrayStruct) pair. A Proxy does not record
// whether it owns the pair's release callbacks: a pair built by this
// module's export factories and an adopted foreign-produced pair are held
// the same way, and Release invokes the release callbacks unconditionally
// in both cases.
type Proxy struct {
	schema *cdata.SchemaStruct
	array  *cdata.ArrayStruct

	mu       sync.Mutex
	children []*Proxy
	dict     *Proxy
	built    bool
}

// New wraps an existing (schema, array) pair. The returned Proxy takes
// responsibility for releasing both structs exactly once via Release.
func New(schema *cdata.SchemaStruct, array *cdata.ArrayStruct) *Proxy {
	return &Proxy{schema: schema, array: array}
}

// ExportSpec collects what a typed array's factory needs to hand to
// Export: the format string, the owning buffers it allocated, any child
// proxies, an optional dictionary proxy, and the shape fields. It is the
// Go realization of §6's "factory builds the two structs, allocates a
// private-data block... installs a release callback".
type ExportSpec struct {
	Format   string
	Name     string
	Metadata arrow.Metadata
	Flags    int64

	Length    int64
	NullCount int64
	Offset    int64

	Buffers  []cdata.BufferPtr
	Children []*Proxy
	Dict     *Proxy

	// Teardown releases whatever owning memory.Buffer(s) back Buffers,
	// Children and Dict; it runs exactly once, when this Proxy releases.
	Teardown func()
}

// Export builds a new owning Proxy from spec: a fresh (SchemaStruct,
// ArrayStruct) pair whose Release callback runs spec.Teardown exactly
// once, per §6's release-callback discipline.
func Export(spec ExportSpec) *Proxy {
	childSchemas := make([]*cdata.SchemaStruct, len(spec.Children))
	childArrays := make([]*cdata.ArrayStruct, len(spec.Children))
	for i, c := range spec.Children {
		childSchemas[i] = c.schema
		childArrays[i] = c.array
	}

	var dictSchema *cdata.SchemaStruct
	var dictArray *cdata.ArrayStruct
	if spec.Dict != nil {
		dictSchema = spec.Dict.schema
		dictArray = spec.Dict.array
	}

	teardown := spec.Teardown
	schema := &cdata.SchemaStruct{
		Format:     spec.Format,
		Name:       spec.Name,
		Metadata:   cdata.EncodeMetadata(spec.Metadata),
		Flags:      spec.Flags,
		Children:   childSchemas,
		Dictionary: dictSchema,
		Release:    cdata.ExportRelease(teardown),
	}
	array := &cdata.ArrayStruct{
		Length:     spec.Length,
		NullCount:  spec.NullCount,
		Offset:     spec.Offset,
		Buffers:    spec.Buffers,
		Children:   childArrays,
		Dictionary: dictArray,
		Release:    cdata.ExportArrayRelease(func() {}),
	}
	return &Proxy{schema: schema, array: array}
}

// CStructs returns the two C ABI struct pointers this Proxy wraps, the
// hand-off point package ffi uses to cross the C Data Interface boundary
// (§6): the caller receiving these becomes responsible for invoking their
// release callbacks exactly once.
func (p *Proxy) CStructs() (*cdata.SchemaStruct, *cdata.ArrayStruct) { return p.schema, p.array }

func (p *Proxy) Format() string      { return p.schema.Format }
func (p *Proxy) Name() string        { return p.schema.Name }

// SetName stamps the schema's name. Composite-layout exporters (e.g.
// NewStructArray) use this to record each child's field name in its own
// schema struct — the real Arrow contract keeps a struct field's name on
// the child, not the parent, so it survives a C-ABI export/import
// roundtrip.
func (p *Proxy) SetName(name string) { p.schema.Name = name }
func (p *Proxy) Length() int64       { return p.array.Length }
func (p *Proxy) Offset() int64       { return p.array.Offset }
func (p *Proxy) Flags() int64        { return p.schema.Flags }
func (p *Proxy) Nullable() bool      { return p.schema.Flags&cdata.FlagNullable != 0 }

// NullCount returns the array's null count, or -1 ("unknown", per the C
// ABI sentinel) when the producer declined to compute it.
func (p *Proxy) NullCount() int64 { return p.array.NullCount }

// Metadata decodes the schema's metadata blob, per §4.3's "optional
// metadata (key-value blob)" attribute.
func (p *Proxy) Metadata() (arrow.Metadata, error) {
	return cdata.DecodeMetadata(p.schema.Metadata)
}

// DataType parses the format string into a cdata.Layout, the decoded type
// enum §4.3 calls data_type().
func (p *Proxy) DataType() (cdata.Layout, error) {
	return cdata.ParseFormat(p.schema.Format)
}

// BufferCount returns how many raw buffers the array struct carries.
func (p *Proxy) BufferCount() int { return len(p.array.Buffers) }

// Buffer returns a typed, non-owning view over buffer i, reinterpreting
// its raw bytes as []T. A nil entry (the "no validity buffer" case, §4.3.1)
// yields an empty view.
func Buffer[T any](p *Proxy, i int) memory.BufferView[T] {
	if i >= len(p.array.Buffers) || p.array.Buffers[i].Data == nil {
		return memory.NewBufferView[T](nil)
	}
	return memory.NewBufferViewBytes[T](p.array.Buffers[i].Data)
}

// RawBuffer returns the untyped byte span for buffer i.
func (p *Proxy) RawBuffer(i int) []byte {
	if i >= len(p.array.Buffers) {
		return nil
	}
	return p.array.Buffers[i].Data
}

// Children lazily wraps each child (schema, array) pair in its own Proxy,
// per §4.3's "children() -> [ArrowProxy]... built lazily".
func (p *Proxy) Children() []*Proxy {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.built {
		p.children = make([]*Proxy, len(p.array.Children))
		for i := range p.array.Children {
			var sc *cdata.SchemaStruct
			if i < len(p.schema.Children) {
				sc = p.schema.Children[i]
			}
			p.children[i] = New(sc, p.array.Children[i])
		}
		p.built = true
	}
	return p.children
}

// Dictionary lazily wraps the dictionary child, or returns nil if the
// array carries none.
func (p *Proxy) Dictionary() *Proxy {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dict == nil && p.array.Dictionary != nil {
		p.dict = New(p.schema.Dictionary, p.array.Dictionary)
	}
	return p.dict
}

// Release invokes the release callback on both structs exactly once (the
// recursion into children/dictionary happens inside cdata.ReleaseSchema /
// cdata.ReleaseArray, which also zero the structs themselves). The
// Proxy's own pointers to the structs are left as they are.
func (p *Proxy) Release() {
	cdata.ReleaseArray(p.array)
	cdata.ReleaseSchema(p.schema)
}

// Validate applies the cross-struct invariants §4.3/§4.4 require: schema
// and array must describe the same logical shape. It is run against every
// adopted pair at the top of ffi.importProxy, before any typed-array
// constructor touches the pair's buffers.
func (p *Proxy) Validate() error {
	if len(p.schema.Children) != len(p.array.Children) {
		return xerrors.Errorf("%w: schema has %d children, array has %d", arrow.ErrSchemaMismatch, len(p.schema.Children), len(p.array.Children))
	}
	if (p.schema.Dictionary == nil) != (p.array.Dictionary == nil) {
		return xerrors.Errorf("%w: schema/array disagree on dictionary presence", arrow.ErrSchemaMismatch)
	}
	return nil
}

// CompareSchemas resolves §9's named Open Question: the source's
// compare_schemas only strcmp's name/metadata when present on exactly one
// side, which is backwards. This implements the corrected rule — compare
// when both sides carry a name/metadata, flag a mismatch when only one
// side does — recursing into children and the dictionary exactly the way
// comparison.cpp's compare_schemas does.
func CompareSchemas(prefix string, a, b *cdata.SchemaStruct) error {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return nil
		}
		return xerrors.Errorf("%w: %s is present on only one side", arrow.ErrSchemaMismatch, prefix)
	}
	if a.Format != b.Format {
		return xerrors.Errorf("%w: %s format mismatch: %q vs %q", arrow.ErrSchemaMismatch, prefix, a.Format, b.Format)
	}
	if (a.Name == "") != (b.Name == "") {
		return xerrors.Errorf("%w: %s name present on only one side", arrow.ErrSchemaMismatch, prefix)
	}
	if a.Name != "" && b.Name != "" && a.Name != b.Name {
		return xerrors.Errorf("%w: %s name mismatch: %q vs %q", arrow.ErrSchemaMismatch, prefix, a.Name, b.Name)
	}
	if (len(a.Metadata) == 0) != (len(b.Metadata) == 0) {
		return xerrors.Errorf("%w: %s metadata present on only one side", arrow.ErrSchemaMismatch, prefix)
	}
	if len(a.Metadata) != 0 && len(b.Metadata) != 0 && string(a.Metadata) != string(b.Metadata) {
		return xerrors.Errorf("%w: %s metadata mismatch", arrow.ErrSchemaMismatch, prefix)
	}
	if a.Flags != b.Flags {
		return xerrors.Errorf("%w: %s flags mismatch: %d vs %d", arrow.ErrSchemaMismatch, prefix, a.Flags, b.Flags)
	}
	if len(a.Children) != len(b.Children) {
		return xerrors.Errorf("%w: %s children count mismatch: %d vs %d", arrow.ErrSchemaMismatch, prefix, len(a.Children), len(b.Children))
	}
	for i := range a.Children {
		if err := CompareSchemas(fmt.Sprintf("%s child %d", prefix, i), a.Children[i], b.Children[i]); err != nil {
			return err
		}
	}
	if (a.Dictionary == nil) != (b.Dictionary == nil) {
		return xerrors.Errorf("%w: %s dictionary presence mismatch", arrow.ErrSchemaMismatch, prefix)
	}
	if a.Dictionary != nil && b.Dictionary != nil {
		return CompareSchemas(prefix+" dictionary", a.Dictionary, b.Dictionary)
	}
	return nil
}
