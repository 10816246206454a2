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

package cdata

import (
	"fmt"

	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/internal/debug"
	"github.com/google/uuid"
	"golang.org/x/xerrors"
)

// exportPrivateData is captured by the Release closures that this module's
// export factories install (it is not stored in the struct's PrivateData
// field): the teardown for the owning memory.Buffer-backed storage, which
// must outlive the struct but be freed exactly once.
type exportPrivateData struct {
	// id tags the ErrForeignRelease diagnostic that runTeardown logs when
	// this teardown panics.
	id       uuid.UUID
	teardown func()
}

// newExportPrivateData registers a teardown closure under a synthetic
// identity, for producer-side exports (§6 "release frees every owned
// buffer...").
func newExportPrivateData(teardown func()) *exportPrivateData {
	return &exportPrivateData{id: uuid.New(), teardown: teardown}
}

// ReleaseSchema runs s's release callback exactly once, then zeroes the
// struct per §6's release contract, tolerating an already-released
// (Release == nil) struct as the contract requires.
func ReleaseSchema(s *SchemaStruct) {
	if s == nil || s.Release == nil {
		return
	}
	for _, c := range s.Children {
		ReleaseSchema(c)
	}
	if s.Dictionary != nil {
		ReleaseSchema(s.Dictionary)
	}

	release := s.Release
	debug.Log(fmt.Sprintf("cdata: releasing schema format=%q", s.Format))
	release(s)

	*s = SchemaStruct{}
}

// ReleaseArray is the ArrayStruct counterpart of ReleaseSchema.
func ReleaseArray(a *ArrayStruct) {
	if a == nil || a.Release == nil {
		return
	}
	for _, c := range a.Children {
		ReleaseArray(c)
	}
	if a.Dictionary != nil {
		ReleaseArray(a.Dictionary)
	}

	release := a.Release
	release(a)

	*a = ArrayStruct{}
}

// ExportRelease builds the Release callback for a struct this module
// itself produced: it runs teardown once, then is safe to call again
// (it becomes a no-op because the struct's Release field has already
// been nilled by the release contract before a second call could occur).
// A teardown that panics is logged against pd.id before the panic is
// allowed to continue, so a failure surfaced through a deep Children/
// Dictionary release chain can be traced back to the one struct whose
// release actually failed.
func ExportRelease(teardown func()) ReleaseSchemaFunc {
	pd := newExportPrivateData(teardown)
	return func(s *SchemaStruct) {
		if pd.teardown == nil {
			return
		}
		t := pd.teardown
		pd.teardown = nil
		runTeardown(pd.id, t)
	}
}

// ExportArrayRelease is ExportRelease's ArrayStruct counterpart.
func ExportArrayRelease(teardown func()) ReleaseArrayFunc {
	pd := newExportPrivateData(teardown)
	return func(a *ArrayStruct) {
		if pd.teardown == nil {
			return
		}
		t := pd.teardown
		pd.teardown = nil
		runTeardown(pd.id, t)
	}
}

// runTeardown invokes t, recovering and logging a CheckForeignRelease
// diagnostic tagged with id before re-raising, so teardown keeps the same
// panic/no-error contract the C ABI release callback requires.
func runTeardown(id uuid.UUID, t func()) {
	defer func() {
		if r := recover(); r != nil {
			debug.Log(CheckForeignRelease(id, fmt.Errorf("%v", r)).Error())
			panic(r)
		}
	}()
	t()
}

// CheckForeignRelease wraps err (if non-nil) from invoking a release
// callback, classifying the failure as arrow.ErrForeignRelease so callers
// can distinguish it from this module's own invariant violations, and
// tagging it with the diagnostic id assigned to that struct by
// newExportPrivateData so the failure can be traced to the specific
// export it came from.
func CheckForeignRelease(id uuid.UUID, err error) error {
	if err == nil {
		return nil
	}
	return xerrors.Errorf("%w [id=%s]: %s", arrow.ErrForeignRelease, id, err.Error())
}
