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

package arrow

import "golang.org/x/xerrors"

// Sentinel error kinds. Call sites wrap these with xerrors.Errorf("%w: ...")
// to attach the failing index, format string, or callback identity.
var (
	// ErrOutOfRange is returned by bounds-checked accessors (At) when the
	// index is beyond Size().
	ErrOutOfRange = xerrors.New("sparrow: index out of range")

	// ErrAllocation names the allocation-failure error kind. No function
	// in this module returns it; the Allocator interface has no error
	// result.
	ErrAllocation = xerrors.New("sparrow: allocation failed")

	// ErrSchemaMismatch is returned when a format string does not match
	// the expected layout for a typed-array constructor, or the buffer
	// count/shape is inconsistent with the decoded type.
	ErrSchemaMismatch = xerrors.New("sparrow: schema mismatch")

	// ErrInvalidState names the invalid-state error kind. No function in
	// this module returns it: releasing an already-released struct is a
	// no-op, and the builders' mutators panic on bad input.
	ErrInvalidState = xerrors.New("sparrow: invalid state")

	// ErrForeignRelease wraps the diagnostic built by
	// cdata.CheckForeignRelease when a release teardown panics. It is only
	// logged (debug builds); the panic itself is re-raised, and no Close
	// method returns this error.
	ErrForeignRelease = xerrors.New("sparrow: foreign release failed")
)
