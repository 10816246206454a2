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

package bitset

import (
	"unsafe"

	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/bitutil"
	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"
)

// DynamicBitsetView is the non-owning counterpart to DynamicBitset: a
// read-only window over a foreign producer's block storage. It shares all
// read-side semantics with DynamicBitset but does not enforce the
// zero-unused-bits invariant on memory it does not own — it trusts the
// producer, per §4.2.
type DynamicBitsetView[Block constraints.Unsigned] struct {
	data      []Block
	size      int
	nullCount int
}

// NewDynamicBitsetView wraps data as a view of size bits. Pass
// nullCount == -1 (the C ABI's "unknown" sentinel, per the glossary) to
// have the view compute it once, eagerly, from the data.
func NewDynamicBitsetView[Block constraints.Unsigned](data []Block, size, nullCount int) DynamicBitsetView[Block] {
	v := DynamicBitsetView[Block]{data: data, size: size, nullCount: nullCount}
	if nullCount < 0 {
		v.nullCount = size - bitutil.CountSetBits(blockBytes(data), size)
	}
	return v
}

// NewDynamicBitsetViewAllValid returns a view of size bits that all read as
// valid without touching memory — the representation a Proxy uses when an
// array carries no validity buffer at all.
func NewDynamicBitsetViewAllValid[Block constraints.Unsigned](size int) DynamicBitsetView[Block] {
	return DynamicBitsetView[Block]{size: size, nullCount: 0}
}

func blockBytes[Block constraints.Unsigned](data []Block) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero Block
	sz := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*sz)
}

func (v DynamicBitsetView[Block]) Size() int      { return v.size }
func (v DynamicBitsetView[Block]) Empty() bool    { return v.size == 0 }
func (v DynamicBitsetView[Block]) NullCount() int { return v.nullCount }
func (v DynamicBitsetView[Block]) BlockCount() int { return len(v.data) }
func (v DynamicBitsetView[Block]) Data() []Block  { return v.data }

// Test returns whether bit i is valid, short-circuiting to true when the
// view carries no nulls at all (§4.4).
func (v DynamicBitsetView[Block]) Test(i int) bool {
	if v.nullCount == 0 || v.data == nil {
		return true
	}
	return bitutil.BitIsSet(blockBytes(v.data), i)
}

// At is the bounds-checked accessor.
func (v DynamicBitsetView[Block]) At(i int) (bool, error) {
	if i < 0 || i >= v.size {
		return false, xerrors.Errorf("%w: bitset view index %d, size %d", arrow.ErrOutOfRange, i, v.size)
	}
	return v.Test(i), nil
}

var _ Reader[uint8] = DynamicBitsetView[uint8]{}
