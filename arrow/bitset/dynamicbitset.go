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

// Package bitset implements the validity bitmap (§4.2): a packed bit
// sequence with a cached null count, shared between an owning
// DynamicBitset and a non-owning DynamicBitsetView over foreign memory.
package bitset

import (
	"unsafe"

	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/bitutil"
	"github.com/Alex-PLACET/sparrow/arrow/memory"
	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"
)

// Reader is the read-side capability both DynamicBitset and
// DynamicBitsetView satisfy, per DESIGN NOTES §9's "owning vs view via
// template parameter" guidance: all read operations live here, mutators
// exist only on the owning type.
type Reader[Block constraints.Unsigned] interface {
	Size() int
	Empty() bool
	NullCount() int
	BlockCount() int
	Test(i int) bool
	At(i int) (bool, error)
	Data() []Block
}

func bitsPerBlock[Block constraints.Unsigned]() int {
	var zero Block
	return int(unsafe.Sizeof(zero)) * 8
}

func blockCountFor[Block constraints.Unsigned](nbits int) int {
	bpb := bitsPerBlock[Block]()
	return (nbits + bpb - 1) / bpb
}

// DynamicBitset is the owning, packed-bit container of §4.2, parameterised
// by an unsigned block type (default Block=uint8 per the spec). Bit 0
// means "null"; the cached NullCount() counts zero bits.
type DynamicBitset[Block constraints.Unsigned] struct {
	blocks    *memory.Buffer[Block]
	size      int
	nullCount int
}

// NewDynamicBitset returns an empty bitset using alloc.
func NewDynamicBitset[Block constraints.Unsigned](alloc memory.Allocator) *DynamicBitset[Block] {
	return &DynamicBitset[Block]{blocks: memory.NewBuffer[Block](alloc)}
}

// NewDynamicBitsetFromBools builds a bitset whose bit i equals bits[i].
func NewDynamicBitsetFromBools[Block constraints.Unsigned](alloc memory.Allocator, bits []bool) *DynamicBitset[Block] {
	b := NewDynamicBitset[Block](alloc)
	b.Resize(len(bits))
	for i, v := range bits {
		b.Set(i, v)
	}
	return b
}

func (b *DynamicBitset[Block]) Size() int       { return b.size }
func (b *DynamicBitset[Block]) Empty() bool     { return b.size == 0 }
func (b *DynamicBitset[Block]) NullCount() int  { return b.nullCount }
func (b *DynamicBitset[Block]) BlockCount() int { return b.blocks.Size() }
func (b *DynamicBitset[Block]) Data() []Block   { return b.blocks.Data() }

// bytes returns the raw byte view of the block storage, valid regardless
// of the chosen Block width: bit addressing is always byte-granular.
func (b *DynamicBitset[Block]) bytes() []byte { return b.blocks.Bytes() }

// Test returns whether bit i is set. When the cache shows no nulls at all,
// it returns true unconditionally without touching memory, per §4.4's
// null-count short-circuit.
func (b *DynamicBitset[Block]) Test(i int) bool {
	if b.nullCount == 0 {
		return true
	}
	return bitutil.BitIsSet(b.bytes(), i)
}

// At is the bounds-checked accessor; it is the only operation in this type
// that returns an error (§4.2's failure model).
func (b *DynamicBitset[Block]) At(i int) (bool, error) {
	if i < 0 || i >= b.size {
		return false, xerrors.Errorf("%w: bitset index %d, size %d", arrow.ErrOutOfRange, i, b.size)
	}
	return b.Test(i), nil
}

// Set updates bit i and incrementally adjusts the null-count cache.
func (b *DynamicBitset[Block]) Set(i int, v bool) {
	old := bitutil.BitIsSet(b.bytes(), i)
	bitutil.SetBitTo(b.bytes(), i, v)
	if old != v {
		if v {
			b.nullCount--
		} else {
			b.nullCount++
		}
	}
}

// Ref returns an assignable BitRef proxy for index i (§4.2's BitReference).
func (b *DynamicBitset[Block]) Ref(i int) BitRef[Block] { return BitRef[Block]{owner: b, index: i} }

func (b *DynamicBitset[Block]) recomputeNullCount() {
	b.nullCount = b.size - bitutil.CountSetBits(b.bytes(), b.size)
}

// zeroUnusedBits restores the invariant that bits in
// [size, blockCount*bitsPerBlock) read as zero.
func (b *DynamicBitset[Block]) zeroUnusedBits() {
	total := b.blocks.Size() * bitsPerBlock[Block]()
	for i := b.size; i < total; i++ {
		bitutil.ClearBit(b.bytes(), i)
	}
}

// Resize sets Size() to n. New bits default to 0 (null) unless fill[0] is
// true. Resize(Size(), ...) is a no-op (§8 idempotence). A full null-count
// recompute happens on every resize, per §9's "defensive full recount on
// resize/clear" guidance.
func (b *DynamicBitset[Block]) Resize(n int, fill ...bool) {
	if n == b.size {
		return
	}
	old := b.size
	b.blocks.Resize(blockCountFor[Block](n))
	b.size = n
	if n > old {
		// [old, n) may fall within a block kept from a prior shrink, so
		// clear it explicitly before setting fill bits — growing the
		// backing Buffer only guarantees zero bytes for blocks it
		// actually allocates, not bits reused within an existing one.
		for i := old; i < n; i++ {
			bitutil.ClearBit(b.bytes(), i)
		}
		if len(fill) > 0 && fill[0] {
			for i := old; i < n; i++ {
				bitutil.SetBit(b.bytes(), i)
			}
		}
	}
	b.zeroUnusedBits()
	b.recomputeNullCount()
}

// Clear empties the bitset. Clear() then Clear() equals one Clear().
func (b *DynamicBitset[Block]) Clear() {
	b.blocks.Resize(0)
	b.size = 0
	b.nullCount = 0
}

// PushBack appends v, growing the bitset by one bit.
func (b *DynamicBitset[Block]) PushBack(v bool) {
	old := b.size
	b.Resize(old + 1)
	b.Set(old, v)
}

// PopBack removes the last bit.
func (b *DynamicBitset[Block]) PopBack() {
	if b.size == 0 {
		panic(xerrors.New("bitset: PopBack on empty bitset"))
	}
	b.Resize(b.size - 1)
}

// Insert grows the bitset by count bits, shifting [pos, Size()) right by
// count positions (per-bit test+set, correctness over speed per §4.2) and
// filling [pos, pos+count) with v.
func (b *DynamicBitset[Block]) Insert(pos, count int, v bool) {
	if pos < 0 || pos > b.size {
		panic(xerrors.Errorf("%w: bitset.Insert pos=%d size=%d", arrow.ErrOutOfRange, pos, b.size))
	}
	if count == 0 {
		return
	}
	old := b.size
	b.Resize(old + count)
	for i := old - 1; i >= pos; i-- {
		b.Set(i+count, b.Test(i))
	}
	for i := pos; i < pos+count; i++ {
		b.Set(i, v)
	}
}

// InsertBits is the sequence-insert overload of Insert: it copies bits
// into [pos, pos+len(bits)) instead of a uniform fill value.
func (b *DynamicBitset[Block]) InsertBits(pos int, bits []bool) {
	count := len(bits)
	if count == 0 {
		return
	}
	if pos < 0 || pos > b.size {
		panic(xerrors.Errorf("%w: bitset.InsertBits pos=%d size=%d", arrow.ErrOutOfRange, pos, b.size))
	}
	old := b.size
	b.Resize(old + count)
	for i := old - 1; i >= pos; i-- {
		b.Set(i+count, b.Test(i))
	}
	for i, v := range bits {
		b.Set(pos+i, v)
	}
}

// Erase removes [first, last), shifting the tail left.
func (b *DynamicBitset[Block]) Erase(first, last int) {
	if first < 0 || last > b.size || first > last {
		panic(xerrors.Errorf("%w: bitset.Erase first=%d last=%d size=%d", arrow.ErrOutOfRange, first, last, b.size))
	}
	count := last - first
	if count == 0 {
		return
	}
	for i := last; i < b.size; i++ {
		b.Set(i-count, b.Test(i))
	}
	b.Resize(b.size - count)
}

// Release frees the backing buffer.
func (b *DynamicBitset[Block]) Release() { b.blocks.Release() }

var _ Reader[uint8] = (*DynamicBitset[uint8])(nil)
