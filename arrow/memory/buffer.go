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

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/xerrors"
)

// Buffer[T] is the owning, growable container of §4.1: a contiguous
// sequence of T allocated through an Allocator. It is also the backing
// store the array builders hand to a Proxy as raw bytes through Bytes(),
// and it carries
// a refcount so a Proxy and the typed array views built over it can share
// one allocation (mirroring memory.Buffer/array.Data's Retain/Release idiom
// in the teacher).
//
// Reallocation invalidates any slice obtained from a prior Data() call;
// callers must re-fetch Data() after any mutator.
type Buffer[T any] struct {
	alloc    Allocator
	raw      []byte
	n        int
	refCount int64
}

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// NewBuffer returns an empty, owning Buffer[T] using alloc.
func NewBuffer[T any](alloc Allocator) *Buffer[T] {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	return &Buffer[T]{alloc: alloc, refCount: 1}
}

// NewBufferFromSlice copies vals into a new owning Buffer[T].
func NewBufferFromSlice[T any](alloc Allocator, vals []T) *Buffer[T] {
	b := NewBuffer[T](alloc)
	b.Resize(len(vals))
	copy(b.Data(), vals)
	return b
}

// Retain increases the reference count by one.
func (b *Buffer[T]) Retain() { atomic.AddInt64(&b.refCount, 1) }

// Release decreases the reference count by one, freeing the underlying
// allocation once it reaches zero.
func (b *Buffer[T]) Release() {
	if atomic.AddInt64(&b.refCount, -1) == 0 {
		b.alloc.Free(b.raw)
		b.raw, b.n = nil, 0
	}
}

// Size returns the number of valid elements.
func (b *Buffer[T]) Size() int { return b.n }

// Empty reports whether Size() == 0.
func (b *Buffer[T]) Empty() bool { return b.n == 0 }

// Cap returns the number of elements the current allocation can hold
// without reallocating.
func (b *Buffer[T]) Cap() int {
	sz := elemSize[T]()
	if sz == 0 {
		return 0
	}
	return len(b.raw) / sz
}

// Data returns a slice over the first Size() elements. The slice is
// invalidated by any subsequent mutator that reallocates.
func (b *Buffer[T]) Data() []T {
	if b.n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b.raw[0])), b.n)
}

// Bytes returns the raw byte view of the first Size() elements, the form
// the C ABI bridge and Proxy exchange buffers in.
func (b *Buffer[T]) Bytes() []byte {
	sz := elemSize[T]()
	return b.raw[:b.n*sz : b.n*sz]
}

// Reserve grows the backing allocation, if needed, to hold at least n
// elements without changing Size().
func (b *Buffer[T]) Reserve(n int) {
	sz := elemSize[T]()
	need := n * sz
	if len(b.raw) >= need {
		return
	}
	b.raw = b.alloc.Reallocate(need, b.raw)
}

// Resize sets Size() to n, growing (zero-filling, then applying fill if
// given) or shrinking as needed. Resize(Size(), ...) is a no-op, per the
// spec's idempotence requirement (§8).
//
// The grown region [old, n) is always zero-filled first, even when Reserve
// reuses capacity left over from a prior shrink rather than reallocating
// — a fresh Allocate/Reallocate already returns zeroed bytes, but reused
// capacity does not, and callers (e.g. bitset.DynamicBitset) rely on
// "new slots default to zero" regardless of which path grew the buffer.
func (b *Buffer[T]) Resize(n int, fill ...T) {
	if n == b.n {
		return
	}
	old := b.n
	if n > b.Cap() {
		b.Reserve(n)
	}
	b.n = n
	if n > old {
		data := b.Data()
		var zero T
		for i := old; i < n; i++ {
			data[i] = zero
		}
		if len(fill) > 0 {
			for i := old; i < n; i++ {
				data[i] = fill[0]
			}
		}
	}
}

// PushBack appends v, growing the buffer by one element.
func (b *Buffer[T]) PushBack(v T) {
	b.Reserve(b.n + 1)
	b.n++
	b.Data()[b.n-1] = v
}

// PopBack removes the last element. Panics if empty.
func (b *Buffer[T]) PopBack() {
	if b.n == 0 {
		panic(xerrors.New("memory: PopBack on empty buffer"))
	}
	b.n--
}

// Insert inserts count copies of v starting at pos, shifting
// [pos, Size()) to the right.
func (b *Buffer[T]) Insert(pos, count int, v T) {
	if pos < 0 || pos > b.n {
		panic(xerrors.Errorf("%w: memory.Buffer.Insert pos=%d size=%d", errOutOfRange, pos, b.n))
	}
	old := b.n
	b.Resize(old + count)
	data := b.Data()
	copy(data[pos+count:], data[pos:old])
	for i := pos; i < pos+count; i++ {
		data[i] = v
	}
}

// Erase removes [first, last), shifting the remaining tail left.
func (b *Buffer[T]) Erase(first, last int) {
	if first < 0 || last > b.n || first > last {
		panic(xerrors.Errorf("%w: memory.Buffer.Erase first=%d last=%d size=%d", errOutOfRange, first, last, b.n))
	}
	data := b.Data()
	copy(data[first:], data[last:b.n])
	b.n -= last - first
}

// ExtractStorage moves the underlying allocation out, leaving the buffer
// empty, and returns the extracted values. Ownership of the allocation
// transfers to the caller; the buffer must not Free it.
func (b *Buffer[T]) ExtractStorage() []T {
	out := b.Data()
	b.raw, b.n = nil, 0
	return out
}

var errOutOfRange = xerrors.New("memory: index out of range")
