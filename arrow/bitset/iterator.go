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

import "golang.org/x/exp/constraints"

// Iterator is a random-access bit iterator over a Reader. Position is kept
// as an absolute bit index internally, but BlockIndex/LocalIndex decompose
// it into the (block, block-local-index) pair §4.2 describes: incrementing
// past bitsPerBlock-1 advances the block and resets the local index to 0;
// decrementing from local index 0 retreats the block and sets the local
// index to bitsPerBlock-1. Comparing two iterators compares (block, index)
// lexicographically, which is exactly comparing the absolute position.
type Iterator[Block constraints.Unsigned] struct {
	owner Reader[Block]
	pos   int
}

// Begin returns an iterator at position 0.
func Begin[Block constraints.Unsigned](r Reader[Block]) Iterator[Block] {
	return Iterator[Block]{owner: r, pos: 0}
}

// End returns an iterator one past the last bit.
func End[Block constraints.Unsigned](r Reader[Block]) Iterator[Block] {
	return Iterator[Block]{owner: r, pos: r.Size()}
}

// Pos returns the absolute bit position.
func (it Iterator[Block]) Pos() int { return it.pos }

// BlockIndex returns which block the current position falls in.
func (it Iterator[Block]) BlockIndex() int { return it.pos / bitsPerBlock[Block]() }

// LocalIndex returns the bit offset within the current block.
func (it Iterator[Block]) LocalIndex() int { return it.pos % bitsPerBlock[Block]() }

// Value dereferences the iterator, returning the bit at the current
// position.
func (it Iterator[Block]) Value() bool { return it.owner.Test(it.pos) }

// Next advances the iterator by one bit, crossing a block boundary by
// incrementing BlockIndex and resetting LocalIndex to 0 when LocalIndex
// would otherwise overflow bitsPerBlock.
func (it Iterator[Block]) Next() Iterator[Block] { return Iterator[Block]{owner: it.owner, pos: it.pos + 1} }

// Prev retreats the iterator by one bit, crossing a block boundary
// backwards by decrementing BlockIndex and setting LocalIndex to
// bitsPerBlock-1 when retreating from LocalIndex 0.
func (it Iterator[Block]) Prev() Iterator[Block] { return Iterator[Block]{owner: it.owner, pos: it.pos - 1} }

// Advance moves the iterator by n bits (n may be negative), splitting the
// move into a block-skip and a residual-bits component internally.
func (it Iterator[Block]) Advance(n int) Iterator[Block] {
	bpb := bitsPerBlock[Block]()
	blockSkip := n / bpb
	residual := n % bpb
	return Iterator[Block]{owner: it.owner, pos: it.pos + blockSkip*bpb + residual}
}

// Equal compares two iterators by (block, index), i.e. by absolute
// position.
func (it Iterator[Block]) Equal(other Iterator[Block]) bool { return it.pos == other.pos }

// Less reports whether it precedes other in (block, index) lexicographic
// order.
func (it Iterator[Block]) Less(other Iterator[Block]) bool { return it.pos < other.pos }

// HasNext reports whether the iterator has not yet reached End.
func (it Iterator[Block]) HasNext() bool { return it.pos < it.owner.Size() }
