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

// Package bitutil holds the byte/bit level primitives the validity bitmap
// and the bit-packed boolean array build on.
package bitutil

import "math/bits"

var (
	BitMask        = [8]byte{1, 2, 4, 8, 16, 32, 64, 128}
	FlippedBitMask = [8]byte{254, 253, 251, 247, 239, 223, 191, 127}
)

// popcountTable is the 256-entry byte popcount table the spec's
// null_count-maintenance algorithm (§4.2) calls for.
var popcountTable [256]uint8

func init() {
	for i := range popcountTable {
		popcountTable[i] = uint8(bits.OnesCount8(uint8(i)))
	}
}

// CeilByte rounds size up to the next multiple of 8.
func CeilByte(size int) int { return (size + 7) &^ 7 }

// BytesForBits returns the number of bytes needed to hold bitCount bits.
func BytesForBits(bitCount int64) int64 { return (bitCount + 7) >> 3 }

// BitIsSet returns true if the bit at index i in buf is set (1).
func BitIsSet(buf []byte, i int) bool { return (buf[uint(i)/8] & BitMask[byte(i)%8]) != 0 }

// BitIsNotSet returns true if the bit at index i in buf is not set (0).
func BitIsNotSet(buf []byte, i int) bool { return (buf[uint(i)/8] & BitMask[byte(i)%8]) == 0 }

// SetBit sets the bit at index i in buf to 1.
func SetBit(buf []byte, i int) { buf[uint(i)/8] |= BitMask[byte(i)%8] }

// ClearBit sets the bit at index i in buf to 0.
func ClearBit(buf []byte, i int) { buf[uint(i)/8] &= FlippedBitMask[byte(i)%8] }

// SetBitTo sets the bit at index i in buf to val.
func SetBitTo(buf []byte, i int, val bool) {
	if val {
		SetBit(buf, i)
	} else {
		ClearBit(buf, i)
	}
}

// CountSetBits counts the number of 1 bits in buf over the first n bits,
// using the byte-window popcount table per the spec's recompute-from-scratch
// algorithm.
func CountSetBits(buf []byte, n int) int {
	count := 0
	nbytes := n / 8
	for _, v := range buf[:nbytes] {
		count += int(popcountTable[v])
	}
	for i := nbytes * 8; i < n; i++ {
		if BitIsSet(buf, i) {
			count++
		}
	}
	return count
}

// CountClearBits counts the number of 0 bits in buf over the first n bits.
func CountClearBits(buf []byte, n int) int { return n - CountSetBits(buf, n) }
