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

// BitRef is the Go realization of §4.2's BitReference proxy. Go has no
// operator overloading, so implicit bool conversion and "&=/|=/^=" become
// explicit methods (DESIGN NOTES §9). A BitRef must never outlive the
// DynamicBitset it was taken from.
type BitRef[Block constraints.Unsigned] struct {
	owner *DynamicBitset[Block]
	index int
}

// Bool reads the referenced bit.
func (r BitRef[Block]) Bool() bool { return r.owner.Test(r.index) }

// Set assigns v to the referenced bit, updating the owner's null-count
// cache consistently.
func (r BitRef[Block]) Set(v bool) { r.owner.Set(r.index, v) }

// And is the BitReference &= v operation.
func (r BitRef[Block]) And(v bool) { r.Set(r.Bool() && v) }

// Or is the BitReference |= v operation.
func (r BitRef[Block]) Or(v bool) { r.Set(r.Bool() || v) }

// Xor is the BitReference ^= v operation.
func (r BitRef[Block]) Xor(v bool) { r.Set(r.Bool() != v) }
