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

package array

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/Alex-PLACET/sparrow/arrow"
	"github.com/Alex-PLACET/sparrow/arrow/proxy"
)

// RunEndEncoded is §4.5's run-end-encoded layout: no buffers of its own,
// two children — run_ends (a primitive integer array) and values — where
// run i's values hold for logical positions up to (exclusive)
// run_ends.Value(i).
type RunEndEncoded[RunEnd constraints.Integer] struct {
	base
	runEnds Array
	values  Array
}

// NewRunEndEncoded wraps the run_ends and values children.
func NewRunEndEncoded[RunEnd constraints.Integer](p *proxy.Proxy, runEnds, values Array) *RunEndEncoded[RunEnd] {
	return &RunEndEncoded[RunEnd]{base: newBase(p, arrow.RUN_END_ENCODED), runEnds: runEnds, values: values}
}

func (a *RunEndEncoded[RunEnd]) RunEnds() Array { return a.runEnds }
func (a *RunEndEncoded[RunEnd]) Values() Array  { return a.values }

var _ Array = (*RunEndEncoded[int32])(nil)

// FindPhysicalOffset returns the index into the run_ends/values children
// whose run covers logical position offset — the smallest i such that
// runEnds[i] > offset. Grounded on the teacher's binary-search shape over
// the monotonically increasing run_ends array, rather than a linear scan,
// since run_ends can be arbitrarily long relative to the number of
// distinct logical positions queried.
func FindPhysicalOffset[RunEnd constraints.Integer](runEnds []RunEnd, offset int) int {
	if len(runEnds) == 0 {
		return 0
	}
	return sort.Search(len(runEnds), func(i int) bool {
		return int(runEnds[i]) > offset
	})
}

// PhysicalLength returns how many runs fall within [offset, offset+length)
// of the logical range, i.e. the slice of run_ends a logical array slice
// actually touches.
func PhysicalLength[RunEnd constraints.Integer](runEnds []RunEnd, offset, length int) int {
	if length == 0 {
		return 0
	}
	start := FindPhysicalOffset(runEnds, offset)
	end := FindPhysicalOffset(runEnds, offset+length-1)
	return end - start + 1
}
