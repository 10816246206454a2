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

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Metadata is the decoded form of a SchemaStruct's key-value metadata blob
// (§6). It preserves insertion order, matching the C ABI's key/value pair
// sequence.
type Metadata struct {
	keys   []string
	values []string
}

// NewMetadata builds a Metadata from parallel key/value slices. Panics if
// the slices differ in length, mirroring a programming error rather than a
// recoverable data condition.
func NewMetadata(keys, values []string) Metadata {
	if len(keys) != len(values) {
		panic("arrow: metadata keys/values length mismatch")
	}
	return Metadata{keys: keys, values: values}
}

// Len returns the number of key-value pairs.
func (m *Metadata) Len() int { return len(m.keys) }

// Keys returns the metadata keys in insertion order.
func (m *Metadata) Keys() []string { return m.keys }

// Values returns the metadata values in insertion order, parallel to Keys.
func (m *Metadata) Values() []string { return m.values }

// Find returns the index of key, or -1 if absent.
func (m *Metadata) Find(key string) int {
	for i, k := range m.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Equal reports whether two Metadata values hold the same pairs in the
// same order, the comparison §9's "compare_schemas" open question resolves
// to: compare when both are present.
func (m Metadata) Equal(other Metadata) bool {
	if len(m.keys) != len(other.keys) {
		return false
	}
	for i := range m.keys {
		if m.keys[i] != other.keys[i] || m.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

func (m Metadata) String() string {
	var b strings.Builder
	for i := range m.keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", m.keys[i], m.values[i])
	}
	return b.String()
}

// MarshalJSON renders the metadata as a JSON object for diagnostics. This
// is display glue, not a JSON type-system integration.
func (m Metadata) MarshalJSON() ([]byte, error) {
	obj := make(map[string]string, len(m.keys))
	for i := range m.keys {
		obj[m.keys[i]] = m.values[i]
	}
	return json.Marshal(obj)
}
