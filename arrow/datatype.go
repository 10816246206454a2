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

// Type identifies the physical layout a format string decodes to. It is
// the Go realization of the "decoded type enum" §4.3 asks ArrowProxy to
// expose from DataType().
type Type int

const (
	NULL Type = iota
	BOOL
	INT8
	UINT8
	INT16
	UINT16
	INT32
	UINT32
	INT64
	UINT64
	FLOAT16
	FLOAT32
	FLOAT64
	STRING
	LARGE_STRING
	BINARY
	LARGE_BINARY
	FIXED_SIZE_BINARY
	DATE32
	DATE64
	TIME32
	TIME64
	TIMESTAMP
	DURATION
	INTERVAL_MONTHS
	INTERVAL_DAY_TIME
	INTERVAL_MONTH_DAY_NANO
	LIST
	LARGE_LIST
	FIXED_SIZE_LIST
	STRUCT
	MAP
	DICTIONARY
	RUN_END_ENCODED
	DENSE_UNION
	SPARSE_UNION
)

//go:generate stringer -type=Type -linecomment

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

var typeNames = map[Type]string{
	NULL:                    "null",
	BOOL:                    "bool",
	INT8:                    "int8",
	UINT8:                   "uint8",
	INT16:                   "int16",
	UINT16:                  "uint16",
	INT32:                   "int32",
	UINT32:                  "uint32",
	INT64:                   "int64",
	UINT64:                  "uint64",
	FLOAT16:                 "float16",
	FLOAT32:                 "float32",
	FLOAT64:                 "float64",
	STRING:                  "utf8",
	LARGE_STRING:            "large_utf8",
	BINARY:                  "binary",
	LARGE_BINARY:            "large_binary",
	FIXED_SIZE_BINARY:       "fixed_size_binary",
	DATE32:                  "date32",
	DATE64:                  "date64",
	TIME32:                  "time32",
	TIME64:                  "time64",
	TIMESTAMP:               "timestamp",
	DURATION:                "duration",
	INTERVAL_MONTHS:         "month_interval",
	INTERVAL_DAY_TIME:       "day_time_interval",
	INTERVAL_MONTH_DAY_NANO: "month_day_nano_interval",
	LIST:                    "list",
	LARGE_LIST:              "large_list",
	FIXED_SIZE_LIST:         "fixed_size_list",
	STRUCT:                  "struct",
	MAP:                     "map",
	DICTIONARY:              "dictionary",
	RUN_END_ENCODED:         "run_end_encoded",
	DENSE_UNION:             "dense_union",
	SPARSE_UNION:            "sparse_union",
}

// TimeUnit is the resolution of a temporal type carrying a unit (TIME32,
// TIME64, TIMESTAMP, DURATION).
type TimeUnit int

const (
	Second TimeUnit = iota
	Millisecond
	Microsecond
	Nanosecond
)

// UnionMode distinguishes dense from sparse union physical layout.
type UnionMode int

const (
	SparseMode UnionMode = iota
	DenseMode
)

// UnionTypeCode is the logical discriminant stored per-slot in a union's
// type-ids buffer.
type UnionTypeCode = int8
