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

package cdata

import (
	"strconv"
	"strings"

	"github.com/Alex-PLACET/sparrow/arrow"
	"golang.org/x/xerrors"
)

// Layout is a parsed format string: the decoded Type plus whatever
// per-layout parameters the grammar carries (fixed-width byte count, time
// unit/zone, union mode/codes, list size).
type Layout struct {
	Type arrow.Type

	ByteWidth int // FIXED_SIZE_BINARY, FIXED_SIZE_LIST

	Unit     arrow.TimeUnit // TIME32/TIME64/TIMESTAMP/DURATION
	TimeZone string         // TIMESTAMP only

	UnionMode  arrow.UnionMode
	TypeCodes  []arrow.UnionTypeCode
}

var simpleFormats = map[string]arrow.Type{
	"n": arrow.NULL,
	"b": arrow.BOOL,
	"c": arrow.INT8,
	"C": arrow.UINT8,
	"s": arrow.INT16,
	"S": arrow.UINT16,
	"i": arrow.INT32,
	"I": arrow.UINT32,
	"l": arrow.INT64,
	"L": arrow.UINT64,
	"e": arrow.FLOAT16,
	"f": arrow.FLOAT32,
	"g": arrow.FLOAT64,
	"u": arrow.STRING,
	"U": arrow.LARGE_STRING,
	"z": arrow.BINARY,
	"Z": arrow.LARGE_BINARY,

	"tdD": arrow.DATE32,
	"tdm": arrow.DATE64,
	"tts": arrow.TIME32,
	"ttm": arrow.TIME32,
	"ttu": arrow.TIME64,
	"ttn": arrow.TIME64,
	"tDs": arrow.DURATION,
	"tDm": arrow.DURATION,
	"tDu": arrow.DURATION,
	"tDn": arrow.DURATION,
	"tiM": arrow.INTERVAL_MONTHS,
	"tiD": arrow.INTERVAL_DAY_TIME,
	// tin (month-day-nano interval) is a NEW addition (§4.3.1): Arrow's
	// third interval unit, present in the C++ format table but absent
	// from the distilled spec's list.
	"tin": arrow.INTERVAL_MONTH_DAY_NANO,
}

var timeUnitByPrefix = map[byte]arrow.TimeUnit{
	's': arrow.Second,
	'm': arrow.Millisecond,
	'u': arrow.Microsecond,
	'n': arrow.Nanosecond,
}

// ParseFormat decodes a format string into a Layout. It does not know
// about children: callers resolve List/Struct/Union/Map/RunEndEncoded
// child types themselves from the schema's Children,
// mirroring cdata.go's importSchema recursion.
func ParseFormat(f string) (Layout, error) {
	if t, ok := simpleFormats[f]; ok {
		layout := Layout{Type: t}
		switch f {
		case "tts", "ttm", "ttu", "ttn":
			layout.Unit = timeUnitByPrefix[f[2]]
		case "tDs", "tDm", "tDu", "tDn":
			layout.Unit = timeUnitByPrefix[f[2]]
		}
		return layout, nil
	}

	parts := strings.SplitN(f, ":", 2)
	switch parts[0] {
	case "w":
		n, err := requireParam(f, parts)
		if err != nil {
			return Layout{}, err
		}
		width, err := strconv.Atoi(n)
		if err != nil {
			return Layout{}, xerrors.Errorf("cdata: invalid fixed-width-binary format %q: %w", f, err)
		}
		return Layout{Type: arrow.FIXED_SIZE_BINARY, ByteWidth: width}, nil

	case "tss", "tsm", "tsu", "tsn":
		tz, err := requireParam(f, parts)
		if err != nil {
			return Layout{}, err
		}
		return Layout{Type: arrow.TIMESTAMP, Unit: timeUnitByPrefix[parts[0][2]], TimeZone: tz}, nil
	}

	if strings.HasPrefix(f, "+") {
		return parseNestedFormat(f)
	}

	return Layout{}, xerrors.Errorf("cdata: unrecognized format string %q", f)
}

func parseNestedFormat(f string) (Layout, error) {
	switch {
	case f == "+l":
		return Layout{Type: arrow.LIST}, nil
	case f == "+L":
		return Layout{Type: arrow.LARGE_LIST}, nil
	case strings.HasPrefix(f, "+w:"):
		width, err := strconv.Atoi(strings.TrimPrefix(f, "+w:"))
		if err != nil {
			return Layout{}, xerrors.Errorf("cdata: invalid fixed-size-list format %q: %w", f, err)
		}
		return Layout{Type: arrow.FIXED_SIZE_LIST, ByteWidth: width}, nil
	case f == "+s":
		return Layout{Type: arrow.STRUCT}, nil
	case f == "+r":
		return Layout{Type: arrow.RUN_END_ENCODED}, nil
	case f == "+m":
		// NEW (§4.3.1): map as a thin List-of-2-field-struct specialization.
		return Layout{Type: arrow.MAP}, nil
	case strings.HasPrefix(f, "+ud:"), strings.HasPrefix(f, "+us:"):
		mode := arrow.DenseMode
		if f[2] == 's' {
			mode = arrow.SparseMode
		}
		parts := strings.SplitN(f, ":", 2)
		codes, err := requireParam(f, parts)
		if err != nil {
			return Layout{}, err
		}
		codeStrs := strings.Split(codes, ",")
		typeCodes := make([]arrow.UnionTypeCode, 0, len(codeStrs))
		for _, c := range codeStrs {
			v, err := strconv.ParseInt(c, 10, 8)
			if err != nil {
				return Layout{}, xerrors.Errorf("cdata: invalid union type code in %q: %w", f, err)
			}
			typeCodes = append(typeCodes, arrow.UnionTypeCode(v))
		}
		t := arrow.DENSE_UNION
		if mode == arrow.SparseMode {
			t = arrow.SPARSE_UNION
		}
		return Layout{Type: t, UnionMode: mode, TypeCodes: typeCodes}, nil
	}
	return Layout{}, xerrors.Errorf("cdata: unrecognized nested format string %q", f)
}

func requireParam(f string, parts []string) (string, error) {
	if len(parts) != 2 {
		return "", xerrors.Errorf("cdata: format string %q missing required %q parameter", f, ":")
	}
	return parts[1], nil
}

// FormatOf renders a Layout back into its canonical format string, the
// inverse of ParseFormat used by export factories to populate
// SchemaStruct.Format.
func FormatOf(l Layout) string {
	switch l.Type {
	case arrow.NULL:
		return "n"
	case arrow.BOOL:
		return "b"
	case arrow.INT8:
		return "c"
	case arrow.UINT8:
		return "C"
	case arrow.INT16:
		return "s"
	case arrow.UINT16:
		return "S"
	case arrow.INT32:
		return "i"
	case arrow.UINT32:
		return "I"
	case arrow.INT64:
		return "l"
	case arrow.UINT64:
		return "L"
	case arrow.FLOAT16:
		return "e"
	case arrow.FLOAT32:
		return "f"
	case arrow.FLOAT64:
		return "g"
	case arrow.STRING:
		return "u"
	case arrow.LARGE_STRING:
		return "U"
	case arrow.BINARY:
		return "z"
	case arrow.LARGE_BINARY:
		return "Z"
	case arrow.FIXED_SIZE_BINARY:
		return "w:" + strconv.Itoa(l.ByteWidth)
	case arrow.DATE32:
		return "tdD"
	case arrow.DATE64:
		return "tdm"
	case arrow.TIME32:
		return "tt" + unitPrefix(l.Unit)
	case arrow.TIME64:
		return "tt" + unitPrefix(l.Unit)
	case arrow.TIMESTAMP:
		return "ts" + unitPrefix(l.Unit) + ":" + l.TimeZone
	case arrow.DURATION:
		return "tD" + unitPrefix(l.Unit)
	case arrow.INTERVAL_MONTHS:
		return "tiM"
	case arrow.INTERVAL_DAY_TIME:
		return "tiD"
	case arrow.INTERVAL_MONTH_DAY_NANO:
		return "tin"
	case arrow.LIST:
		return "+l"
	case arrow.LARGE_LIST:
		return "+L"
	case arrow.FIXED_SIZE_LIST:
		return "+w:" + strconv.Itoa(l.ByteWidth)
	case arrow.STRUCT:
		return "+s"
	case arrow.MAP:
		return "+m"
	case arrow.RUN_END_ENCODED:
		return "+r"
	case arrow.DENSE_UNION, arrow.SPARSE_UNION:
		tag := "s"
		if l.UnionMode == arrow.DenseMode {
			tag = "d"
		}
		codes := make([]string, len(l.TypeCodes))
		for i, c := range l.TypeCodes {
			codes[i] = strconv.Itoa(int(c))
		}
		return "+u" + tag + ":" + strings.Join(codes, ",")
	}
	return ""
}

func unitPrefix(u arrow.TimeUnit) string {
	switch u {
	case arrow.Second:
		return "s"
	case arrow.Millisecond:
		return "m"
	case arrow.Microsecond:
		return "u"
	case arrow.Nanosecond:
		return "n"
	}
	return ""
}
