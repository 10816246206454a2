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
	"encoding/binary"

	"github.com/Alex-PLACET/sparrow/arrow"
	"golang.org/x/xerrors"
)

// EncodeMetadata encodes md into the C Data Interface's length-prefixed
// blob: int32 pair count, then for each pair an int32 key length + key
// bytes followed by an int32 value length + value bytes. Mirrors
// cdata.go's decodeCMetadata layout, in the write direction.
func EncodeMetadata(md arrow.Metadata) []byte {
	if md.Len() == 0 {
		return nil
	}

	size := 4
	for i := 0; i < md.Len(); i++ {
		size += 4 + len(md.Keys()[i]) + 4 + len(md.Values()[i])
	}

	buf := make([]byte, size)
	off := 0
	putInt32 := func(v int32) {
		binary.LittleEndian.PutUint32(buf[off:], uint32(v))
		off += 4
	}
	putStr := func(s string) {
		putInt32(int32(len(s)))
		copy(buf[off:], s)
		off += len(s)
	}

	putInt32(int32(md.Len()))
	for i := 0; i < md.Len(); i++ {
		putStr(md.Keys()[i])
		putStr(md.Values()[i])
	}
	return buf
}

// DecodeMetadata reverses EncodeMetadata. A nil or empty blob decodes to
// an empty Metadata, matching decodeCMetadata's "md == nil" case.
func DecodeMetadata(blob []byte) (arrow.Metadata, error) {
	if len(blob) == 0 {
		return arrow.Metadata{}, nil
	}

	readInt32 := func() (int32, error) {
		if len(blob) < 4 {
			return 0, xerrors.New("cdata: truncated metadata blob")
		}
		v := int32(binary.LittleEndian.Uint32(blob))
		blob = blob[4:]
		return v, nil
	}
	readStr := func() (string, error) {
		n, err := readInt32()
		if err != nil {
			return "", err
		}
		if n < 0 || int(n) > len(blob) {
			return "", xerrors.New("cdata: truncated metadata blob")
		}
		s := string(blob[:n])
		blob = blob[n:]
		return s, nil
	}

	npairs, err := readInt32()
	if err != nil {
		return arrow.Metadata{}, err
	}
	if npairs == 0 {
		return arrow.Metadata{}, nil
	}

	keys := make([]string, npairs)
	vals := make([]string, npairs)
	for i := int32(0); i < npairs; i++ {
		if keys[i], err = readStr(); err != nil {
			return arrow.Metadata{}, err
		}
		if vals[i], err = readStr(); err != nil {
			return arrow.Metadata{}, err
		}
	}
	return arrow.NewMetadata(keys, vals), nil
}
