// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"database/sql"
	"strings"
)

// StringBlock indexes the pooled string region at the tail of a table
// file. The region is a concatenation of null-terminated UTF-8 strings;
// record fields address them by the byte offset of their first byte.
type StringBlock struct {
	size    uint32
	strings []string
	offsets map[uint32]int
}

// NewStringBlock scans the raw region once and builds the offset index.
// Invalid UTF-8 sequences are replaced rather than rejected; real-world
// files contain them.
func NewStringBlock(data []byte) *StringBlock {
	parts := strings.Split(string(data), "\x00")

	sb := &StringBlock{
		size:    uint32(len(data)),
		strings: make([]string, len(parts)),
		offsets: make(map[uint32]int, len(parts)),
	}

	offset := uint32(0)
	for i, part := range parts {
		sb.strings[i] = strings.ToValidUTF8(part, "�")
		sb.offsets[offset] = i
		offset += uint32(len(part)) + 1
	}
	return sb
}

// Size returns the size in bytes of the indexed region.
func (sb *StringBlock) Size() uint32 {
	return sb.size
}

// GetByOffset returns the string starting at exactly the given byte
// offset. An offset where no string starts resolves to an absent string
// rather than an error; real files carry offsets pointing into the
// middle of a pooled string. Offsets beyond the region are an error.
func (sb *StringBlock) GetByOffset(offset uint32) (sql.NullString, error) {
	if sb.size == 0 {
		return sql.NullString{}, nil
	}
	if offset >= sb.size {
		return sql.NullString{}, ErrStringOutOfBounds
	}

	idx, ok := sb.offsets[offset]
	if !ok {
		return sql.NullString{}, nil
	}
	return sql.NullString{String: sb.strings[idx], Valid: true}, nil
}
