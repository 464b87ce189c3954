// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHeaderWDBC(t *testing.T) {

	data := makeWDBC(2, 3, 12, make([]byte, 24), []byte("a\x00"))

	hdr, err := ParseHeader(data)
	require.NoError(t, err)

	require.Equal(t, Header{
		Version:         VerWDBC,
		RecordCount:     2,
		FieldCount:      3,
		RecordSize:      12,
		StringBlockSize: 2,
	}, hdr)

	require.EqualValues(t, 20, hdr.RecordsOffset())
	require.EqualValues(t, 44, hdr.StringBlockOffset())
	require.EqualValues(t, 46, hdr.TotalSize())
}

func TestParseHeaderWDB2(t *testing.T) {

	b := []byte(SignatureWDB2)
	b = appendU32(b, 1, 1, 4, 0,
		0xDEADBEEF, 12340, 0x60000000, 1, 7, 0xFFFFFFFF, 0)
	b = append(b, make([]byte, 4)...)

	hdr, err := ParseHeader(b)
	require.NoError(t, err)

	require.Equal(t, VerWDB2, hdr.Version)
	require.Equal(t, HeaderExtV2{
		TableHash: 0xDEADBEEF,
		Build:     12340,
		Timestamp: 0x60000000,
		MinID:     1,
		MaxID:     7,
		Locale:    0xFFFFFFFF,
	}, hdr.Ext)
	require.EqualValues(t, 48, hdr.RecordsOffset())
}

func TestParseHeaderWDB5(t *testing.T) {

	ext := HeaderExtV5{
		HeaderExtV4: HeaderExtV4{
			HeaderExtV2: HeaderExtV2{TableHash: 1, Build: 21742, MinID: 3, MaxID: 9},
			Flags:       0x4,
		},
		IDIndex: 0,
	}
	data := makeWDB5(1, 2, 8, ext, make([]byte, 8), nil)

	hdr, err := ParseHeader(data)
	require.NoError(t, err)

	require.Equal(t, VerWDB5, hdr.Version)
	require.Equal(t, ext, hdr.Ext)
	require.EqualValues(t, 56, hdr.RecordsOffset())
	require.EqualValues(t, 64, hdr.StringBlockOffset())
}

func TestParseHeaderErrors(t *testing.T) {

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrInvalidSignature},
		{"bad magic", []byte("MPQ\x1a\x00\x00\x00\x00"), ErrInvalidSignature},
		{"truncated", []byte(SignatureWDBC), ErrOutsideBoundary},
		{"zero record size", makeWDBC(3, 1, 0, nil, nil), ErrInvalidHeader},
		{"zero field count", makeWDBC(3, 0, 4, make([]byte, 12), nil), ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHeader(tt.data)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

// Zero records with zero sizes is a valid, empty table.
func TestParseHeaderEmptyTable(t *testing.T) {
	hdr, err := ParseHeader(makeWDBC(0, 0, 0, nil, nil))
	require.NoError(t, err)
	require.Zero(t, hdr.RecordCount)
	require.EqualValues(t, 20, hdr.StringBlockOffset())
}

// The string block offset always equals header size plus the record
// body, across revisions.
func TestStringBlockOffsetProperty(t *testing.T) {

	versions := []Version{VerWDBC, VerWDB2, VerWDB3, VerWDB4, VerWDB5}
	counts := []uint32{0, 1, 7, 1000}
	sizes := []uint32{4, 16, 68}

	for _, v := range versions {
		for _, count := range counts {
			for _, size := range sizes {
				hdr := Header{Version: v, RecordCount: count, RecordSize: size}
				require.EqualValues(t,
					int64(v.headerSize())+int64(count)*int64(size),
					hdr.StringBlockOffset())
			}
		}
	}
}

func TestFileParse(t *testing.T) {

	rows := appendU32(nil, 42)
	file := parseFixture(t, makeWDBC(1, 1, 4, rows, []byte("x\x00")))

	require.Equal(t, VerWDBC, file.Header.Version)
	require.EqualValues(t, 2, file.StringBlock.Size())
}

func TestFileParseTruncatedBody(t *testing.T) {

	// Header promises one 8-byte record (and an empty string block), but
	// the body is missing.
	data := makeWDBC(1, 2, 8, nil, nil)

	file, err := NewBytes(data, nil)
	require.NoError(t, err)
	require.ErrorIs(t, file.Parse(), ErrOutsideBoundary)
}
