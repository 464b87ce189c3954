// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// appendU32 appends one little-endian word to a fixture buffer.
func appendU32(b []byte, vals ...uint32) []byte {
	for _, v := range vals {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	return b
}

// makeWDBC assembles a minimal v1 table file from raw row data and a
// string block.
func makeWDBC(recordCount, fieldCount, recordSize uint32, rows, stringBlock []byte) []byte {
	b := []byte(SignatureWDBC)
	b = appendU32(b, recordCount, fieldCount, recordSize, uint32(len(stringBlock)))
	b = append(b, rows...)
	b = append(b, stringBlock...)
	return b
}

// makeWDB5 assembles a v5 table file with the extended header words.
func makeWDB5(recordCount, fieldCount, recordSize uint32, ext HeaderExtV5, rows, stringBlock []byte) []byte {
	b := []byte(SignatureWDB5)
	b = appendU32(b, recordCount, fieldCount, recordSize, uint32(len(stringBlock)),
		ext.TableHash, ext.Build, ext.Timestamp, ext.MinID, ext.MaxID,
		ext.Locale, ext.CopyTableSize, ext.Flags, ext.IDIndex)
	b = append(b, rows...)
	b = append(b, stringBlock...)
	return b
}

// parseFixture builds a File from fixture bytes, failing the test on
// any parse error.
func parseFixture(t *testing.T, data []byte) *File {
	t.Helper()

	file, err := NewBytes(data, nil)
	require.NoError(t, err)
	require.NoError(t, file.Parse())
	return file
}

func TestVersionFromSignature(t *testing.T) {

	tests := []struct {
		in   string
		want Version
	}{
		{SignatureWDBC, VerWDBC},
		{SignatureWDB2, VerWDB2},
		{SignatureWDB3, VerWDB3},
		{SignatureWDB4, VerWDB4},
		{SignatureWDB5, VerWDB5},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := versionFromSignature([]byte(tt.in))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.in, got.String())
		})
	}

	_, err := versionFromSignature([]byte("WDB9"))
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVersionHeaderSize(t *testing.T) {

	tests := []struct {
		version Version
		want    uint32
	}{
		{VerWDBC, 20},
		{VerWDB2, 48},
		{VerWDB3, 48},
		{VerWDB4, 52},
		{VerWDB5, 56},
	}

	for _, tt := range tests {
		t.Run(tt.version.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.version.headerSize())
		})
	}
}
