// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"bytes"
	"database/sql"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustDefinition parses a definition fixture against a build, failing
// the test on error.
func mustDefinition(t *testing.T, build GameBuild, content string) *Definition {
	t.Helper()

	def, err := ParseDefinition(build, content)
	require.NoError(t, err)
	return def
}

var wrathBuild = GameBuild{3, 3, 5, 12340}

func TestRecordIteratorMinimal(t *testing.T) {

	def := mustDefinition(t, wrathBuild, `COLUMNS
int ID

BUILD 3.3.5.12340
$id$ID<32>
`)

	file := parseFixture(t, makeWDBC(1, 1, 4, appendU32(nil, 42), nil))

	iter, err := file.NewRecordIterator(def)
	require.NoError(t, err)

	rec, err := iter.Next()
	require.NoError(t, err)
	require.Equal(t, Record{int32(42)}, rec)

	_, err = iter.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestRecordIteratorFieldTypes(t *testing.T) {

	def := mustDefinition(t, wrathBuild, `COLUMNS
int ID
int Small
int Wide
float Scale
string Name

BUILD 3.3.5.12340
$id$ID<32>
Small<u8>
Wide<u64>
Scale
Name
`)

	rows := appendU32(nil, 7)
	rows = append(rows, 0xFF)                                // Small
	rows = appendU32(rows, 0xFFFFFFFF, 0xFFFFFFFF)           // Wide
	rows = appendU32(rows, math.Float32bits(1.5))            // Scale
	rows = appendU32(rows, 0)                                // Name
	file := parseFixture(t, makeWDBC(1, 5, uint32(len(rows)), rows, []byte("x\x00")))

	iter, err := file.NewRecordIterator(def)
	require.NoError(t, err)

	rec, err := iter.Next()
	require.NoError(t, err)
	require.Equal(t, Record{
		int32(7),
		uint8(0xFF),
		uint64(0xFFFFFFFFFFFFFFFF),
		float32(1.5),
		sql.NullString{String: "x", Valid: true},
	}, rec)
}

func TestRecordIteratorStringResolution(t *testing.T) {

	def := mustDefinition(t, wrathBuild, `COLUMNS
string Name

BUILD 3.3.5.12340
Name
`)

	block := []byte("hello\x00world\x00")
	rows := appendU32(nil, 6, 11)
	file := parseFixture(t, makeWDBC(2, 1, 4, rows, block))

	iter, err := file.NewRecordIterator(def)
	require.NoError(t, err)

	rec, err := iter.Next()
	require.NoError(t, err)
	require.Equal(t, Record{sql.NullString{String: "world", Valid: true}}, rec)

	// The final terminator starts no string: absent, not an error.
	rec, err = iter.Next()
	require.NoError(t, err)
	require.Equal(t, Record{sql.NullString{}}, rec)
}

func TestRecordIteratorArray(t *testing.T) {

	def := mustDefinition(t, wrathBuild, `COLUMNS
int Pos

BUILD 3.3.5.12340
Pos<32>[3]
`)

	rows := appendU32(nil, 1, 2, 3)
	file := parseFixture(t, makeWDBC(1, 3, 12, rows, nil))

	iter, err := file.NewRecordIterator(def)
	require.NoError(t, err)

	rec, err := iter.Next()
	require.NoError(t, err)
	require.Equal(t, Record{[]Value{int32(1), int32(2), int32(3)}}, rec)
}

func TestRecordIteratorZeroArityArray(t *testing.T) {

	def := mustDefinition(t, wrathBuild, `COLUMNS
int ID
int Unused

BUILD 3.3.5.12340
$id$ID<32>
Unused<32>[0]
`)

	file := parseFixture(t, makeWDBC(1, 1, 4, appendU32(nil, 9), nil))

	iter, err := file.NewRecordIterator(def)
	require.NoError(t, err)

	rec, err := iter.Next()
	require.NoError(t, err)
	require.Equal(t, Record{int32(9), []Value{}}, rec)
}

// Rows wider than their decoded fields are tolerated: the iterator
// re-seeks to the exact row start each step, skipping trailing padding.
func TestRecordIteratorPadding(t *testing.T) {

	def := mustDefinition(t, wrathBuild, `COLUMNS
int ID

BUILD 3.3.5.12340
$id$ID<32>
`)

	// record_size is 12 but only 4 bytes are decoded per row.
	rows := appendU32(nil, 1, 0xAAAAAAAA, 0xBBBBBBBB, 2, 0xCCCCCCCC, 0xDDDDDDDD)
	file := parseFixture(t, makeWDBC(2, 1, 12, rows, nil))

	iter, err := file.NewRecordIterator(def)
	require.NoError(t, err)

	var got []Record
	for {
		rec, err := iter.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, rec)
	}
	require.Equal(t, []Record{{int32(1)}, {int32(2)}}, got)
}

func TestRecordIteratorEmptyTable(t *testing.T) {

	def := mustDefinition(t, wrathBuild, `COLUMNS
int ID

BUILD 3.3.5.12340
$id$ID<32>
`)

	file := parseFixture(t, makeWDBC(0, 0, 0, nil, nil))

	iter, err := file.NewRecordIterator(def)
	require.NoError(t, err)

	_, err = iter.Next()
	require.ErrorIs(t, err, io.EOF)
}

// A bad row yields its error but iteration resumes on the next row.
func TestRecordIteratorRowErrorRecovery(t *testing.T) {

	def := mustDefinition(t, wrathBuild, `COLUMNS
string Name

BUILD 3.3.5.12340
Name
`)

	block := []byte("a\x00b\x00")
	rows := appendU32(nil, 0, 4000, 2)
	file := parseFixture(t, makeWDBC(3, 1, 4, rows, block))

	iter, err := file.NewRecordIterator(def)
	require.NoError(t, err)

	rec, err := iter.Next()
	require.NoError(t, err)
	require.Equal(t, Record{sql.NullString{String: "a", Valid: true}}, rec)

	_, err = iter.Next()
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.EqualValues(t, 1, decodeErr.Row)
	require.ErrorIs(t, err, ErrStringOutOfBounds)

	rec, err = iter.Next()
	require.NoError(t, err)
	require.Equal(t, Record{sql.NullString{String: "b", Valid: true}}, rec)

	_, err = iter.Next()
	require.ErrorIs(t, err, io.EOF)
}

// An integer field with no declared width fails the row, not the
// iterator.
func TestRecordIteratorUnspecifiedWidth(t *testing.T) {

	def := mustDefinition(t, wrathBuild, `COLUMNS
int ID

BUILD 3.3.5.12340
$id$ID
`)

	file := parseFixture(t, makeWDBC(1, 1, 4, appendU32(nil, 1), nil))

	iter, err := file.NewRecordIterator(def)
	require.NoError(t, err)

	_, err = iter.Next()
	require.ErrorIs(t, err, ErrUnspecifiedIntWidth)

	_, err = iter.Next()
	require.ErrorIs(t, err, io.EOF)
}

// Flattened record width equals the sum of field arities.
func TestRecordWidthProperty(t *testing.T) {

	def := mustDefinition(t, wrathBuild, `COLUMNS
int ID
int Flags
float Pos
string Name

BUILD 3.3.5.12340
$id$ID<32>
Flags<u16>[4]
Pos[3]
Name
`)

	rows := appendU32(nil, 1)
	rows = append(rows, make([]byte, 4*2)...)  // Flags
	rows = append(rows, make([]byte, 3*4)...)  // Pos
	rows = appendU32(rows, 0)                  // Name
	file := parseFixture(t, makeWDBC(1, 9, uint32(len(rows)), rows, []byte("\x00")))

	iter, err := file.NewRecordIterator(def)
	require.NoError(t, err)

	rec, err := iter.Next()
	require.NoError(t, err)

	want := 0
	for _, f := range def.Build.Fields {
		if f.IsArray {
			want += f.ArraySize
		} else {
			want++
		}
	}
	require.Equal(t, want, len(BindValues(rec)))
}

func TestFieldTypeByteSize(t *testing.T) {

	tests := []struct {
		typ  FieldType
		want int
	}{
		{FieldTypeInt8, 1},
		{FieldTypeUint8, 1},
		{FieldTypeInt16, 2},
		{FieldTypeUint16, 2},
		{FieldTypeInt32, 4},
		{FieldTypeUint32, 4},
		{FieldTypeInt64, 8},
		{FieldTypeUint64, 8},
		{FieldTypeFloat32, 4},
		{FieldTypeBool, 4},
		{FieldTypeString, 4},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.typ.ByteSize())
	}
}

// A range-bounded iterator decodes exactly its chunk, positioned by
// absolute row index.
func TestRecordRange(t *testing.T) {

	def := mustDefinition(t, wrathBuild, `COLUMNS
int ID

BUILD 3.3.5.12340
$id$ID<32>
`)

	rows := appendU32(nil, 10, 11, 12, 13, 14)
	data := makeWDBC(5, 1, 4, rows, nil)
	file := parseFixture(t, data)

	iter, err := NewRecordRange(bytes.NewReader(data), def, file, 2, 2)
	require.NoError(t, err)

	var got []int32
	for {
		rec, err := iter.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, rec[0].(int32))
	}
	require.Equal(t, []int32{12, 13}, got)

	// A range past the end clamps to the record count.
	iter, err = NewRecordRange(bytes.NewReader(data), def, file, 4, 10)
	require.NoError(t, err)

	rec, err := iter.Next()
	require.NoError(t, err)
	require.Equal(t, Record{int32(14)}, rec)

	_, err = iter.Next()
	require.ErrorIs(t, err, io.EOF)
}
