// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableDefinition(t *testing.T) {

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "primary key",
			content: `COLUMNS
int ID

BUILD 3.3.5.12340
$id$ID<32>
`,
			want: `CREATE TABLE t ("id" integer primary key)`,
		},
		{
			name: "scalar types",
			content: `COLUMNS
int ID
float Scale
string Name
locstring Title

BUILD 3.3.5.12340
$id$ID<32>
Scale
Name
Title
`,
			want: `CREATE TABLE t ("id" integer primary key,"scale" real,"name" text,"title" text)`,
		},
		{
			name: "array expansion",
			content: `COLUMNS
int Pos

BUILD 3.3.5.12340
Pos<32>[3]
`,
			want: `CREATE TABLE t ("pos_0" integer,"pos_1" integer,"pos_2" integer)`,
		},
		{
			name: "foreign key",
			content: `COLUMNS
int ID
int<Map::ID> MapID

BUILD 3.3.5.12340
$id$ID<32>
MapID<u32>
`,
			want: `CREATE TABLE t ("id" integer primary key,"mapid" integer,foreign key ("mapid") references map("id"))`,
		},
		{
			name: "foreign key per array column",
			content: `COLUMNS
int<Spell::ID> SpellID

BUILD 3.3.5.12340
SpellID<32>[2]
`,
			want: `CREATE TABLE t ("spellid_0" integer,"spellid_1" integer,` +
				`foreign key ("spellid_0") references spell("id"),` +
				`foreign key ("spellid_1") references spell("id"))`,
		},
		{
			name: "zero arity array",
			content: `COLUMNS
int ID
int Unused

BUILD 3.3.5.12340
$id$ID<32>
Unused<32>[0]
`,
			want: `CREATE TABLE t ("id" integer primary key)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := mustDefinition(t, wrathBuild, tt.content)

			got, err := TableDefinition(def, "t")
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTableDefinitionUnsupportedType(t *testing.T) {

	def := &Definition{
		Columns: map[string]Column{"Blob": {Name: "Blob", Type: "blob"}},
		Build:   BuildBlock{Fields: []Field{{Name: "Blob", Size: SizeInt32}}},
	}

	_, err := TableDefinition(def, "t")
	var defErr *TableDefinitionError
	require.ErrorAs(t, err, &defErr)
}

func TestInsertStatement(t *testing.T) {

	def := mustDefinition(t, wrathBuild, `COLUMNS
int ID
int Pos
string Name

BUILD 3.3.5.12340
$id$ID<32>
Pos<32>[3]
Name
`)

	got, err := InsertStatement(def, "t")
	require.NoError(t, err)
	require.Equal(t,
		`insert into t ("id","pos_0","pos_1","pos_2","name") values (?,?,?,?,?)`, got)
}

// DDL columns and insert placeholders always agree in count and order.
func TestEmittedColumnCountProperty(t *testing.T) {

	def := mustDefinition(t, wrathBuild, `COLUMNS
int ID
int<Item::ID> ItemID
float Pos
string Name

BUILD 3.3.5.12340
$id$ID<32>
ItemID<u32>[4]
Pos[3]
Name
`)

	want := 0
	for _, f := range def.Build.Fields {
		if f.IsArray {
			want += f.ArraySize
		} else {
			want++
		}
	}

	insert, err := InsertStatement(def, "t")
	require.NoError(t, err)
	require.Equal(t, want, strings.Count(insert, "?"))

	ddl, err := TableDefinition(def, "t")
	require.NoError(t, err)
	// One FK clause per expanded column of the foreign-keyed field.
	require.Equal(t, 4, strings.Count(ddl, "foreign key"))
}

func TestBindValues(t *testing.T) {

	rec := Record{
		int32(-5),
		uint8(7),
		sql.NullString{String: "hi", Valid: true},
		sql.NullString{},
		uint64(0xFFFFFFFFFFFFFFFF),
		true,
		[]Value{int16(1), int16(2)},
		float32(2.5),
	}

	got := BindValues(rec)
	require.Equal(t, []interface{}{
		int32(-5),
		uint8(7),
		"hi",
		"",
		"18446744073709551615",
		true,
		int16(1),
		int16(2),
		float32(2.5),
	}, got)
}

func TestBindValuesNestedArrayPanics(t *testing.T) {
	require.Panics(t, func() {
		BindValues(Record{[]Value{[]Value{int32(1)}}})
	})
}
