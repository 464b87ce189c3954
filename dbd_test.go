// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const areaDefinition = `COLUMNS
int ID
int<AreaTable::ID> ParentAreaID
string AreaName_lang
locstring Description_lang?
float AmbientMultiplier // some factor
int Flags

LAYOUT 35D94EE1
BUILD 3.3.5.12340
$id$ID<32>
ParentAreaID<u32>
AreaName_lang
AmbientMultiplier
Flags<32>[2]

LAYOUT F22D10E1
COMMENT cataclysm revision
BUILD 4.0.0.0-4.3.4.15595
$id$ID<32>
AreaName_lang
Description_lang
Flags<u16>
`

func TestParseDefinitionColumns(t *testing.T) {

	def, err := ParseDefinition(GameBuild{3, 3, 5, 12340}, areaDefinition)
	require.NoError(t, err)

	tests := []struct {
		name string
		want Column
	}{
		{"ID", Column{Name: "ID", Type: BaseInt}},
		{"ParentAreaID", Column{
			Name:       "ParentAreaID",
			Type:       BaseInt,
			ForeignKey: &ForeignKey{Table: "AreaTable", Field: "ID"},
		}},
		{"AreaName_lang", Column{Name: "AreaName_lang", Type: BaseString}},
		{"Description_lang", Column{Name: "Description_lang", Type: BaseLocString, IsOptional: true}},
		{"AmbientMultiplier", Column{Name: "AmbientMultiplier", Type: BaseFloat, Comment: "some factor"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := def.Columns[tt.name]
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseDefinitionFieldSelection(t *testing.T) {

	def, err := ParseDefinition(GameBuild{3, 3, 5, 12340}, areaDefinition)
	require.NoError(t, err)

	want := []Field{
		{Name: "ID", Size: SizeInt32, IsKey: true},
		{Name: "ParentAreaID", Size: SizeUint32},
		{Name: "AreaName_lang"},
		{Name: "AmbientMultiplier"},
		{Name: "Flags", Size: SizeInt32, IsArray: true, ArraySize: 2},
	}
	require.Equal(t, want, def.Build.Fields)
	require.Equal(t, []GameBuildSpec{SingleBuild(GameBuild{3, 3, 5, 12340})}, def.Build.Versions)
}

// A build inside the declared range selects that block and scanning
// stops after the first match.
func TestParseDefinitionRangeSelection(t *testing.T) {

	def, err := ParseDefinition(GameBuild{4, 2, 0, 14333}, areaDefinition)
	require.NoError(t, err)

	want := []Field{
		{Name: "ID", Size: SizeInt32, IsKey: true},
		{Name: "AreaName_lang"},
		{Name: "Description_lang"},
		{Name: "Flags", Size: SizeUint16},
	}
	require.Equal(t, want, def.Build.Fields)
	require.Equal(t,
		[]GameBuildSpec{BuildRange(GameBuild{4, 0, 0, 0}, GameBuild{4, 3, 4, 15595})},
		def.Build.Versions)
}

func TestParseDefinitionNoFieldsForBuild(t *testing.T) {
	_, err := ParseDefinition(GameBuild{1, 12, 1, 5875}, areaDefinition)
	require.ErrorIs(t, err, ErrNoFieldsForBuild)
}

func TestParseDefinitionMalformedBuild(t *testing.T) {
	_, err := ParseDefinition(GameBuild{3, 3, 5, 12340}, "COLUMNS\nint ID\n\nBUILD 3.3.x.12340\nID<32>\n")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoFieldsForBuild)
}

// Multiple comma-separated specs on one BUILD line and consecutive
// BUILD header lines both attach to the same block.
func TestParseDefinitionMultiSpecBlock(t *testing.T) {

	content := `COLUMNS
int ID

BUILD 1.12.1.5875, 2.4.3.8606
BUILD 3.0.2.9056-3.3.5.12340
$id$ID<32>
`
	def, err := ParseDefinition(GameBuild{3, 2, 0, 10192}, content)
	require.NoError(t, err)
	require.Len(t, def.Build.Versions, 3)
	require.Equal(t, []Field{{Name: "ID", Size: SizeInt32, IsKey: true}}, def.Build.Fields)
}

func TestParseDefinitionFieldMarkers(t *testing.T) {

	content := `COLUMNS
int ID
int OrderIndex
int PlayerConditionID

BUILD 9.0.1.33978
$noninline,id$ID<32>
OrderIndex<8>
$relation$PlayerConditionID<u32>
`
	def, err := ParseDefinition(GameBuild{9, 0, 1, 33978}, content)
	require.NoError(t, err)

	want := []Field{
		{Name: "ID", Size: SizeInt32, IsKey: true, IsNonInline: true},
		{Name: "OrderIndex", Size: SizeInt8},
		{Name: "PlayerConditionID", Size: SizeUint32, IsRelation: true},
	}
	require.Equal(t, want, def.Build.Fields)
}

func TestParseDefinitionUndeclaredColumn(t *testing.T) {

	content := `COLUMNS
int ID

BUILD 3.3.5.12340
$id$ID<32>
Mystery<32>
`
	_, err := ParseDefinition(GameBuild{3, 3, 5, 12340}, content)
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestParseTypeSize(t *testing.T) {

	tests := []struct {
		in   string
		want TypeSize
	}{
		{"8", SizeInt8},
		{"u8", SizeUint8},
		{"16", SizeInt16},
		{"u16", SizeUint16},
		{"32", SizeInt32},
		{"u32", SizeUint32},
		{"64", SizeInt64},
		{"u64", SizeUint64},
		{"128", SizeUnspecified},
		{"", SizeUnspecified},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, parseTypeSize(tt.in), "size token %q", tt.in)
	}
}

func TestParseFieldLineTrailingTokens(t *testing.T) {
	f := parseFieldLine("SoundID<u32> // overridden in patch data")
	require.Equal(t, Field{Name: "SoundID", Size: SizeUint32}, f)

	f = parseFieldLine("Name_lang stray tokens")
	require.Equal(t, Field{Name: "Name_lang"}, f)
}
