// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// TableDefinitionError reports a definition that cannot be expressed as
// a relational table, such as an unsupported column base type. It is
// fatal to a conversion run.
type TableDefinitionError struct {
	Reason string
}

func (e *TableDefinitionError) Error() string {
	return "generating table definition: " + e.Reason
}

// baseTypeToSQLite maps a column base type to its SQLite column type.
func baseTypeToSQLite(baseType string) (string, error) {
	switch baseType {
	case BaseString, BaseLocString:
		return "text", nil
	case BaseInt:
		return "integer", nil
	case BaseFloat:
		return "real", nil
	}
	return "", &TableDefinitionError{Reason: "unsupported base type " + baseType}
}

// TableDefinition derives the CREATE TABLE statement for a definition.
// Column identifiers are the lowercased field names, quoted; an array
// field of arity N expands to N columns named name_0..name_{N-1}, with
// the column's foreign key repeated on each. The table name itself is
// not quoted.
func TableDefinition(def *Definition, tableName string) (string, error) {
	var cols, fks []string

	for _, field := range def.Build.Fields {
		name := strings.ToLower(field.Name)

		col, ok := def.Columns[field.Name]
		if !ok {
			return "", &TableDefinitionError{Reason: "column not found: " + field.Name}
		}

		sqlType, err := baseTypeToSQLite(col.Type)
		if err != nil {
			return "", err
		}

		if field.IsArray {
			for i := 0; i < field.ArraySize; i++ {
				cols = append(cols, fmt.Sprintf("%q %s", fmt.Sprintf("%s_%d", name, i), sqlType))
				if col.ForeignKey != nil {
					fks = append(fks, fmt.Sprintf("foreign key (\"%s_%d\") references %s(%q)",
						name, i,
						strings.ToLower(col.ForeignKey.Table),
						strings.ToLower(col.ForeignKey.Field)))
				}
			}
			continue
		}

		keyClause := ""
		if field.IsKey {
			keyClause = " primary key"
		}
		cols = append(cols, fmt.Sprintf("%q %s%s", name, sqlType, keyClause))

		if col.ForeignKey != nil {
			fks = append(fks, fmt.Sprintf("foreign key (%q) references %s(%q)",
				name,
				strings.ToLower(col.ForeignKey.Table),
				strings.ToLower(col.ForeignKey.Field)))
		}
	}

	sep := ""
	if len(fks) > 0 {
		sep = ","
	}
	return fmt.Sprintf("CREATE TABLE %s (%s%s%s)",
		tableName, strings.Join(cols, ","), sep, strings.Join(fks, ",")), nil
}

// InsertStatement derives the parameterized insert matching
// TableDefinition, with one placeholder per emitted column in the same
// order.
func InsertStatement(def *Definition, tableName string) (string, error) {
	var cols, params []string

	for _, field := range def.Build.Fields {
		if _, ok := def.Columns[field.Name]; !ok {
			return "", &TableDefinitionError{Reason: "column not found: " + field.Name}
		}

		name := strings.ToLower(field.Name)

		if field.IsArray {
			for i := 0; i < field.ArraySize; i++ {
				cols = append(cols, fmt.Sprintf("\"%s_%d\"", name, i))
				params = append(params, "?")
			}
			continue
		}

		cols = append(cols, strconv.Quote(name))
		params = append(params, "?")
	}

	return fmt.Sprintf("insert into %s (%s) values (%s)",
		tableName, strings.Join(cols, ","), strings.Join(params, ",")), nil
}

// BindValues flattens a decoded record into the bind parameters of the
// insert statement. Arrays flatten one level, in element order; a nested
// array is a programming error. Unsigned 64-bit integers bind as decimal
// text to avoid signed-range truncation in the engine.
func BindValues(rec Record) []interface{} {
	params := make([]interface{}, 0, len(rec))
	for _, v := range rec {
		if arr, ok := v.([]Value); ok {
			for _, elem := range arr {
				if _, nested := elem.([]Value); nested {
					panic("dbc: nested array value")
				}
				params = append(params, bindValue(elem))
			}
			continue
		}
		params = append(params, bindValue(v))
	}
	return params
}

func bindValue(v Value) interface{} {
	switch val := v.(type) {
	case sql.NullString:
		if !val.Valid {
			return ""
		}
		return val.String
	case uint64:
		return strconv.FormatUint(val, 10)
	}
	return v
}
