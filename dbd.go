// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"bufio"
	"strconv"
	"strings"
)

// Column base types accepted in the COLUMNS section of a definition.
// Any other type token is rejected when the relational schema is emitted.
const (
	BaseInt       = "int"
	BaseFloat     = "float"
	BaseString    = "string"
	BaseLocString = "locstring"
)

// ForeignKey is a (table, field) reference declared on a column.
type ForeignKey struct {
	Table string
	Field string
}

// Column is a typed declaration from the COLUMNS section of a
// definition. Column names are unique within a definition; a trailing
// "?" on the declared name marks the column optional and is stripped
// before indexing.
type Column struct {
	Name       string
	Type       string
	ForeignKey *ForeignKey
	Comment    string
	IsOptional bool
}

// TypeSize is the explicit on-wire width of an integer field, or
// SizeUnspecified when the definition leaves it open. String and float
// columns ignore it.
type TypeSize uint8

const (
	SizeUnspecified TypeSize = iota
	SizeInt8
	SizeUint8
	SizeInt16
	SizeUint16
	SizeInt32
	SizeUint32
	SizeInt64
	SizeUint64
)

// parseTypeSize maps the <N> token of a field line to a width. The
// documented grammar only lists widths up to 32 bits, but 64-bit fields
// occur in the wild and are accepted here; anything unrecognized stays
// unspecified.
func parseTypeSize(s string) TypeSize {
	switch s {
	case "8":
		return SizeInt8
	case "u8":
		return SizeUint8
	case "16":
		return SizeInt16
	case "u16":
		return SizeUint16
	case "32":
		return SizeInt32
	case "u32":
		return SizeUint32
	case "64":
		return SizeInt64
	case "u64":
		return SizeUint64
	}
	return SizeUnspecified
}

// Field is the per-build usage of a column: its position in the record,
// explicit width, array arity and key markers.
type Field struct {
	Name        string
	Size        TypeSize
	IsArray     bool
	ArraySize   int
	IsKey       bool
	IsRelation  bool
	IsNonInline bool
}

// BuildBlock is the matched BUILD section of a definition: the specs the
// block declared and the ordered fields active for the target build.
type BuildBlock struct {
	Versions []GameBuildSpec
	Fields   []Field
}

// Definition is a parsed DBD text narrowed to one target build.
type Definition struct {
	Columns map[string]Column
	Build   BuildBlock
}

// ParseDefinition consumes a definition text and selects the field list
// for the target build. The grammar is line oriented: one COLUMNS
// section, then BUILD blocks each optionally preceded by LAYOUT and
// COMMENT header lines. Scanning stops after the first matching block
// has been captured. ErrNoFieldsForBuild is returned when no block
// matches; the driver treats that as a recoverable skip.
func ParseDefinition(build GameBuild, content string) (*Definition, error) {
	columns := make(map[string]Column)

	var (
		section  string
		versions []GameBuildSpec
		fields   []Field
	)

	// 0 = searching, 1 = inside a matching BUILD header, 2 = capturing
	// that block's fields.
	state := 0

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

scan:
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue

		case line == "COLUMNS":
			section = "COLUMNS"
			continue

		case strings.HasPrefix(line, "BUILD "):
			if state == 2 {
				break scan
			}
			section = "BUILD"
			for _, token := range strings.Split(line[len("BUILD "):], ", ") {
				spec, err := parseBuildSpec(token)
				if err != nil {
					return nil, err
				}
				if spec.Contains(build) {
					state = 1
				}
				versions = append(versions, spec)
			}
			continue

		case strings.HasPrefix(line, "LAYOUT "):
			if state == 2 {
				break scan
			}
			continue

		case strings.HasPrefix(line, "COMMENT "):
			continue
		}

		switch {
		case section == "COLUMNS":
			if col, ok := parseColumnLine(line); ok {
				columns[strings.TrimRight(col.Name, "?")] = col
			}

		case section == "BUILD" && state >= 1:
			state = 2
			fields = append(fields, parseFieldLine(line))

		default:
			// A field line of a non-matching block; its BUILD specs are
			// of no further interest.
			versions = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsForBuild
	}

	def := &Definition{
		Columns: columns,
		Build: BuildBlock{
			Versions: versions,
			Fields:   fields,
		},
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// validate checks that every selected field resolves to a declared
// column.
func (d *Definition) validate() error {
	for _, field := range d.Build.Fields {
		if _, ok := d.Columns[field.Name]; !ok {
			return &SchemaError{Reason: "field references undeclared column " + field.Name}
		}
	}
	return nil
}

// parseColumnLine parses one declaration of the COLUMNS section:
//
//	TYPE[<ForeignTable::ForeignField>] name[?] [// comment]
//
// Lines that do not look like a declaration are skipped.
func parseColumnLine(line string) (Column, bool) {
	typeToken, rest, ok := strings.Cut(line, " ")
	if !ok {
		return Column{}, false
	}

	baseType := typeToken
	var fk *ForeignKey
	if angle := strings.Index(typeToken, "<"); angle != -1 {
		if end := strings.Index(typeToken, ">"); end != -1 {
			baseType = typeToken[:angle]
			if table, field, found := strings.Cut(typeToken[angle+1:end], "::"); found {
				fk = &ForeignKey{Table: table, Field: field}
			}
		}
	}

	rest = strings.TrimRight(rest, " \t")
	optional := strings.HasSuffix(rest, "?")
	rest = strings.TrimRight(rest, "?")

	name := rest
	comment := ""
	if pos := strings.Index(rest, "//"); pos != -1 {
		name = strings.TrimSpace(rest[:pos])
		comment = strings.TrimSpace(rest[pos+2:])
	} else {
		name = strings.TrimSpace(name)
	}

	return Column{
		Name:       name,
		Type:       baseType,
		ForeignKey: fk,
		Comment:    comment,
		IsOptional: optional,
	}, true
}

// parseFieldLine parses one field of a BUILD block:
//
//	[$id$|$noninline,id$|$relation$]name[<size>][[arity]]
//
// Tokens past the first whitespace after the name are discarded.
func parseFieldLine(line string) Field {
	var f Field

	switch {
	case strings.HasPrefix(line, "$id$"):
		f.IsKey = true
		line = line[len("$id$"):]
	case strings.HasPrefix(line, "$noninline,id$"):
		f.IsKey = true
		f.IsNonInline = true
		line = line[len("$noninline,id$"):]
	case strings.HasPrefix(line, "$relation$"):
		f.IsRelation = true
		line = line[len("$relation$"):]
	}

	// Strip the array suffix first; it may follow a type size.
	if open := strings.Index(line, "["); open != -1 {
		if end := strings.Index(line, "]"); end != -1 {
			f.IsArray = true
			if n, err := strconv.Atoi(line[open+1 : end]); err == nil {
				f.ArraySize = n
			}
			line = line[:open] + line[end+1:]
		}
	}

	if angle := strings.Index(line, "<"); angle != -1 {
		f.Name = line[:angle]
		if end := strings.Index(line, ">"); end != -1 {
			f.Size = parseTypeSize(line[angle+1 : end])
		}
	} else {
		f.Name = strings.TrimSpace(line)
	}

	if idx := strings.Index(f.Name, " "); idx != -1 {
		f.Name = f.Name[:idx]
	}

	return f
}
