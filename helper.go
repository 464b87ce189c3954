// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"errors"
	"fmt"
)

// Errors
var (

	// ErrInvalidSignature is returned when the four magic bytes do not
	// match any known table file revision.
	ErrInvalidSignature = errors.New("not a client database file, magic signature not found")

	// ErrInvalidHeader is returned when the fixed header words are
	// inconsistent, for example a positive record count with a zero
	// record size.
	ErrInvalidHeader = errors.New("invalid table file header")

	// ErrUnknownTable is returned by the definition catalog when a file
	// name does not resolve to any known table.
	ErrUnknownTable = errors.New("table is not present in the definition catalog")

	// ErrNoFieldsForBuild is returned when no BUILD block of a definition
	// matches the target game build.
	ErrNoFieldsForBuild = errors.New("no field definitions were found for the specified build")

	// ErrUnspecifiedIntWidth is returned at decode time when an integer
	// field carries no explicit width in its definition.
	ErrUnspecifiedIntWidth = errors.New("integer field width is not specified by the definition")

	// ErrStringOutOfBounds is returned when a string offset points past
	// the end of the string block.
	ErrStringOutOfBounds = errors.New("string offset beyond string block")

	// ErrOutsideBoundary is reported when attempting to read beyond the
	// end of the file data.
	ErrOutsideBoundary = errors.New("reading data outside boundary")
)

// SchemaError reports a definition that is internally inconsistent, such
// as a build field referencing a column that was never declared.
type SchemaError struct {
	Table  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("schema validation: %s", e.Reason)
	}
	return fmt.Sprintf("schema validation for %s: %s", e.Table, e.Reason)
}

// DecodeError reports a row that could not be decoded. The iterator
// stays usable after yielding one; callers log it and move on.
type DecodeError struct {
	Row   uint32
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("row %d field %q: %v", e.Row, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
