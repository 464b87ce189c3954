// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"encoding/binary"
	"io"
)

// FieldType is the effective wire type of a field, derived from its
// column's base type and the field's declared width.
type FieldType uint8

const (
	FieldTypeInt8 FieldType = iota
	FieldTypeUint8
	FieldTypeInt16
	FieldTypeUint16
	FieldTypeInt32
	FieldTypeUint32
	FieldTypeInt64
	FieldTypeUint64
	FieldTypeFloat32
	FieldTypeBool
	FieldTypeString
)

// ByteSize returns the on-wire width of the type. String references are
// 32-bit offsets into the string block; booleans are 32-bit words.
func (t FieldType) ByteSize() int {
	switch t {
	case FieldTypeInt8, FieldTypeUint8:
		return 1
	case FieldTypeInt16, FieldTypeUint16:
		return 2
	case FieldTypeInt64, FieldTypeUint64:
		return 8
	}
	return 4
}

// wireType resolves a field against its column to the type read from
// the record body. Integer columns must pin their width in the
// definition; an unspecified width is a row-level decode error.
func wireType(col Column, size TypeSize) (FieldType, error) {
	switch col.Type {
	case BaseString, BaseLocString:
		return FieldTypeString, nil
	case BaseFloat:
		return FieldTypeFloat32, nil
	}

	switch size {
	case SizeInt8:
		return FieldTypeInt8, nil
	case SizeUint8:
		return FieldTypeUint8, nil
	case SizeInt16:
		return FieldTypeInt16, nil
	case SizeUint16:
		return FieldTypeUint16, nil
	case SizeInt32:
		return FieldTypeInt32, nil
	case SizeUint32:
		return FieldTypeUint32, nil
	case SizeInt64:
		return FieldTypeInt64, nil
	case SizeUint64:
		return FieldTypeUint64, nil
	}
	return 0, ErrUnspecifiedIntWidth
}

// Value is one decoded field value: a sized integer, float32, bool,
// sql.NullString for string references, or []Value for array fields.
// Arrays never nest.
type Value interface{}

// Record is an ordered sequence of values, one per field of the
// definition, in declaration order. Records are self-contained; decoded
// strings are copies.
type Record []Value

// RecordIterator is a single-pass, seek-driven decoder producing one
// record per step. It borrows its reader exclusively; multiple iterators
// over the same file need separate reader handles. An I/O failure is
// fatal to the iterator while a row-level decode error leaves it
// resumable at the next record.
type RecordIterator struct {
	r     io.ReadSeeker
	def   *Definition
	file  *File
	index uint32
	end   uint32
	fatal error
}

// NewRecordIterator returns an iterator over all records of the file.
func NewRecordIterator(r io.ReadSeeker, def *Definition, file *File) (*RecordIterator, error) {
	return NewRecordRange(r, def, file, 0, file.Header.RecordCount)
}

// NewRecordRange returns an iterator over the records in
// [start, start+count), clamped to the record count. Parallel consumers
// use it to decode disjoint chunks of one file over independent reader
// handles.
func NewRecordRange(r io.ReadSeeker, def *Definition, file *File, start, count uint32) (*RecordIterator, error) {
	end := start + count
	if end > file.Header.RecordCount {
		end = file.Header.RecordCount
	}

	it := &RecordIterator{
		r:     r,
		def:   def,
		file:  file,
		index: start,
		end:   end,
	}
	if _, err := r.Seek(file.Header.RecordsOffset()+int64(start)*int64(file.Header.RecordSize), io.SeekStart); err != nil {
		return nil, err
	}
	return it, nil
}

// Next decodes the next record. It returns io.EOF after the last
// record. A *DecodeError return reports a bad row; the iterator remains
// usable and the row index still advances. Any other error is an I/O
// failure and ends the iteration.
func (it *RecordIterator) Next() (Record, error) {
	if it.fatal != nil {
		return nil, it.fatal
	}
	if it.index >= it.end {
		return nil, io.EOF
	}

	// Seek to the exact row start so that rows with trailing padding, or
	// a previous row's decode error, do not shift subsequent rows.
	offset := it.file.Header.RecordsOffset() + int64(it.index)*int64(it.file.Header.RecordSize)
	if _, err := it.r.Seek(offset, io.SeekStart); err != nil {
		it.fatal = err
		return nil, err
	}

	row := it.index
	it.index++

	rec, err := it.decodeRecord(row)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (it *RecordIterator) decodeRecord(row uint32) (Record, error) {
	fields := it.def.Build.Fields
	rec := make(Record, 0, len(fields))

	for _, field := range fields {
		col := it.def.Columns[field.Name]

		typ, err := wireType(col, field.Size)
		if err != nil {
			return nil, &DecodeError{Row: row, Field: field.Name, Err: err}
		}

		if field.IsArray {
			arr := make([]Value, 0, field.ArraySize)
			for i := 0; i < field.ArraySize; i++ {
				v, err := it.decodeValue(row, field.Name, typ)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			rec = append(rec, arr)
			continue
		}

		v, err := it.decodeValue(row, field.Name, typ)
		if err != nil {
			return nil, err
		}
		rec = append(rec, v)
	}

	return rec, nil
}

// decodeValue reads one scalar from the current stream position. Reads
// are little-endian throughout.
func (it *RecordIterator) decodeValue(row uint32, name string, typ FieldType) (Value, error) {
	read := func(v interface{}) error {
		if err := binary.Read(it.r, binary.LittleEndian, v); err != nil {
			it.fatal = err
			return err
		}
		return nil
	}

	switch typ {
	case FieldTypeInt8:
		var v int8
		if err := read(&v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldTypeUint8:
		var v uint8
		if err := read(&v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldTypeInt16:
		var v int16
		if err := read(&v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldTypeUint16:
		var v uint16
		if err := read(&v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldTypeInt32:
		var v int32
		if err := read(&v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldTypeUint32:
		var v uint32
		if err := read(&v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldTypeInt64:
		var v int64
		if err := read(&v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldTypeUint64:
		var v uint64
		if err := read(&v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldTypeFloat32:
		var v float32
		if err := read(&v); err != nil {
			return nil, err
		}
		return v, nil
	case FieldTypeBool:
		var v uint32
		if err := read(&v); err != nil {
			return nil, err
		}
		return v != 0, nil
	case FieldTypeString:
		var off uint32
		if err := read(&off); err != nil {
			return nil, err
		}
		s, err := it.file.StringBlock.GetByOffset(off)
		if err != nil {
			return nil, &DecodeError{Row: row, Field: name, Err: err}
		}
		return s, nil
	}
	return nil, &DecodeError{Row: row, Field: name, Err: ErrUnspecifiedIntWidth}
}
