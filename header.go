// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"bytes"
	"encoding/binary"
)

// Header is the uniform view over the fixed header of every table file
// revision. The four common words follow the magic signature in all
// revisions; later revisions append fixed tails which are carried in Ext.
type Header struct {
	Version         Version
	RecordCount     uint32
	FieldCount      uint32
	RecordSize      uint32
	StringBlockSize uint32

	// Ext is nil for WDBC, HeaderExtV2 for WDB2/WDB3, HeaderExtV4 for
	// WDB4 and HeaderExtV5 for WDB5.
	Ext interface{}
}

// HeaderExtV2 is the block of seven fixed words introduced by WDB2.
type HeaderExtV2 struct {
	TableHash     uint32
	Build         uint32
	Timestamp     uint32
	MinID         uint32
	MaxID         uint32
	Locale        uint32
	CopyTableSize uint32
}

// HeaderExtV4 extends the WDB2 block with a flags word.
type HeaderExtV4 struct {
	HeaderExtV2
	Flags uint32
}

// HeaderExtV5 extends the WDB4 block with the index of the id field.
type HeaderExtV5 struct {
	HeaderExtV4
	IDIndex uint32
}

// ParseHeader reads the fixed header at the start of data, detecting the
// revision from the magic signature.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < 4 {
		return Header{}, ErrInvalidSignature
	}

	version, err := versionFromSignature(data[:4])
	if err != nil {
		return Header{}, err
	}

	size := version.headerSize()
	if uint32(len(data)) < size {
		return Header{}, ErrOutsideBoundary
	}

	hdr := Header{Version: version}
	r := bytes.NewReader(data[4:size])

	common := []interface{}{
		&hdr.RecordCount,
		&hdr.FieldCount,
		&hdr.RecordSize,
		&hdr.StringBlockSize,
	}
	for _, word := range common {
		if err := binary.Read(r, binary.LittleEndian, word); err != nil {
			return Header{}, err
		}
	}

	switch {
	case version >= VerWDB5:
		var ext HeaderExtV5
		if err := binary.Read(r, binary.LittleEndian, &ext); err != nil {
			return Header{}, err
		}
		hdr.Ext = ext
	case version >= VerWDB4:
		var ext HeaderExtV4
		if err := binary.Read(r, binary.LittleEndian, &ext); err != nil {
			return Header{}, err
		}
		hdr.Ext = ext
	case version >= VerWDB2:
		var ext HeaderExtV2
		if err := binary.Read(r, binary.LittleEndian, &ext); err != nil {
			return Header{}, err
		}
		hdr.Ext = ext
	}

	if hdr.RecordCount > 0 && hdr.RecordSize == 0 {
		return Header{}, ErrInvalidHeader
	}
	if hdr.RecordCount > 0 && hdr.FieldCount == 0 {
		return Header{}, ErrInvalidHeader
	}

	return hdr, nil
}

// HeaderSize returns the size in bytes of the fixed header, including
// the magic signature.
func (h Header) HeaderSize() uint32 {
	return h.Version.headerSize()
}

// RecordsOffset returns the file offset of the first record.
func (h Header) RecordsOffset() int64 {
	return int64(h.HeaderSize())
}

// StringBlockOffset returns the file offset of the pooled string region.
func (h Header) StringBlockOffset() int64 {
	return h.RecordsOffset() + int64(h.RecordCount)*int64(h.RecordSize)
}

// TotalSize returns the expected size of the whole file.
func (h Header) TotalSize() int64 {
	return h.StringBlockOffset() + int64(h.StringBlockSize)
}
