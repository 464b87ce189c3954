// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package dbc reads the family of client-side database table files used
// by the World of Warcraft client (WDBC, WDB2 and later signatures) and
// bulk-converts them into a SQLite database, one table per input file.
//
// A table file stores a single fixed-width table: a binary header, a body
// of equal-width rows and a pooled string block addressed by 32-bit
// offsets. The physical layout is not self-describing; the meaning and
// width of every column comes from a versioned definition (DBD) text that
// this package parses and matches against a target game build.
package dbc

// Magic signatures of the client database family. The four bytes at
// offset zero of every table file select the header layout.
const (
	// SignatureWDBC identifies the original vanilla-era format.
	SignatureWDBC = "WDBC"

	// SignatureWDB2 adds a block of seven fixed header words.
	SignatureWDB2 = "WDB2"

	// SignatureWDB3 shares the WDB2 layout.
	SignatureWDB3 = "WDB3"

	// SignatureWDB4 adds a flags word on top of the WDB2 layout.
	SignatureWDB4 = "WDB4"

	// SignatureWDB5 adds the index of the id field on top of WDB4.
	SignatureWDB5 = "WDB5"
)

// Version identifies the on-disk revision of a table file header.
type Version uint8

// Header revisions in signature order.
const (
	VerWDBC Version = iota + 1
	VerWDB2
	VerWDB3
	VerWDB4
	VerWDB5
)

// versionFromSignature maps the four magic bytes to a header revision.
func versionFromSignature(magic []byte) (Version, error) {
	switch string(magic) {
	case SignatureWDBC:
		return VerWDBC, nil
	case SignatureWDB2:
		return VerWDB2, nil
	case SignatureWDB3:
		return VerWDB3, nil
	case SignatureWDB4:
		return VerWDB4, nil
	case SignatureWDB5:
		return VerWDB5, nil
	}
	return 0, ErrInvalidSignature
}

// String returns the magic signature of the revision.
func (v Version) String() string {
	switch v {
	case VerWDBC:
		return SignatureWDBC
	case VerWDB2:
		return SignatureWDB2
	case VerWDB3:
		return SignatureWDB3
	case VerWDB4:
		return SignatureWDB4
	case VerWDB5:
		return SignatureWDB5
	}
	return "WDB?"
}

// headerSize returns the size in bytes of the fixed header for the
// revision, including the magic signature.
func (v Version) headerSize() uint32 {
	size := uint32(4 + 4*4)
	if v >= VerWDB2 {
		size += 7 * 4
	}
	if v >= VerWDB4 {
		size += 4
	}
	if v >= VerWDB5 {
		size += 4
	}
	return size
}
