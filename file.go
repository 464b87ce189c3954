// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"bytes"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"go.uber.org/zap"
)

// A File represents an open client database table file.
type File struct {
	Header      Header
	StringBlock *StringBlock

	data   []byte
	mapped mmap.MMap
	f      *os.File
	size   uint32
	opts   *Options
	logger *zap.Logger
}

// Options for parsing.
type Options struct {

	// A custom logger. Defaults to a no-op logger.
	Logger *zap.Logger
}

// New instantiates a file instance with options given a file name.
func New(name string, opts *Options) (*File, error) {

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	// Memory map the file instead of using read/write.
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	file := newFile(data, opts)
	file.mapped = data
	file.f = f
	return file, nil
}

// NewBytes instantiates a file instance with options given a memory
// buffer.
func NewBytes(data []byte, opts *Options) (*File, error) {
	return newFile(data, opts), nil
}

func newFile(data []byte, opts *Options) *File {
	file := &File{}
	if opts != nil {
		file.opts = opts
	} else {
		file.opts = &Options{}
	}

	if file.opts.Logger != nil {
		file.logger = file.opts.Logger
	} else {
		file.logger = zap.NewNop()
	}

	file.data = data
	file.size = uint32(len(data))
	return file
}

// Parse reads the header, dispatches on the magic signature and indexes
// the string block. It must be called before records are iterated.
func (file *File) Parse() error {

	hdr, err := ParseHeader(file.data)
	if err != nil {
		return err
	}

	blockOffset := hdr.StringBlockOffset()
	blockEnd := blockOffset + int64(hdr.StringBlockSize)
	if blockEnd > int64(file.size) {
		return ErrOutsideBoundary
	}

	file.Header = hdr
	file.StringBlock = NewStringBlock(file.data[blockOffset:blockEnd])

	file.logger.Debug("parsed table file header",
		zap.String("version", hdr.Version.String()),
		zap.Uint32("records", hdr.RecordCount),
		zap.Uint32("record_size", hdr.RecordSize))
	return nil
}

// NewRecordIterator returns a lazy iterator over all records of the
// file, decoded against the given definition. Each call returns a fresh
// iterator positioned at the first record.
func (file *File) NewRecordIterator(def *Definition) (*RecordIterator, error) {
	return NewRecordIterator(bytes.NewReader(file.data), def, file)
}

// Close unmaps the underlying file data when the file was memory mapped.
func (file *File) Close() error {
	var err error
	if file.mapped != nil {
		err = file.mapped.Unmap()
		file.mapped = nil
	}
	if file.f != nil {
		if cerr := file.f.Close(); err == nil {
			err = cerr
		}
		file.f = nil
	}
	return err
}
