// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"database/sql"
	"fmt"
	"io"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// rowResult carries one decoded row out of a worker. err is a row-level
// decode failure; worker-fatal failures fail the chunk instead.
type rowResult struct {
	rec Record
	err error
}

// streamParallel splits the file into contiguous row chunks, one per
// unit of available parallelism, decodes the chunks concurrently over
// independent reader handles and drains the results into the prepared
// insert in chunk order. Concatenation in chunk order reproduces the
// physical row order, so the inserted rows match the sequential path.
func streamParallel(fs afero.Fs, stmt *sql.Stmt, def *Definition, file *File,
	tableName, path string, logger *zap.Logger) error {

	recordCount := file.Header.RecordCount
	if recordCount == 0 {
		return nil
	}

	workers := uint32(runtime.GOMAXPROCS(0))
	if workers > recordCount {
		workers = recordCount
	}
	chunkSize := (recordCount + workers - 1) / workers

	chunks := make([][]rowResult, workers)
	var g errgroup.Group

	for i := uint32(0); i < workers; i++ {
		i := i
		g.Go(func() error {
			start := i * chunkSize
			if start >= recordCount {
				return nil
			}
			count := chunkSize
			if start+count > recordCount {
				count = recordCount - start
			}

			// Each worker owns an independent handle; iterators never
			// share a cursor.
			handle, err := fs.Open(path)
			if err != nil {
				return err
			}
			defer handle.Close()

			iter, err := NewRecordRange(handle, def, file, start, count)
			if err != nil {
				return err
			}

			results := make([]rowResult, 0, count)
			for {
				rec, err := iter.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					var decodeErr *DecodeError
					if errors.As(err, &decodeErr) {
						results = append(results, rowResult{err: err})
						continue
					}
					return err
				}
				results = append(results, rowResult{rec: rec})
			}

			chunks[i] = results
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Wrapf(err, "parallel decode of %s", path)
	}

	idx := 0
	for _, chunk := range chunks {
		for _, res := range chunk {
			if res.err != nil {
				logger.Warn(fmt.Sprintf("%s: item %d parse failed: %v", tableName, idx, res.err))
				idx++
				continue
			}
			if _, err := stmt.Exec(BindValues(res.rec)...); err != nil {
				return &engineError{err: errors.Wrapf(err, "inserting into %s", tableName)}
			}
			idx++
		}
	}
	return nil
}
