// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// Fetcher yields the text of the definition with the given canonical
// name, for example "Achievement.dbd". Implementations may serve from a
// cache, the network or a fixture; the converter treats them the same.
type Fetcher func(definitionName string) (string, error)

// ConvertOptions tune a conversion run.
type ConvertOptions struct {

	// Fs is the filesystem the source directory is read from. Defaults
	// to the host filesystem.
	Fs afero.Fs

	// Fetch resolves canonical definition names to definition text.
	// Defaults to a caching fetcher against the upstream definitions
	// repository.
	Fetch Fetcher

	// Parallel decodes each file in row chunks across the host's
	// available parallelism instead of a single pass.
	Parallel bool

	// A custom logger.
	Logger *zap.Logger
}

// ConvertToSQLite walks every entry of sourceDir, resolves each to its
// definition for the target build and streams its decoded records into
// outputPath, one SQLite table per input file. Any file at outputPath is
// removed first.
//
// Unknown tables, unfetchable or build-mismatched definitions and
// malformed headers skip their file; schema and engine errors abort the
// run. Each table is written inside its own transaction.
func ConvertToSQLite(build GameBuild, sourceDir, outputPath string, opts *ConvertOptions) error {
	if opts == nil {
		opts = &ConvertOptions{}
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fetch := opts.Fetch
	if fetch == nil {
		cacheDir, err := DefaultCacheDir()
		if err != nil {
			return err
		}
		fetch = NewCachingFetcher(fs, cacheDir, DefaultDefinitionsURL, logger)
	}

	entries, err := afero.ReadDir(fs, sourceDir)
	if err != nil {
		return errors.Wrapf(err, "reading source directory %s", sourceDir)
	}

	os.Remove(outputPath)

	db, err := sql.Open("sqlite", outputPath)
	if err != nil {
		return errors.Wrap(err, "opening output database")
	}
	defer db.Close()

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filename := entry.Name()

		logger.Info("converting table", zap.String("file", filename))

		defName, err := DefinitionName(filename)
		if err != nil {
			logger.Warn(fmt.Sprintf("skipping dbd file %q due to error %v", filename, err))
			continue
		}

		text, err := fetch(defName)
		if err != nil {
			logger.Warn(fmt.Sprintf("skipping dbd file %q due to error %v", filename, err))
			continue
		}

		def, err := ParseDefinition(build, text)
		if err != nil {
			if errors.Is(err, ErrNoFieldsForBuild) {
				logger.Warn(fmt.Sprintf("skipping dbd file %q due to error %v", filename, err))
				continue
			}
			return errors.Wrapf(err, "parsing definition %s", defName)
		}

		tableName := strings.ToLower(strings.TrimSuffix(defName, ".dbd"))

		if err := convertTable(fs, db, def, tableName,
			filepath.Join(sourceDir, filename), opts.Parallel, logger); err != nil {
			return err
		}
	}

	return nil
}

// convertTable runs one table through the create/stream/commit cycle.
// Returned errors abort the whole run; recoverable conditions are
// logged and swallowed here.
func convertTable(fs afero.Fs, db *sql.DB, def *Definition,
	tableName, path string, parallel bool, logger *zap.Logger) error {

	ddl, err := TableDefinition(def, tableName)
	if err != nil {
		return err
	}
	if _, err := db.Exec(ddl); err != nil {
		return errors.Wrapf(err, "creating table %s", tableName)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		logger.Warn("error reading dbc file", zap.String("file", path), zap.Error(err))
		return nil
	}

	file, err := NewBytes(data, &Options{Logger: logger})
	if err != nil {
		return err
	}
	if err := file.Parse(); err != nil {
		logger.Warn("error parsing dbc file", zap.String("file", path), zap.Error(err))
		return nil
	}

	insertSQL, err := InsertStatement(def, tableName)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return errors.Wrapf(err, "preparing insert for %s", tableName)
	}
	defer stmt.Close()

	if parallel {
		err = streamParallel(fs, stmt, def, file, tableName, path, logger)
	} else {
		err = streamSequential(stmt, def, file, tableName, logger)
	}
	if err != nil {
		var engine *engineError
		if errors.As(err, &engine) {
			return engine.err
		}
		// A processing failure isolated to this file; the run continues.
		logger.Warn("error processing dbc file", zap.String("file", path), zap.Error(err))
		return nil
	}

	if err := stmt.Close(); err != nil {
		return errors.Wrapf(err, "finalizing insert for %s", tableName)
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "committing %s", tableName)
	}
	committed = true
	return nil
}

// engineError marks a DDL/DML failure that must abort the whole run, as
// opposed to per-file processing failures.
type engineError struct {
	err error
}

func (e *engineError) Error() string { return e.err.Error() }
func (e *engineError) Unwrap() error { return e.err }

// streamSequential drains a single iterator into the prepared insert.
// Row-level decode failures are logged with their index and skipped.
func streamSequential(stmt *sql.Stmt, def *Definition, file *File,
	tableName string, logger *zap.Logger) error {

	iter, err := file.NewRecordIterator(def)
	if err != nil {
		return err
	}

	for idx := 0; ; idx++ {
		rec, err := iter.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var decodeErr *DecodeError
			if errors.As(err, &decodeErr) {
				logger.Warn(fmt.Sprintf("%s: item %d parse failed: %v", tableName, idx, err))
				continue
			}
			return err
		}

		if _, err := stmt.Exec(BindValues(rec)...); err != nil {
			return &engineError{err: errors.Wrapf(err, "inserting into %s", tableName)}
		}
	}
}
