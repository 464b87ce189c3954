// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultDefinitionsURL is the upstream repository serving the raw
// definition files.
const DefaultDefinitionsURL = "https://raw.githubusercontent.com/wowdev/WoWDBDefs/refs/heads/master/definitions"

// DefaultCacheDir returns the on-disk directory where fetched
// definitions are kept between runs.
func DefaultCacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Wrap(err, "resolving cache directory")
	}
	return filepath.Join(dir, "wowarchive-dbc", "dbd"), nil
}

// NewCachingFetcher returns a Fetcher that serves definition texts from
// cacheDir, downloading misses from baseURL with bounded retries and
// writing them back to the cache. Network and cache failures surface to
// the caller, which treats them as a per-file skip.
func NewCachingFetcher(fs afero.Fs, cacheDir, baseURL string, logger *zap.Logger) Fetcher {
	client := &http.Client{Timeout: 30 * time.Second}

	return func(definitionName string) (string, error) {
		path := filepath.Join(cacheDir, definitionName)

		if data, err := afero.ReadFile(fs, path); err == nil {
			return string(data), nil
		}

		url := baseURL + "/" + definitionName
		logger.Debug("downloading definition", zap.String("url", url))

		var body []byte
		fetchOnce := func() error {
			resp, err := client.Get(url)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				err := fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
				if resp.StatusCode >= 400 && resp.StatusCode < 500 {
					return backoff.Permanent(err)
				}
				return err
			}

			body, err = io.ReadAll(resp.Body)
			return err
		}

		policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4)
		if err := backoff.Retry(fetchOnce, policy); err != nil {
			return "", errors.Wrapf(err, "downloading definition %s", definitionName)
		}

		if err := fs.MkdirAll(cacheDir, 0o755); err != nil {
			return "", errors.Wrap(err, "creating definition cache")
		}
		if err := afero.WriteFile(fs, path, body, 0o644); err != nil {
			return "", errors.Wrapf(err, "caching definition %s", definitionName)
		}

		return string(body), nil
	}
}
