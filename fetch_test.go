// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCachingFetcherDownloadsAndCaches(t *testing.T) {

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		require.Equal(t, "/Achievement.dbd", r.URL.Path)
		w.Write([]byte(achievementDefinition))
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	fetch := NewCachingFetcher(fs, "/cache", srv.URL, zap.NewNop())

	text, err := fetch("Achievement.dbd")
	require.NoError(t, err)
	require.Equal(t, achievementDefinition, text)
	require.EqualValues(t, 1, hits.Load())

	// Second fetch is served from the cache.
	text, err = fetch("Achievement.dbd")
	require.NoError(t, err)
	require.Equal(t, achievementDefinition, text)
	require.EqualValues(t, 1, hits.Load())

	cached, err := afero.ReadFile(fs, "/cache/Achievement.dbd")
	require.NoError(t, err)
	require.Equal(t, achievementDefinition, string(cached))
}

func TestCachingFetcherMissingDefinition(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	fetch := NewCachingFetcher(afero.NewMemMapFs(), "/cache", srv.URL, zap.NewNop())

	_, err := fetch("NotATable.dbd")
	require.Error(t, err)
}

func TestCachingFetcherPrefersCache(t *testing.T) {

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cache/Spell.dbd", []byte("cached"), 0o644))

	// No server behind the URL; a network attempt would fail loudly.
	fetch := NewCachingFetcher(fs, "/cache", "http://127.0.0.1:1", zap.NewNop())

	text, err := fetch("Spell.dbd")
	require.NoError(t, err)
	require.Equal(t, "cached", text)
}
