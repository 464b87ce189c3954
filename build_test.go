// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGameBuild(t *testing.T) {

	tests := []struct {
		in      string
		want    GameBuild
		wantErr bool
	}{
		{in: "3.3.5.12340", want: GameBuild{3, 3, 5, 12340}},
		{in: "0.0.0.0", want: GameBuild{}},
		{in: "4.0.0", want: GameBuild{Major: 4}},
		{in: "10", want: GameBuild{Major: 10}},
		{in: "1.2.3.4.5", wantErr: true},
		{in: "3.3.x.12340", wantErr: true},
		{in: "", wantErr: true},
		{in: "3..5.12340", wantErr: true},
		{in: "-1.0.0.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGameBuild(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGameBuildStringRoundTrip(t *testing.T) {

	builds := []GameBuild{
		{},
		{1, 12, 1, 5875},
		{3, 3, 5, 12340},
		{4, 3, 4, 15595},
	}

	for _, b := range builds {
		t.Run(b.String(), func(t *testing.T) {
			got, err := ParseGameBuild(b.String())
			require.NoError(t, err)
			require.Equal(t, b, got)
		})
	}
}

func TestGameBuildCompare(t *testing.T) {

	tests := []struct {
		a, b GameBuild
		want int
	}{
		{GameBuild{3, 3, 5, 12340}, GameBuild{3, 3, 5, 12340}, 0},
		{GameBuild{3, 3, 5, 12340}, GameBuild{4, 0, 0, 0}, -1},
		{GameBuild{4, 0, 0, 1}, GameBuild{4, 0, 0, 0}, 1},
		{GameBuild{3, 3, 5, 12340}, GameBuild{3, 4, 0, 0}, -1},
		{GameBuild{2, 9, 9, 99999}, GameBuild{3, 0, 0, 0}, -1},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.a.Compare(tt.b), "%s vs %s", tt.a, tt.b)
		require.Equal(t, -tt.want, tt.b.Compare(tt.a), "%s vs %s reversed", tt.b, tt.a)
	}
}

func TestGameBuildSpecContains(t *testing.T) {

	lo := GameBuild{4, 0, 0, 0}
	hi := GameBuild{4, 3, 4, 15595}

	tests := []struct {
		name string
		spec GameBuildSpec
		in   GameBuild
		want bool
	}{
		{"single match", SingleBuild(lo), lo, true},
		{"single mismatch", SingleBuild(lo), GameBuild{4, 0, 0, 1}, false},
		{"range inside", BuildRange(lo, hi), GameBuild{4, 2, 0, 14333}, true},
		{"range low edge", BuildRange(lo, hi), lo, true},
		{"range high edge", BuildRange(lo, hi), hi, true},
		{"range below", BuildRange(lo, hi), GameBuild{3, 3, 5, 12340}, false},
		{"range above", BuildRange(lo, hi), GameBuild{4, 3, 4, 15596}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.spec.Contains(tt.in))
		})
	}
}
