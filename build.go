// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"fmt"
	"strconv"
	"strings"
)

// GameBuild identifies a client release by its four-part version number,
// for example 3.3.5.12340. Builds are totally ordered lexicographically
// on (Major, Minor, Patch, Build).
type GameBuild struct {
	Major uint32
	Minor uint32
	Patch uint32
	Build uint32
}

// ParseGameBuild parses the dotted string form of a build. Missing
// trailing components default to zero; more than four components or a
// non-numeric component is an error.
func ParseGameBuild(s string) (GameBuild, error) {
	parts := strings.Split(s, ".")
	if len(parts) > 4 {
		return GameBuild{}, fmt.Errorf("can't convert string %q to game build", s)
	}

	var vals [4]uint32
	for i, part := range parts {
		val, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return GameBuild{}, fmt.Errorf("can't convert string %q to game build", s)
		}
		vals[i] = uint32(val)
	}

	return GameBuild{
		Major: vals[0],
		Minor: vals[1],
		Patch: vals[2],
		Build: vals[3],
	}, nil
}

// String returns the dotted form of the build.
func (b GameBuild) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", b.Major, b.Minor, b.Patch, b.Build)
}

// Compare orders two builds lexicographically, returning a negative
// number when b sorts before other, zero when equal, positive otherwise.
func (b GameBuild) Compare(other GameBuild) int {
	pairs := [4][2]uint32{
		{b.Major, other.Major},
		{b.Minor, other.Minor},
		{b.Patch, other.Patch},
		{b.Build, other.Build},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// GameBuildSpec is a definition's declaration of the builds a block of
// fields applies to: a single build (Lo == Hi) or an inclusive range.
type GameBuildSpec struct {
	Lo GameBuild
	Hi GameBuild
}

// SingleBuild returns a spec matching exactly one build.
func SingleBuild(b GameBuild) GameBuildSpec {
	return GameBuildSpec{Lo: b, Hi: b}
}

// BuildRange returns a spec matching the inclusive range [lo, hi].
func BuildRange(lo, hi GameBuild) GameBuildSpec {
	return GameBuildSpec{Lo: lo, Hi: hi}
}

// Contains reports whether the spec covers the given build.
func (s GameBuildSpec) Contains(b GameBuild) bool {
	return s.Lo.Compare(b) <= 0 && s.Hi.Compare(b) >= 0
}

// parseBuildSpec parses a single spec token: either a dotted build or an
// inclusive "lo-hi" range of two dotted builds.
func parseBuildSpec(s string) (GameBuildSpec, error) {
	if lo, hi, ok := strings.Cut(s, "-"); ok {
		l, err := ParseGameBuild(lo)
		if err != nil {
			return GameBuildSpec{}, err
		}
		h, err := ParseGameBuild(hi)
		if err != nil {
			return GameBuildSpec{}, err
		}
		return BuildRange(l, h), nil
	}

	b, err := ParseGameBuild(s)
	if err != nil {
		return GameBuildSpec{}, err
	}
	return SingleBuild(b), nil
}
