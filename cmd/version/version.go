// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

// Package version holds the build-time version and commit identifiers
// for the pnger CLI, set via -ldflags at release build time.
package version

import (
	"strings"

	"github.com/sixafter/semver"
)

// Prefix is the leading character of the git tag for a release version.
const Prefix = "v"

// version is set when compiling with
// --ldflags="-X github.com/mathyslv/pnger-go/cmd/version.version=vX.Y.Z"
var version = "v0.0.0-unset"

// gitCommitID is set when compiling with
// --ldflags="-X github.com/mathyslv/pnger-go/cmd/version.gitCommitID=<commit-id>"
var gitCommitID = ""

// Version returns the current pnger version string.
func Version() string {
	return version
}

// GitCommitID returns the git commit the binary was built from.
func GitCommitID() string {
	return gitCommitID
}

// SemverVersion parses Version into a semantic version.
func SemverVersion() (semver.Version, error) {
	return semver.Make(strings.TrimPrefix(Version(), Prefix))
}
