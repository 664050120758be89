// Copyright 2015 Apcera Inc. All rights reserved.

// Package buildinfo holds the version and commit strings stamped into the
// binary at build time via `-ldflags -X`. Neither value is known until link
// time; both default to placeholders for unstamped builds (e.g. `go run`).
package buildinfo

var (
	// Version is the release version of this build.
	Version = "dev"

	// GitCommit is the git commit this build was produced from.
	GitCommit = "unknown"
)
