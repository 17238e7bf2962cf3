// Package version exposes build metadata injected through -ldflags.
package version

import "fmt"

// Build metadata, set with:
//
//	-ldflags "-X github.com/rshade/fleettco/pkg/version.version=v1.2.3 \
//	          -X github.com/rshade/fleettco/pkg/version.gitCommit=abc123 \
//	          -X github.com/rshade/fleettco/pkg/version.buildDate=2026-01-01"
//
//nolint:gochecknoglobals // Overwritten by the linker at build time.
var (
	version   = "dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the release version, or "dev" for local builds.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build date, if known.
func GetBuildDate() string {
	return buildDate
}

// Info returns a one-line description of the build for --version output.
func Info() string {
	s := version
	if gitCommit != "" {
		s += fmt.Sprintf(" (commit %s", gitCommit)
		if buildDate != "" {
			s += ", built " + buildDate
		}
		s += ")"
	}
	return s
}
