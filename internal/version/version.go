// Package version exposes build identifiers stamped in via ldflags.
package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String renders the build identifiers on one line.
func String() string {
	return fmt.Sprintf("motion %s (%s, built %s)", Version, GitSHA, BuildTime)
}
