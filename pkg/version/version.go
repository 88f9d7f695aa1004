// Package version carries build-time version information, injected via
// ldflags:
//
//	go build -ldflags="-X 'github.com/cloudmeta/instance-catalog/pkg/version.Version=1.0.0'"
package version

import "fmt"

var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build date.
	Date = "unknown"
)

// String returns the full human-readable version line.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
