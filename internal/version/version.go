// Package version carries build metadata injected with -ldflags -X.
package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/temple/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/temple/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/temple/internal/version.Date={{.Date}}
)

// String formats the build information as shown by --version.
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
}
