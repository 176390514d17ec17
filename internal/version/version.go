// Package version holds build information set by ldflags
package version

var (
	Version = "dev"     // -X github.com/arthur-debert/minifiles/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/minifiles/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/minifiles/internal/version.Date={{.Date}}
)
