// Package version holds build information set via -ldflags.
package version

import "fmt"

// Build information. Overridden at link time:
//
//	go build -ldflags "-X github.com/flaggen/flaggen/internal/version.Version=v1.0.0"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a one line summary.
func String() string {
	return fmt.Sprintf("flaggen %s (commit %s, built %s)", Version, Commit, Date)
}
