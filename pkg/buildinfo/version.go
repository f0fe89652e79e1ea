// Package buildinfo holds version information stamped in at build time.
//
//	go build -ldflags "-X github.com/activestate/bomgen/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/activestate/bomgen/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/activestate/bomgen/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Template returns the --version template for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
