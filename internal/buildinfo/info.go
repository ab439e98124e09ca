// Package buildinfo carries release metadata stamped in by the linker,
// e.g. -ldflags "-X github.com/cleared-dev/banksms/internal/buildinfo.Version=v0.3.0".
package buildinfo

var (
	// Version is the release tag.
	Version = "dev"
	// Commit is the source revision.
	Commit = "none"
	// Date is the build time.
	Date = "unknown"
)
