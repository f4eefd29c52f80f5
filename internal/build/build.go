// Package build holds build-time version information injected via ldflags.
package build

// These variables are set at build time using -ldflags.
var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
