// Package build holds build-time information.
package build

// Set via linker flags at release time; the defaults identify a local
// development build.
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the git revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
