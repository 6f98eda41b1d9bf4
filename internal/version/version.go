// Package version centralizes version metadata for the glgen tool.
package version

// Version information for glgen.
const (
	// Version is the current semantic version.
	Version = "1.0.0"

	// BuildDate is set during build time (use -ldflags)
	BuildDate = "development"

	// GitCommit is set during build time (use -ldflags)
	GitCommit = "unknown"
)

// Info returns version information as a string.
func Info() string {
	return Version
}

// FullInfo returns detailed version information.
func FullInfo() string {
	return "glgen " + Version + " (commit: " + GitCommit + ", built: " + BuildDate + ")"
}
