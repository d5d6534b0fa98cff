// Package version holds the release string reported by --version.
package version

// Version can be overridden at build time with -ldflags "-X seqpost/internal/version.Version=...".
var Version = "0.1.0"
