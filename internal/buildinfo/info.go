// Package buildinfo holds version metadata stamped in at build time.
package buildinfo

// Overridden with -ldflags "-X .../internal/buildinfo.Version=..." at release
// time; the defaults cover a plain `go build`.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
