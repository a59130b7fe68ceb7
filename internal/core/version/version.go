// Package version reports build metadata stamped in with -ldflags
package version

import "runtime/debug"

// BuildInfo is the build metadata served by /meta/version
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Lexicon int    `json:"lexicon_version,omitempty"`
}

// Set with -ldflags "-X 'lostfound/internal/core/version.version=v0.3.0'
// -X 'lostfound/internal/core/version.commit=abcd' -X 'lostfound/internal/core/version.date=2026-10-01'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns build metadata for service. When commit was not stamped the
// vcs revision recorded by the go toolchain is used instead
func Info(service string) BuildInfo {
	c := commit
	if c == "none" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					c = s.Value
				}
			}
		}
	}
	return BuildInfo{Service: service, Version: version, Commit: c, Date: date}
}
