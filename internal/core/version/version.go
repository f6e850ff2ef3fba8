// Package version provides information about the build version of the service.
package version

import "runtime"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service   string `json:"service" example:"devfeed-api"`
	Version   string `json:"version" example:"v0.3.0"`
	Commit    string `json:"commit" example:"4f2c9e1"`
	Date      string `json:"date" example:"2026-10-01"`
	GoVersion string `json:"go_version" example:"go1.25.0"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'devfeed/internal/core/version.version=v0.0.1'
	// -X 'devfeed/internal/core/version.commit=abcd' -X 'devfeed/internal/core/version.date=2026-10-01'"
	return BuildInfo{
		Service:   "devfeed-api",
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
}

// String renders a one line summary for the CLI
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ", " + b.Date + ", " + b.GoVersion + ")"
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
