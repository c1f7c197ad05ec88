// Package version reports the build identity of the binaries
package version

import "runtime/debug"

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"    example:"freightdesk-api"`
	Version string `json:"version"    example:"v0.3.0"`
	Commit  string `json:"commit"     example:"4f2a9c1"`
	Date    string `json:"date"       example:"2026-10-01"`
	Go      string `json:"go_version" example:"go1.25.0"`
}

// Set via -ldflags "-X 'freightdesk/internal/core/version.version=v0.3.0'
// -X 'freightdesk/internal/core/version.commit=4f2a9c1' -X 'freightdesk/internal/core/version.date=2026-10-01'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Service is the name the api reports
const Service = "freightdesk-api"

// Info returns the build information. Without ldflags the vcs revision from the
// module build info fills commit when available
func Info() BuildInfo {
	bi := BuildInfo{Service: Service, Version: version, Commit: commit, Date: date}
	if info, ok := debug.ReadBuildInfo(); ok {
		bi.Go = info.GoVersion
		if bi.Commit == "none" {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					bi.Commit = s.Value
				}
			}
		}
	}
	return bi
}
