// Package version holds build metadata injected with
// -ldflags "-X github.com/nexusai/website/internal/version.Version=...".
package version

import "runtime"

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Time      string `json:"time"`
	GoVersion string `json:"goVersion"`
}

func Current() Build {
	return Build{
		Version:   Version,
		Commit:    GitCommit,
		Time:      BuildTime,
		GoVersion: runtime.Version(),
	}
}
