// Package version reports the build identity of sm64config.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/sm64pc/sm64config/internal/version.Version=v0.3.0 \
//	                   -X github.com/sm64pc/sm64config/internal/version.Commit=abc1234"
//
// Otherwise they are filled from the module and VCS build info.
var (
	Version = ""
	Commit  = ""
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if ok {
		fill(info)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fill copies the module version and VCS revision from build info into any
// variable that was not set via ldflags.
func fill(info *debug.BuildInfo) {
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	if Commit != "" {
		return
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision == "" {
		return
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	Commit = revision
	if dirty {
		Commit += "-dirty"
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
