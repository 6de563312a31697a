// Package version reports build information for cvgen.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version   string // Set via ldflags.
	BuildDate string // Set via ldflags.

	Revision  = revision(readSettings())
	GoVersion = runtime.Version()
	GoOS      = runtime.GOOS
	GoArch    = runtime.GOARCH
)

// GetVersion returns the release version, or the VCS revision for
// development builds.
func GetVersion() string {
	if Version != "" {
		return Version
	}

	return Revision
}

// Summary describes the build on one line.
func Summary() string {
	s := fmt.Sprintf("%s (%s, %s %s/%s)", GetVersion(), Revision, GoVersion, GoOS, GoArch)
	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s
}

func readSettings() map[string]string {
	settings := map[string]string{}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}

	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	return settings
}

func revision(settings map[string]string) string {
	rev, ok := settings["vcs.revision"]
	if !ok || rev == "" {
		return "unknown"
	}

	if len(rev) > 7 {
		rev = rev[:7]
	}

	if settings["vcs.modified"] == "true" {
		return rev + "-dirty"
	}

	return rev
}
