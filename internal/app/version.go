package app

import (
	"runtime/debug"
	"strings"
)

// Overridden with -ldflags "-X github.com/heartmarshall/pebbl-backend/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion describes the running binary for startup logs and /health.
// Commit and build time fall back to the VCS stamp embedded by the Go
// toolchain when they were not injected.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime, readVCS)
}

func formatVersion(version, commit, built string, vcs func() (string, string)) string {
	if commit == "" || built == "" {
		rev, at := vcs()
		if commit == "" {
			commit = rev
		}
		if built == "" {
			built = at
		}
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}

	var b strings.Builder
	b.WriteString(version)
	if commit != "" {
		b.WriteString(" (commit ")
		b.WriteString(commit)
		if built != "" {
			b.WriteString(", built ")
			b.WriteString(built)
		}
		b.WriteString(")")
	}
	return b.String()
}

func readVCS() (revision, at string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	return revision, at
}
