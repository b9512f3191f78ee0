// Package version holds build metadata. The variables are overridden at
// build time via -ldflags "-X swizzy/internal/version.Version=...".
package version

import "strings"

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// String returns the version followed by any known build metadata, e.g.
// "0.1.0 (abc1234, 2026-01-02)".
func String() string {
	var meta []string
	if GitCommit != "" {
		commit := GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		meta = append(meta, commit)
	}
	if BuildDate != "" {
		meta = append(meta, BuildDate)
	}
	if len(meta) == 0 {
		return Version
	}
	return Version + " (" + strings.Join(meta, ", ") + ")"
}
