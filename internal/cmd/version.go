package cmd

import "fmt"

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func versionTemplate() string {
	return fmt.Sprintf("minigrep %s\n  commit: %s\n  built:  %s\n", Version, GitCommit, BuildDate)
}
