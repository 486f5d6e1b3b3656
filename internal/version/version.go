package version

import "fmt"

// Set at build time via -ldflags "-X .../internal/version.Version=v1.2.3".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func Full() string {
	return fmt.Sprintf("briefflow %s, commit %s, built at %s", Version, Commit, Date)
}
