package version

import "fmt"

// Version contains the application version information.
// Set via build-time ldflags in production:
// go build -ldflags "-X git.home.luguber.info/inful/blogbuilder/internal/version.Version=v1.0.0".
var Version = "dev"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by the CLI.
func String() string {
	return fmt.Sprintf("blogbuilder %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
