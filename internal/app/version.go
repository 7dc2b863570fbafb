package app

import "fmt"

// Build metadata, injected at link time:
//
//	go build -ldflags "-X github.com/TGiulio/nightlog/internal/app.Version=v0.3.1 \
//	  -X github.com/TGiulio/nightlog/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/nightlog
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the long form printed by `nightlog version` and logged at
// startup. /health reports only Version.
func BuildVersion() string {
	return fmt.Sprintf("nightlog %s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
