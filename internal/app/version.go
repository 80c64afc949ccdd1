package app

import (
	"fmt"
	"runtime"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/liammahoney/site-api/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion identifies the running binary in startup logs, /health and -version.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s)", Version, Commit, BuildTime, runtime.Version())
}
