package app

import "fmt"

// Name identifies the service in logs and health output.
const Name = "company-directory"

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/company-directory/internal/app.Version=1.0.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns "<version> (<commit>, <build time>)" for health output.
// A dev build without ldflags reports just "dev".
func BuildVersion() string {
	if Commit == "unknown" && BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, BuildTime)
}
