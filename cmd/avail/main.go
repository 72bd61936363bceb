package main

import (
	"errors"
	"os"

	"github.com/fulmenhq/gofulmen/foundry"

	"github.com/namelens/avail/internal/cmd"
	"github.com/namelens/avail/internal/observability"
)

// Version information set via ldflags during build
// Example: go build -ldflags="-X main.version=1.0.0 -X main.commit=abc123 -X main.buildDate=2025-10-28"
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, buildDate)

	if err := cmd.Execute(); err != nil {
		// The report is already on stdout; a failed checker only changes the status.
		if errors.Is(err, cmd.ErrProbeFailures) {
			os.Exit(int(foundry.ExitFailure))
		}
		cmd.ExitWithCode(observability.CLILogger, cmd.ExitCodeFor(err), "Command execution failed", err)
	}
}
