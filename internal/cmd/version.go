package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/fulmenhq/gofulmen/crucible"
)

// A "version" subcommand would shadow a target literally named "version", so
// version details hang off the root --version flag instead.
func versionText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "avail %s\n", versionInfo.Version)
	fmt.Fprintf(&sb, "Commit: %s\n", versionInfo.Commit)
	fmt.Fprintf(&sb, "Built: %s\n", versionInfo.BuildDate)
	fmt.Fprintf(&sb, "Go: %s\n", runtime.Version())

	version := crucible.GetVersion()
	fmt.Fprintf(&sb, "Gofulmen: %s\n", version.Gofulmen)
	fmt.Fprintf(&sb, "Crucible: %s\n", version.Crucible)
	return sb.String()
}
