// Package version records the build identity of the misctools binary.
// The variables are set at build time through -ldflags.
package version

import "fmt"

// Version is the semantic version of the binary, "dev" for local builds.
var Version = "dev"

// Commit is the Git hash the binary was built from.
var Commit = "<unknown>"

// Date is the build timestamp.
var Date = "<unknown>"

// String returns the single-line version report.
func String() string {
	return fmt.Sprintf("misctools %s (commit: %s, built: %s)", Version, Commit, Date)
}
