// Command cinetech is the CLI front-end for the cinetech film catalog.
package main

import (
	"github.com/cinetech/cinetech/cmd/cinetech/cmd"
)

// Build information set by the build system via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
