package main

import (
	"fmt"
	"os"
)

// Build information injected via ldflags at build time.
var (
	buildVersion = "dev"
	commit       = "none"
	date         = "unknown"
)

func main() {
	versionString := fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, commit, date)
	SetVersion(versionString)
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
