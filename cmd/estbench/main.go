package main

import (
	cmd "github.com/mwiater/estbench/internal/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the estbench CLI application by delegating to the cobra root
// command defined in the estbench package. Build-time version variables are
// injected before execution.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
