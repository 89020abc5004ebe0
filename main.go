package main

import (
	"fmt"
	"os"

	"swagdump.dev/cli/internal/cli"
	"swagdump.dev/cli/internal/commands"
)

// Overridden by ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "version") {
		fmt.Printf("swagdump %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}

	runner := cli.NewRunner("swagdump")
	commands.Register(runner, commands.Options{})

	code, err := runner.Run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "swagdump: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}
