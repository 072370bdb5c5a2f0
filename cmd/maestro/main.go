package main

import (
	"os"

	"maestro/pkg/cli"
)

// Version information - set by goreleaser via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	os.Exit(cli.Main(os.Args[1:]))
}
