// Package main is the entry point for the glucodash CLI.
package main

import (
	"os"

	"github.com/jwulff/glucodash/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.1.0-dev"

func main() {
	cli.RootCmd.Version = version
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
