// Package main is the entry point for the workforce CLI
package main

import (
	"os"

	"github.com/cmlabs-hris/workforce/internal/cli"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
