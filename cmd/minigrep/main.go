// Package main is the entry point for the minigrep CLI.
package main

import (
	"os"

	"github.com/runger/minigrep/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
