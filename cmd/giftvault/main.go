// Package main provides the entry point for the giftvault CLI.
package main

import (
	"os"

	"github.com/mgrunewald/giftvault/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
