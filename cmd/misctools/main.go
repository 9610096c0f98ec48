// Package main provides the entry point for the misctools CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/rodrigo1392/misc-tools/cmd/misctools/commands"
)

func main() {
	err := commands.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
