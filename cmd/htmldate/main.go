// Package main provides the entry point for the htmldate CLI.
package main

import (
	"fmt"
	"os"

	"github.com/dateforge/htmldate/cmd/htmldate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
