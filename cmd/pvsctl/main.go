// Package main is the entry point for the pvsctl CLI.
package main

import (
	"os"

	"github.com/SscSPs/pvs_ledger/cmd/pvsctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
