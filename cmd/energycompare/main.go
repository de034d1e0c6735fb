// Package main is the entry point for the energy-compare CLI and server.
package main

import (
	"os"

	"github.com/arunsketh/energy/cmd/energycompare/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
