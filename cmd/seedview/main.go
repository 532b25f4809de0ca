// Package main is the entry point for the seedview CLI.
package main

import (
	"os"

	"github.com/f3rmion/seedview/cmd/seedview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
