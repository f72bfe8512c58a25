// Package main is the entry point for the actions-context CLI.
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := Execute(); err != nil {
		log.Error("actions-context failed", "err", err)
		os.Exit(1)
	}
}
