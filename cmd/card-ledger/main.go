// Package main is the entry point for the card-ledger server.
package main

import (
	"os"

	"github.com/donaldgifford/card-ledger/cmd/card-ledger/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
