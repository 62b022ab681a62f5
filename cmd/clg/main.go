// Package main is the entry point for clg, the card-ledger CLI client.
package main

import "github.com/donaldgifford/card-ledger/cmd/clg/cmd"

func main() {
	cmd.Execute()
}
