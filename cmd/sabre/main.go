package main

import (
	"os"

	"github.com/blockchaintp/sawtooth-sabre/cmd/sabre/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
