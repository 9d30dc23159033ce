package main

import (
	"os"

	"abook/cmd/abook/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
