package main

import (
	"os"

	"threeclick/cmd/threeclick/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
