package main

import (
	"os"

	"artichat/cmd/artichat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
