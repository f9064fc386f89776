package main

import (
	"os"

	"pannel_pintura/cmd/cotizar/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
