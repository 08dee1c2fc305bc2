package main

import (
	"os"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/cmd/dining/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
