package main

import (
	"os"

	"hireboard/cmd/hirectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
