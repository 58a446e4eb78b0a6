package main

import (
	"os"

	"github.com/team-brain/toolregistry/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
