package main

import (
	"os"

	"github.com/bankpro-dev/bankpro/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
