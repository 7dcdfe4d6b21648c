package main

import (
	"os"

	"github.com/govalues/monet/internal/cli"
)

func main() {
	rootCmd := cli.NewCommand()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
