package main

import (
	"errors"
	"os"

	"github.com/ryo246912/gh-notifications/internal/cmd"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cmd.NewRootCmd(cmd.DefaultFactory())
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrSilent) {
			cmd.PrintError(os.Stderr, err)
		}
		return 1
	}
	return 0
}
