package main

import (
	"os"

	"github.com/msto63/rosetta/cmd/rosetta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
