package main

import (
	"os"

	"github.com/msto63/texel/cmd/texel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
