package main

import (
	"os"

	"github.com/mdpkit/bellman/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
