package main

import (
	"os"

	"github.com/abhisek/placement/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
