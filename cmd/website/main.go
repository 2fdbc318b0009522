package main

import (
	"os"

	"github.com/nexusai/website/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
