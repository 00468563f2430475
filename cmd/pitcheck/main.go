package main

import (
	"os"

	"github.com/terrasense/pitcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
