package main

import (
	"os"

	"github.com/msto63/hiext/cmd/hiext/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
