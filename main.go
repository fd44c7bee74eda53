package main

import (
	"os"

	"github.com/planweave/planweave/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
