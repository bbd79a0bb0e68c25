package main

import (
	"os"

	"github.com/retailkit/retailkit/cmd/retailctl/app"
)

func main() {
	if err := app.NewRetailCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
