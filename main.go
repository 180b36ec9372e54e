package main

import (
	"os"

	"github.com/vessel-labs/vesselfake/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
