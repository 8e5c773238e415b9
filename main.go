package main

import (
	"os"

	"github.com/dhkim/kwiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
