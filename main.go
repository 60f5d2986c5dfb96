package main

import (
	"os"

	"github.com/shayulman/radiodesk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
