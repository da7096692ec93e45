package main

import (
	"os"

	"github.com/bizradar/bizradar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
