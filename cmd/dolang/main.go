package main

import (
	"os"

	"dolang/cmd/dolang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
