package main

import (
	"os"

	"github.com/bianoble/dir-update/cmd/dir-update/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
