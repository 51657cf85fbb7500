package main

import (
	"fmt"
	"os"

	"sustainalens/cmd/sustainalens/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
