package main

import (
	"fmt"
	"os"

	cmd "github.com/johndpope/SwiftRewriter/cmd/swiftrewriter"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
