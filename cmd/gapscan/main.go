package main

import (
	"fmt"
	"os"

	"gapscan/resume-gap-analyzer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
