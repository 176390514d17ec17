package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/minifiles/cmd/minifiles"
	"github.com/arthur-debert/minifiles/pkg/style"
)

func main() {
	rootCmd := minifiles.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.FormatError(err))
		os.Exit(1)
	}
}
