package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/minifiles/cmd/minifiles"
	"github.com/arthur-debert/minifiles/internal/version"
)

func main() {
	rootCmd := minifiles.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "MINIFILES",
		Section: "1",
		Source:  "minifiles " + version.Version,
		Manual:  "minifiles manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
