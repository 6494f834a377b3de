package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "alba",
		Short: "Tooling for Alba navigation routers",
		Long: `Alba is a declarative navigation controller for tree-based UIs.

This CLI talks to the inspector endpoint an application exposes with
pkg/inspector:

  • alba tail     — stream navigation events as they happen
  • alba version  — print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		tailCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
