// Package cmd implements the weft CLI commands.
//
// The CLI is a development companion for the reconciler: it loads widget
// trees from YAML scene files, mounts them, and reports what the element
// and render trees look like.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "weft",
	Short: "Weft - widget reconciliation toolkit",
	Long: `Weft mounts declarative widget trees and diffs them against their
previous configuration, reusing elements and render objects wherever the
new tree is compatible with the old one.

The CLI loads scene files (YAML widget tree descriptions), mounts them
through the reconciler, and prints the resulting element tree.`,
	Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
