// Package main provides the entry point for the ensguard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for ensguard.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ensguard",
		Short: "Offline look-alike generator and risk scorer for ENS-style labels",
		Long: `ensguard generates the look-alike variants of a name label and ranks them
by how easily a reader would confuse them with the original.

Everything runs offline: no resolvers, registries, or network calls are
involved. Variants come from Unicode confusables (Cyrillic, Greek, and
Latin look-alikes), keyboard-neighbor typos, character omission,
duplication, and adjacent swaps.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewExplainCmd())
	cmd.AddCommand(NewBadgeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
