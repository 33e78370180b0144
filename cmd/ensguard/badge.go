package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kucheran101/ensguard/internal/model"
	"github.com/kucheran101/ensguard/internal/report"
)

// defaultBadgeFile is the default output path for the badge command.
const defaultBadgeFile = "ensguard-badge.svg"

// NewBadgeCmd creates the badge command.
func NewBadgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badge <label>",
		Short: "Write an SVG badge advertising look-alike protection",
		Long: `Badge writes a small SVG badge stating that a label is protected by
ensguard. Embed it in a project README or website next to the canonical
name so users know look-alike monitoring is in place.

Examples:
  # Write ensguard-badge.svg for a label
  ensguard badge vitalik

  # Choose the output path
  ensguard badge --out assets/badge.svg vitalik`,
		Args: cobra.ExactArgs(1),
		RunE: runBadgeCmd,
	}

	cmd.Flags().StringP("out", "o", defaultBadgeFile, "Output path for the SVG badge")

	return cmd
}

// runBadgeCmd executes the badge command.
func runBadgeCmd(cmd *cobra.Command, args []string) error {
	// Normalize so the badge shows the canonical form of the label
	label, err := model.NewLabel(args[0])
	if err != nil {
		return fmt.Errorf("invalid label: %w", err)
	}

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	f, err := createOutputFile(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := report.WriteBadge(f, label.Normalized()); err != nil {
		return fmt.Errorf("failed to write badge: %w", err)
	}

	fmt.Printf("SVG badge written: %s\n", out)

	return nil
}
