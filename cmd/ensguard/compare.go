package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kucheran101/ensguard/internal/config"
	"github.com/kucheran101/ensguard/internal/database"
	"github.com/kucheran101/ensguard/internal/model"
)

// Constants for drift direction summaries.
const (
	driftDirectionWorsened  = "worsened"
	driftDirectionImproved  = "improved"
	driftDirectionUnchanged = "unchanged"
)

// NewCompareCmd creates the compare command.
// This command compares generation runs stored in the database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [label]",
		Short: "Compare generation runs stored in the database",
		Long: `Compare displays differences between the latest two generation runs of
a label.

This command retrieves run history from the database and shows:
- Variants that appeared since the previous run
- Variants that disappeared
- Drift in candidate count and top score

The comparison requires at least two saved runs for the specified label.
Use 'ensguard generate --save' to persist runs.

Examples:
  # Compare the latest two runs for a label
  ensguard compare vitalik

  # List all run history for a label
  ensguard compare --list vitalik

  # Compare with a specific historical run by ID
  ensguard compare --with-run-id 5 vitalik

  # Output comparison in JSON format
  ensguard compare --json vitalik

  # List all labels with saved runs
  ensguard compare --list-labels`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompareCmd,
	}

	// History listing flags
	cmd.Flags().BoolP("list", "l", false,
		"List run history for the specified label")
	cmd.Flags().BoolP("list-labels", "L", false,
		"List all labels with saved runs in the database")

	// Comparison target flags
	cmd.Flags().Int64P("with-run-id", "i", 0,
		"Compare with a specific run by ID (use --list to see available IDs)")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output comparison result in Markdown format")

	// Database location
	cmd.Flags().String("db-dir", "",
		"Database directory (default: XDG data directory)")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	// Handle --list-labels flag first (requires database but no label)
	listLabels, err := cmd.Flags().GetBool("list-labels")
	if err != nil {
		return err
	}

	// Validate arguments before opening database (unless --list-labels)
	var label string
	if !listLabels {
		if len(args) == 0 {
			return errors.New("label is required (use --list-labels to see saved labels)")
		}

		// Normalize so lookups match what generate stored
		normalized, err := model.NewLabel(args[0])
		if err != nil {
			return fmt.Errorf("invalid label: %w", err)
		}
		label = normalized.Normalized()
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("failed to open database (run 'ensguard generate --save' first): %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if listLabels {
		return listSavedLabels(ctx, db)
	}

	listHistory, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if listHistory {
		return listRunHistory(ctx, db, label)
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	withRunID, err := cmd.Flags().GetInt64("with-run-id")
	if err != nil {
		return err
	}

	return runComparison(ctx, db, label, withRunID, jsonOutput, markdownOutput)
}

// listSavedLabels lists all labels that have run records in the database.
func listSavedLabels(ctx context.Context, db *database.WatchDB) error {
	labels, err := db.ListLabels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list labels: %w", err)
	}

	if len(labels) == 0 {
		fmt.Println("No saved runs found in the database.")
		fmt.Println("\nUse 'ensguard generate --save <label>' to save a run.")
		return nil
	}

	fmt.Printf("Saved labels (%d):\n\n", len(labels))
	for _, label := range labels {
		fmt.Printf("  • %s\n", label)
	}
	fmt.Println("\nUse 'ensguard compare --list <label>' to see run history for a label.")

	return nil
}

// listRunHistory lists all run records for a specific label.
func listRunHistory(ctx context.Context, db *database.WatchDB, label string) error {
	runs, err := db.GetRunHistory(ctx, label)
	if err != nil {
		return fmt.Errorf("failed to get run history: %w", err)
	}

	if len(runs) == 0 {
		fmt.Printf("No run history found for %s\n", label)
		fmt.Println("\nUse 'ensguard generate --save' to save a run for this label.")
		return nil
	}

	fmt.Printf("Run history for %s (%d runs):\n\n", label, len(runs))
	fmt.Printf("  %-6s  %-20s  %-11s  %-10s  %s\n", "ID", "Date", "Candidates", "Top Score", "Classes")
	fmt.Println("  " + strings.Repeat("-", 70))

	for _, meta := range runs {
		fmt.Printf("  %-6d  %-20s  %-11d  %-10.3f  %s\n",
			meta.ID,
			meta.CreatedAt.Format("2006-01-02 15:04:05"),
			meta.CandidateCount,
			meta.TopScore,
			formatClassCounts(meta.ClassCounts),
		)
	}

	fmt.Println("\nUse 'ensguard compare <label>' to compare the latest two runs.")
	fmt.Println("Use 'ensguard compare --with-run-id <id> <label>' to compare with a specific run.")

	return nil
}

// formatClassCounts formats the class count map into a short string.
func formatClassCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}

	var parts []string
	for _, class := range model.Classes() {
		if v := counts[class.String()]; v > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", class.String(), v))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// runComparison performs the actual comparison between two runs.
func runComparison(ctx context.Context, db *database.WatchDB, label string, withRunID int64, jsonOutput, markdownOutput bool) error {
	runs, err := db.GetRecentRuns(ctx, label, 2)
	if err != nil {
		return fmt.Errorf("failed to get runs: %w", err)
	}

	if len(runs) == 0 {
		return fmt.Errorf("no run history found for %s", label)
	}
	if len(runs) < 2 && withRunID == 0 {
		return fmt.Errorf("at least 2 runs are required for comparison (found %d)", len(runs))
	}

	// Latest run is always the current one
	current := runs[0]

	var previous *model.RankedReport
	if withRunID > 0 {
		previous, err = db.GetRunByID(ctx, withRunID)
		if err != nil {
			return fmt.Errorf("failed to get run with ID %d: %w", withRunID, err)
		}
		if previous == nil {
			return fmt.Errorf("run with ID %d not found", withRunID)
		}
		if previous.Normalized != label {
			return fmt.Errorf("run ID %d belongs to %s, not %s", withRunID, previous.Normalized, label)
		}
	} else {
		previous = runs[1]
	}

	comparison := compareRuns(previous, current)

	if jsonOutput {
		return outputComparisonJSON(comparison)
	}
	if markdownOutput {
		return outputComparisonMarkdown(comparison)
	}
	return outputComparisonText(comparison)
}

// ComparisonResult holds the result of comparing two generation runs.
type ComparisonResult struct {
	// Label is the normalized label both runs belong to.
	Label string `json:"label"`

	// PreviousRun contains metadata about the previous run.
	PreviousRun RunSummary `json:"previous_run"`

	// CurrentRun contains metadata about the current run.
	CurrentRun RunSummary `json:"current_run"`

	// NewVariants contains variants present only in the current run.
	NewVariants []string `json:"new_variants,omitempty"`

	// DisappearedVariants contains variants present only in the previous run.
	DisappearedVariants []string `json:"disappeared_variants,omitempty"`

	// UnchangedCount is the number of variants present in both runs.
	UnchangedCount int `json:"unchanged_count"`

	// Drift describes the overall change between the runs.
	Drift Drift `json:"drift"`
}

// RunSummary contains metadata about a run for comparison display.
type RunSummary struct {
	// GeneratedAt is when the run was performed.
	GeneratedAt time.Time `json:"generated_at"`

	// CandidateCount is the number of ranked candidates in the run.
	CandidateCount int `json:"candidate_count"`

	// TopScore is the score of the highest-ranked candidate.
	TopScore float64 `json:"top_score"`
}

// Drift describes the change between two runs.
type Drift struct {
	// Direction is "improved", "worsened", or "unchanged".
	// Worsened means more or higher-scoring look-alikes exist.
	Direction string `json:"direction"`

	// CandidateDelta is the change in candidate count.
	CandidateDelta int `json:"candidate_delta"`

	// TopScoreDelta is the change in top score.
	TopScoreDelta float64 `json:"top_score_delta"`
}

// compareRuns compares two runs and generates a comparison result.
func compareRuns(previous, current *model.RankedReport) *ComparisonResult {
	result := &ComparisonResult{
		Label: current.Normalized,
		PreviousRun: RunSummary{
			GeneratedAt:    previous.GeneratedAt,
			CandidateCount: previous.TotalCandidates(),
			TopScore:       previous.TopScore,
		},
		CurrentRun: RunSummary{
			GeneratedAt:    current.GeneratedAt,
			CandidateCount: current.TotalCandidates(),
			TopScore:       current.TopScore,
		},
	}

	previousVariants := make(map[string]bool, previous.TotalCandidates())
	for _, c := range previous.Candidates {
		previousVariants[c.Variant] = true
	}
	currentVariants := make(map[string]bool, current.TotalCandidates())
	for _, c := range current.Candidates {
		currentVariants[c.Variant] = true
	}

	// Iterate the ranked slices, not the maps, so the diff order is
	// stable across invocations.
	for _, c := range current.Candidates {
		if !previousVariants[c.Variant] {
			result.NewVariants = append(result.NewVariants, c.Variant)
		} else {
			result.UnchangedCount++
		}
	}
	for _, c := range previous.Candidates {
		if !currentVariants[c.Variant] {
			result.DisappearedVariants = append(result.DisappearedVariants, c.Variant)
		}
	}

	result.Drift = calculateDrift(result.PreviousRun, result.CurrentRun)

	return result
}

// calculateDrift calculates the change between two runs.
// Top score dominates: a higher-scoring look-alike is worse news than a
// longer tail of weak ones.
func calculateDrift(previous, current RunSummary) Drift {
	drift := Drift{
		CandidateDelta: current.CandidateCount - previous.CandidateCount,
		TopScoreDelta:  current.TopScore - previous.TopScore,
	}

	switch {
	case drift.TopScoreDelta > 0:
		drift.Direction = driftDirectionWorsened
	case drift.TopScoreDelta < 0:
		drift.Direction = driftDirectionImproved
	case drift.CandidateDelta > 0:
		drift.Direction = driftDirectionWorsened
	case drift.CandidateDelta < 0:
		drift.Direction = driftDirectionImproved
	default:
		drift.Direction = driftDirectionUnchanged
	}

	return drift
}

// outputComparisonJSON outputs the comparison result in JSON format.
func outputComparisonJSON(result *ComparisonResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// outputComparisonMarkdown outputs the comparison result in Markdown format.
func outputComparisonMarkdown(result *ComparisonResult) error {
	fmt.Printf("# Run Comparison: %s\n\n", result.Label)

	fmt.Println("## Summary")
	fmt.Printf("\n**Drift:** %s\n\n", formatDriftDirection(result.Drift.Direction))

	fmt.Println("| Metric | Previous | Current | Change |")
	fmt.Println("|--------|----------|---------|--------|")
	fmt.Printf("| Date | %s | %s | - |\n",
		result.PreviousRun.GeneratedAt.Format("2006-01-02 15:04"),
		result.CurrentRun.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Printf("| Candidates | %d | %d | %s |\n",
		result.PreviousRun.CandidateCount,
		result.CurrentRun.CandidateCount,
		formatDelta(result.Drift.CandidateDelta))
	fmt.Printf("| Top Score | %.3f | %.3f | %+.3f |\n",
		result.PreviousRun.TopScore,
		result.CurrentRun.TopScore,
		result.Drift.TopScoreDelta)

	if len(result.NewVariants) > 0 {
		fmt.Printf("\n## New Variants (%d)\n\n", len(result.NewVariants))
		for _, v := range result.NewVariants {
			fmt.Printf("- `%s`\n", v)
		}
	}

	if len(result.DisappearedVariants) > 0 {
		fmt.Printf("\n## Disappeared Variants (%d)\n\n", len(result.DisappearedVariants))
		for _, v := range result.DisappearedVariants {
			fmt.Printf("- ~~`%s`~~\n", v)
		}
	}

	if result.UnchangedCount > 0 {
		fmt.Printf("\n---\n\n*%d variants unchanged*\n", result.UnchangedCount)
	}

	return nil
}

// outputComparisonText outputs the comparison result in human-readable text format.
func outputComparisonText(result *ComparisonResult) error {
	fmt.Printf("Run Comparison: %s\n", result.Label)
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\nDrift: %s\n", formatDriftDirection(result.Drift.Direction))

	fmt.Printf("\nPrevious run: %s\n", result.PreviousRun.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Current run:  %s\n", result.CurrentRun.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Println("\nRun Summary:")
	fmt.Printf("  %-12s  %-10s  %-10s  %-10s\n", "Metric", "Previous", "Current", "Change")
	fmt.Println("  " + strings.Repeat("-", 48))
	fmt.Printf("  %-12s  %-10d  %-10d  %-10s\n", "Candidates",
		result.PreviousRun.CandidateCount, result.CurrentRun.CandidateCount,
		formatDelta(result.Drift.CandidateDelta))
	fmt.Printf("  %-12s  %-10.3f  %-10.3f  %+-10.3f\n", "Top Score",
		result.PreviousRun.TopScore, result.CurrentRun.TopScore,
		result.Drift.TopScoreDelta)

	if len(result.NewVariants) > 0 {
		fmt.Printf("\nNew Variants (%d):\n", len(result.NewVariants))
		for _, v := range result.NewVariants {
			fmt.Printf("  [+] %s\n", v)
		}
	}

	if len(result.DisappearedVariants) > 0 {
		fmt.Printf("\nDisappeared Variants (%d):\n", len(result.DisappearedVariants))
		for _, v := range result.DisappearedVariants {
			fmt.Printf("  [-] %s\n", v)
		}
	}

	if result.UnchangedCount > 0 {
		fmt.Printf("\nUnchanged: %d variants\n", result.UnchangedCount)
	}

	return nil
}

// formatDriftDirection formats the drift direction for display.
func formatDriftDirection(direction string) string {
	switch direction {
	case driftDirectionImproved:
		return "IMPROVED (fewer or weaker look-alikes)"
	case driftDirectionWorsened:
		return "WORSENED (more or stronger look-alikes)"
	default:
		return "UNCHANGED"
	}
}

// formatDelta formats a numeric delta with sign for display.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	} else if delta < 0 {
		return strconv.Itoa(delta)
	}
	return "0"
}
