package main

import (
	"testing"
	"time"

	"github.com/kucheran101/ensguard/internal/model"
)

func TestNewCompareCmd(t *testing.T) {
	t.Parallel()

	cmd := NewCompareCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "compare [label]" {
			t.Errorf("unexpected Use: got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty Short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty Long description")
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()

		flagsWithShort := map[string]string{
			"list":        "l",
			"list-labels": "L",
			"with-run-id": "i",
			"json":        "j",
			"markdown":    "m",
		}
		for flag, shorthand := range flagsWithShort {
			f := cmd.Flags().Lookup(flag)
			if f == nil {
				t.Errorf("expected flag %q to exist", flag)
				continue
			}
			if f.Shorthand != shorthand {
				t.Errorf("flag %q: expected shorthand %q, got %q", flag, shorthand, f.Shorthand)
			}
		}

		if cmd.Flags().Lookup("db-dir") == nil {
			t.Error("expected db-dir flag")
		}
	})

	t.Run("accepts maximum 1 argument", func(t *testing.T) {
		t.Parallel()
		if cmd.Args == nil {
			t.Error("expected Args to be set")
		}
	})
}

// testRankedReport builds a report with the given variants, each scored
// in descending steps so ordering stays realistic.
func testRankedReport(t *testing.T, labelText string, variants []string) *model.RankedReport {
	t.Helper()

	label, err := model.NewLabel(labelText)
	if err != nil {
		t.Fatalf("failed to create label: %v", err)
	}

	candidates := make([]model.ScoredCandidate, 0, len(variants))
	for i, variant := range variants {
		candidates = append(candidates, model.ScoredCandidate{
			Candidate: model.Candidate{
				Variant:  variant,
				Class:    model.ClassSubstitution,
				Position: 0,
			},
			Score:    0.9 - 0.1*float64(i),
			Distance: 1,
			Classes:  []model.Class{model.ClassSubstitution},
		})
	}

	return model.NewRankedReport(label, candidates)
}

func TestCompareRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		previousVariants   []string
		currentVariants    []string
		wantNewCount       int
		wantDisappearedCnt int
		wantUnchangedCount int
	}{
		{
			name:               "no changes when variants are identical",
			previousVariants:   []string{"vitalìk", "vitlik"},
			currentVariants:    []string{"vitalìk", "vitlik"},
			wantNewCount:       0,
			wantDisappearedCnt: 0,
			wantUnchangedCount: 2,
		},
		{
			name:               "detects new variants",
			previousVariants:   []string{"vitalìk"},
			currentVariants:    []string{"vitalìk", "vitlik"},
			wantNewCount:       1,
			wantDisappearedCnt: 0,
			wantUnchangedCount: 1,
		},
		{
			name:               "detects disappeared variants",
			previousVariants:   []string{"vitalìk", "vitlik"},
			currentVariants:    []string{"vitalìk"},
			wantNewCount:       0,
			wantDisappearedCnt: 1,
			wantUnchangedCount: 1,
		},
		{
			name:               "handles mixed changes",
			previousVariants:   []string{"vitalìk", "vitlik"},
			currentVariants:    []string{"vitalìk", "viitalik"},
			wantNewCount:       1,
			wantDisappearedCnt: 1,
			wantUnchangedCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			previous := testRankedReport(t, "vitalik", tt.previousVariants)
			current := testRankedReport(t, "vitalik", tt.currentVariants)

			result := compareRuns(previous, current)

			if result.Label != "vitalik" {
				t.Errorf("Label: got %q, want %q", result.Label, "vitalik")
			}
			if len(result.NewVariants) != tt.wantNewCount {
				t.Errorf("NewVariants count: got %d, want %d", len(result.NewVariants), tt.wantNewCount)
			}
			if len(result.DisappearedVariants) != tt.wantDisappearedCnt {
				t.Errorf("DisappearedVariants count: got %d, want %d",
					len(result.DisappearedVariants), tt.wantDisappearedCnt)
			}
			if result.UnchangedCount != tt.wantUnchangedCount {
				t.Errorf("UnchangedCount: got %d, want %d", result.UnchangedCount, tt.wantUnchangedCount)
			}
		})
	}
}

func TestCompareRunsDiffOrder(t *testing.T) {
	t.Parallel()

	previous := testRankedReport(t, "mydao", []string{"mydo"})
	current := testRankedReport(t, "mydao", []string{"mudao", "mydo", "myda0"})

	result := compareRuns(previous, current)

	// New variants must follow the current run's ranked order.
	want := []string{"mudao", "myda0"}
	if len(result.NewVariants) != len(want) {
		t.Fatalf("NewVariants count: got %d, want %d", len(result.NewVariants), len(want))
	}
	for i, v := range want {
		if result.NewVariants[i] != v {
			t.Errorf("NewVariants[%d]: got %q, want %q", i, result.NewVariants[i], v)
		}
	}
}

func TestCalculateDrift(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name          string
		previous      RunSummary
		current       RunSummary
		wantDirection string
	}{
		{
			name:          "unchanged when same",
			previous:      RunSummary{GeneratedAt: now, CandidateCount: 10, TopScore: 0.8},
			current:       RunSummary{GeneratedAt: now, CandidateCount: 10, TopScore: 0.8},
			wantDirection: driftDirectionUnchanged,
		},
		{
			name:          "worsened when top score increases",
			previous:      RunSummary{CandidateCount: 10, TopScore: 0.7},
			current:       RunSummary{CandidateCount: 10, TopScore: 0.9},
			wantDirection: driftDirectionWorsened,
		},
		{
			name:          "improved when top score decreases",
			previous:      RunSummary{CandidateCount: 10, TopScore: 0.9},
			current:       RunSummary{CandidateCount: 10, TopScore: 0.7},
			wantDirection: driftDirectionImproved,
		},
		{
			name:          "worsened when candidate count increases",
			previous:      RunSummary{CandidateCount: 10, TopScore: 0.8},
			current:       RunSummary{CandidateCount: 15, TopScore: 0.8},
			wantDirection: driftDirectionWorsened,
		},
		{
			name:          "improved when candidate count decreases",
			previous:      RunSummary{CandidateCount: 15, TopScore: 0.8},
			current:       RunSummary{CandidateCount: 10, TopScore: 0.8},
			wantDirection: driftDirectionImproved,
		},
		{
			name:          "top score change dominates candidate count",
			previous:      RunSummary{CandidateCount: 10, TopScore: 0.7},
			current:       RunSummary{CandidateCount: 5, TopScore: 0.9},
			wantDirection: driftDirectionWorsened,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			drift := calculateDrift(tt.previous, tt.current)
			if drift.Direction != tt.wantDirection {
				t.Errorf("Direction: got %q, want %q", drift.Direction, tt.wantDirection)
			}
		})
	}
}

func TestFormatDelta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		delta int
		want  string
	}{
		{name: "positive delta gets plus sign", delta: 5, want: "+5"},
		{name: "negative delta keeps minus sign", delta: -3, want: "-3"},
		{name: "zero delta", delta: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := formatDelta(tt.delta)
			if got != tt.want {
				t.Errorf("formatDelta(%d) = %q, want %q", tt.delta, got, tt.want)
			}
		})
	}
}

func TestFormatDriftDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		direction string
		wantPart  string
	}{
		{name: "improved", direction: driftDirectionImproved, wantPart: "IMPROVED"},
		{name: "worsened", direction: driftDirectionWorsened, wantPart: "WORSENED"},
		{name: "unchanged", direction: driftDirectionUnchanged, wantPart: "UNCHANGED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := formatDriftDirection(tt.direction)
			if got == "" {
				t.Fatal("expected non-empty direction string")
			}
			if got[:len(tt.wantPart)] != tt.wantPart {
				t.Errorf("formatDriftDirection(%q) = %q, want prefix %q", tt.direction, got, tt.wantPart)
			}
		})
	}
}

func TestFormatClassCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		counts map[string]int
		want   string
	}{
		{
			name:   "nil counts returns none",
			counts: nil,
			want:   "none",
		},
		{
			name:   "zero-valued counts returns none",
			counts: map[string]int{"substitution": 0},
			want:   "none",
		},
		{
			name:   "counts follow class priority order",
			counts: map[string]int{"omission": 2, "substitution": 5},
			want:   "substitution:5 omission:2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := formatClassCounts(tt.counts)
			if got != tt.want {
				t.Errorf("formatClassCounts() = %q, want %q", got, tt.want)
			}
		})
	}
}
