package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestGenerateEndToEnd runs the generate command against a real label and
// checks the JSON report written to disk. Everything is offline, so this
// exercises the full pipeline without external dependencies.
func TestGenerateEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	reportPath := filepath.Join(tmpDir, "report.json")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"generate", "--json", "-o", reportPath, "--max", "25", "vitalik"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	content, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}

	var payload struct {
		Version string `json:"version"`
		Report  struct {
			Label      string `json:"label"`
			Normalized string `json:"normalized"`
			Candidates []struct {
				Variant string  `json:"variant"`
				Class   string  `json:"class"`
				Score   float64 `json:"score"`
			} `json:"candidates"`
			TopScore float64 `json:"top_score"`
		} `json:"report"`
	}
	if err := json.Unmarshal(content, &payload); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}

	if payload.Report.Normalized != "vitalik" {
		t.Errorf("expected normalized label 'vitalik', got %q", payload.Report.Normalized)
	}
	if len(payload.Report.Candidates) == 0 {
		t.Fatal("expected ranked candidates in report")
	}
	if len(payload.Report.Candidates) > 25 {
		t.Errorf("expected at most 25 candidates, got %d", len(payload.Report.Candidates))
	}
	if payload.Report.TopScore != payload.Report.Candidates[0].Score {
		t.Errorf("top score %f does not match first candidate score %f",
			payload.Report.TopScore, payload.Report.Candidates[0].Score)
	}

	// Scores must be non-increasing down the ranking
	for i := 1; i < len(payload.Report.Candidates); i++ {
		if payload.Report.Candidates[i].Score > payload.Report.Candidates[i-1].Score {
			t.Errorf("candidate %d score %f exceeds previous score %f",
				i, payload.Report.Candidates[i].Score, payload.Report.Candidates[i-1].Score)
		}
	}
}

// TestGenerateWatchlistEndToEnd checks that the watchlist export contains
// one variant per line in ranked order.
func TestGenerateWatchlistEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	reportPath := filepath.Join(tmpDir, "report.txt")
	watchlistPath := filepath.Join(tmpDir, "watch.txt")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"generate", "-o", reportPath, "-w", watchlistPath, "--max", "10", "mydao"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	content, err := os.ReadFile(watchlistPath)
	if err != nil {
		t.Fatalf("failed to read watchlist: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) == 0 || lines[0] == "" {
		t.Fatal("expected watchlist entries")
	}
	if len(lines) > 10 {
		t.Errorf("expected at most 10 watchlist entries, got %d", len(lines))
	}
	for i, line := range lines {
		if line == "mydao" {
			t.Errorf("line %d: watchlist must not contain the original label", i)
		}
	}
}

// TestGenerateAndCompareEndToEnd saves two runs to a temporary database
// and then compares them through the compare command.
func TestGenerateAndCompareEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	dbDir := filepath.Join(tmpDir, "db")
	reportPath := filepath.Join(tmpDir, "report.txt")

	// Save two runs with different limits so the comparison has drift
	for _, maxFlag := range []string{"20", "30"} {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{
			"generate", "--save", "--db-dir", dbDir,
			"-o", reportPath, "--max", maxFlag, "uniswap",
		})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("generate --max %s failed: %v", maxFlag, err)
		}
	}

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"compare", "--db-dir", dbDir, "uniswap"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	// History listing should also succeed for the saved label
	cmd = NewRootCmd()
	cmd.SetArgs([]string{"compare", "--db-dir", dbDir, "--list", "uniswap"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("compare --list failed: %v", err)
	}
}

// TestCompareWithoutHistory checks the error path when no runs exist.
func TestCompareWithoutHistory(t *testing.T) {
	tmpDir := t.TempDir()
	dbDir := filepath.Join(tmpDir, "db")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"compare", "--db-dir", dbDir, "uniswap"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when database does not exist")
	}
}
