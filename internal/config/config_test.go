package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
// This test ensures that defaults are documented through tests and that changes
// to defaults are intentional (tests will fail if defaults change unexpectedly).
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	// Verify each default value explicitly
	// This serves as living documentation of the defaults
	t.Run("default MaxResults is 200", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxResults != 200 {
			t.Errorf("expected MaxResults to be 200, got %d", cfg.MaxResults)
		}
	})

	t.Run("default MinScore is 0", func(t *testing.T) {
		t.Parallel()
		if cfg.MinScore != 0 {
			t.Errorf("expected MinScore to be 0, got %v", cfg.MinScore)
		}
	})

	t.Run("default Classes is empty", func(t *testing.T) {
		t.Parallel()
		if len(cfg.Classes) != 0 {
			t.Errorf("expected no class restriction by default, got %v", cfg.Classes)
		}
	})

	t.Run("default Verbose is false", func(t *testing.T) {
		t.Parallel()
		if cfg.Verbose {
			t.Error("expected Verbose to be false")
		}
	})

	t.Run("default SaveToDB is false", func(t *testing.T) {
		t.Parallel()
		if cfg.SaveToDB {
			t.Error("expected SaveToDB to be false")
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	// validConfig returns a minimal valid configuration.
	// Tests can modify specific fields to test validation rules.
	validConfig := func() *Config {
		return &Config{
			Labels:     []string{"vitalik"},
			MaxResults: DefaultMaxResults,
		}
	}

	t.Run("valid config returns nil", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("multiple labels is valid", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Labels = []string{"vitalik", "uniswap", "mydao"}

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("empty labels returns ErrNoLabel", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Labels = []string{}

		err := cfg.Validate()
		if !errors.Is(err, ErrNoLabel) {
			t.Errorf("expected ErrNoLabel, got %v", err)
		}
	})

	t.Run("nil labels returns ErrNoLabel", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Labels = nil

		err := cfg.Validate()
		if !errors.Is(err, ErrNoLabel) {
			t.Errorf("expected ErrNoLabel, got %v", err)
		}
	})

	t.Run("negative max results returns ErrInvalidMaxResults", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.MaxResults = -1

		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidMaxResults) {
			t.Errorf("expected ErrInvalidMaxResults, got %v", err)
		}
	})

	t.Run("zero max results is valid", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.MaxResults = 0

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("min score above one returns ErrInvalidMinScore", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.MinScore = 1.5

		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidMinScore) {
			t.Errorf("expected ErrInvalidMinScore, got %v", err)
		}
	})

	t.Run("negative min score returns ErrInvalidMinScore", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.MinScore = -0.1

		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidMinScore) {
			t.Errorf("expected ErrInvalidMinScore, got %v", err)
		}
	})

	t.Run("json and markdown both enabled returns ErrConflictingReportFormats", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.JSONReport = true
		cfg.MarkdownReport = true

		err := cfg.Validate()
		if !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("json and csv both enabled returns ErrConflictingReportFormats", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.JSONReport = true
		cfg.CSVReport = true

		err := cfg.Validate()
		if !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("json only is valid", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.JSONReport = true

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("csv only is valid", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.CSVReport = true

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.ensguard.yaml")
		if err == nil {
			t.Fatal("expected error for non-existent file")
		}
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DefaultConfigFile)

		content := `maxResults: 50
minScore: 0.4
classes:
  - substitution
  - omission
confusables:
  a: ["@", "4"]
neighbors:
  q: ["1"]
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cfg, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.MaxResults != 50 {
			t.Errorf("expected maxResults 50, got %d", cfg.MaxResults)
		}
		if cfg.MinScore != 0.4 {
			t.Errorf("expected minScore 0.4, got %v", cfg.MinScore)
		}
		if len(cfg.Classes) != 2 {
			t.Errorf("expected 2 classes, got %v", cfg.Classes)
		}
		if len(cfg.Confusables["a"]) != 2 {
			t.Errorf("expected 2 substitutes for 'a', got %v", cfg.Confusables["a"])
		}
		if len(cfg.Neighbors["q"]) != 1 {
			t.Errorf("expected 1 neighbor for 'q', got %v", cfg.Neighbors["q"])
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DefaultConfigFile)

		content := `invalid: yaml: content: [}`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfigFile(configPath)
		if err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("rejects multi-character confusable key", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DefaultConfigFile)

		content := `confusables:
  ab: ["x"]
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfigFile(configPath)
		if !errors.Is(err, ErrInvalidConfusableEntry) {
			t.Errorf("expected ErrInvalidConfusableEntry, got %v", err)
		}
	})

	t.Run("rejects multi-character substitute", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DefaultConfigFile)

		content := `confusables:
  a: ["xy"]
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfigFile(configPath)
		if !errors.Is(err, ErrInvalidConfusableEntry) {
			t.Errorf("expected ErrInvalidConfusableEntry, got %v", err)
		}
	})

	t.Run("rejects multi-character neighbor", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DefaultConfigFile)

		content := `neighbors:
  q: ["12"]
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfigFile(configPath)
		if !errors.Is(err, ErrInvalidNeighborEntry) {
			t.Errorf("expected ErrInvalidNeighborEntry, got %v", err)
		}
	})

	t.Run("non-ASCII single characters are accepted", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DefaultConfigFile)

		content := `confusables:
  a: ["ä"]
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cfg, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		runes := cfg.ConfusableRunes()
		if len(runes['a']) != 1 || runes['a'][0] != 'ä' {
			t.Errorf("expected rune mapping a -> ä, got %v", runes)
		}
	})
}

// TestFileRuneMappings tests the rune conversion helpers.
func TestFileRuneMappings(t *testing.T) {
	t.Parallel()

	t.Run("empty mappings yield nil", func(t *testing.T) {
		t.Parallel()

		cf := &File{}
		if cf.ConfusableRunes() != nil {
			t.Error("expected nil confusable runes for empty mapping")
		}
		if cf.NeighborRunes() != nil {
			t.Error("expected nil neighbor runes for empty mapping")
		}
	})

	t.Run("converts all entries", func(t *testing.T) {
		t.Parallel()

		cf := &File{
			Confusables: map[string][]string{
				"a": {"@", "4"},
				"o": {"0"},
			},
			Neighbors: map[string][]string{
				"q": {"1", "2"},
			},
		}

		confusables := cf.ConfusableRunes()
		if len(confusables) != 2 {
			t.Fatalf("expected 2 confusable keys, got %d", len(confusables))
		}
		if len(confusables['a']) != 2 {
			t.Errorf("expected 2 substitutes for 'a', got %v", confusables['a'])
		}

		neighbors := cf.NeighborRunes()
		if len(neighbors['q']) != 2 {
			t.Errorf("expected 2 neighbors for 'q', got %v", neighbors['q'])
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Run("returns explicit path if exists", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "custom.yaml")

		if err := os.WriteFile(configPath, []byte("maxResults: 10"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		result := FindConfigFile(configPath)
		if result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		result := FindConfigFile("/nonexistent/path/config.yaml")
		if result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})

	t.Run("returns empty when no config found", func(_ *testing.T) {
		result := FindConfigFile("")
		// This may or may not find a config depending on the system
		// Just ensure it doesn't panic
		_ = result
	})
}

// TestXDGDirs tests XDG directory functions.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	t.Run("XDGDataDir returns non-empty path", func(t *testing.T) {
		t.Parallel()

		dir := XDGDataDir()
		if dir == "" {
			t.Error("expected non-empty XDG data dir")
		}
	})

	t.Run("XDGConfigDir returns non-empty path", func(t *testing.T) {
		t.Parallel()

		dir := XDGConfigDir()
		if dir == "" {
			t.Error("expected non-empty XDG config dir")
		}
	})
}
