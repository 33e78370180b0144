package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".ensguard.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .ensguard.yaml configuration file.
// It extends the built-in tables with project-specific entries and can
// pin generation options so repeated runs stay comparable.
type File struct {
	// Confusables maps a character to additional look-alike substitutes.
	// Keys and values must each be a single character. Custom entries
	// are merged with the built-in table; they never replace it.
	Confusables map[string][]string `yaml:"confusables,omitempty"`

	// Neighbors maps a character to additional keyboard neighbors used
	// by the typo generator. Keys and values must each be a single
	// character. Merged with the built-in QWERTY layout.
	Neighbors map[string][]string `yaml:"neighbors,omitempty"`

	// Classes restricts generation to the named variant classes.
	// CLI flags take precedence over this value.
	Classes []string `yaml:"classes,omitempty"`

	// MaxResults caps the ranked output. CLI flags take precedence.
	MaxResults int `yaml:"maxResults,omitempty"`

	// MinScore drops candidates below this threshold.
	// CLI flags take precedence.
	MinScore float64 `yaml:"minScore,omitempty"`
}

// LoadConfigFile loads custom tables and defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if err := cf.validate(); err != nil {
		return nil, err
	}

	return &cf, nil
}

// validate rejects mappings whose keys or values are not single characters.
// Multi-character entries would silently corrupt the lookup tables, so we
// fail at load time with the offending entry in the message.
func (cf *File) validate() error {
	for key, substitutes := range cf.Confusables {
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("%w: key %q", ErrInvalidConfusableEntry, key)
		}
		for _, s := range substitutes {
			if utf8.RuneCountInString(s) != 1 {
				return fmt.Errorf("%w: substitute %q for key %q", ErrInvalidConfusableEntry, s, key)
			}
		}
	}

	for key, neighbors := range cf.Neighbors {
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("%w: key %q", ErrInvalidNeighborEntry, key)
		}
		for _, n := range neighbors {
			if utf8.RuneCountInString(n) != 1 {
				return fmt.Errorf("%w: neighbor %q for key %q", ErrInvalidNeighborEntry, n, key)
			}
		}
	}

	return nil
}

// ConfusableRunes converts the custom confusable mappings to rune form.
// Must be called after a successful LoadConfigFile; entries are known to
// be single characters at this point.
func (cf *File) ConfusableRunes() map[rune][]rune {
	return runeMapping(cf.Confusables)
}

// NeighborRunes converts the custom keyboard mappings to rune form.
func (cf *File) NeighborRunes() map[rune][]rune {
	return runeMapping(cf.Neighbors)
}

// runeMapping converts a validated string mapping to runes.
func runeMapping(m map[string][]string) map[rune][]rune {
	if len(m) == 0 {
		return nil
	}
	out := make(map[rune][]rune, len(m))
	for key, values := range m {
		r, _ := utf8.DecodeRuneInString(key)
		runes := make([]rune, 0, len(values))
		for _, v := range values {
			vr, _ := utf8.DecodeRuneInString(v)
			runes = append(runes, vr)
		}
		out[r] = runes
	}
	return out
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .ensguard.yaml in the current directory
// 3. Look for .ensguard.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
