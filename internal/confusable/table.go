package confusable

// Table holds the read-only lookup data behind variant generation:
// homoglyph substitutes, keyboard adjacency, and pairwise similarity.
//
// A Table is built once by New, never mutated afterwards, and safe to
// share across goroutines.
type Table struct {
	// substitutes maps a rune to its visually-similar replacements,
	// unioned across all script families.
	substitutes map[rune][]rune

	// neighbors maps a rune to the keys reachable by one physical
	// key-neighbor step.
	neighbors map[rune][]rune

	// similarity holds curated pairwise similarity for homoglyph pairs,
	// keyed by [original, replacement].
	similarity map[[2]rune]float64
}

// defaultSimilarity is used for replacement pairs that are neither
// curated homoglyphs nor keyboard neighbors (custom table entries from
// the config file without an explicit similarity).
const defaultSimilarity = 0.75

// Option configures a Table during construction.
// This follows the functional options pattern for clean API design.
type Option func(*Table)

// WithSubstitutes adds custom substitution entries on top of the built-in
// script families. Entries are unioned with existing ones, never
// overwritten, and self-substitutions are dropped so the table invariant
// (every substitute differs from its key) holds for user data too.
func WithSubstitutes(custom map[rune][]rune) Option {
	return func(t *Table) {
		for key, subs := range custom {
			for _, sub := range subs {
				if sub == key {
					continue
				}
				t.addSubstitute(key, sub, defaultSimilarity)
			}
		}
	}
}

// WithNeighbors adds custom keyboard-adjacency entries, unioned with the
// derived QWERTY sets. Useful for non-QWERTY layouts.
func WithNeighbors(custom map[rune][]rune) Option {
	return func(t *Table) {
		for key, ns := range custom {
			for _, n := range ns {
				if n == key || t.hasNeighbor(key, n) {
					continue
				}
				t.neighbors[key] = append(t.neighbors[key], n)
			}
		}
	}
}

// New builds the lookup table from the built-in script families and the
// derived QWERTY adjacency, then applies any options.
func New(opts ...Option) *Table {
	t := &Table{
		substitutes: make(map[rune][]rune),
		neighbors:   buildNeighbors(),
		similarity:  make(map[[2]rune]float64),
	}

	for _, mapping := range builtinMappings {
		for key, subs := range mapping.entries {
			for _, sub := range subs {
				t.addSubstitute(key, sub.r, sub.sim)
			}
		}
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// addSubstitute unions one substitute into the table, keeping the first
// similarity seen for a pair.
func (t *Table) addSubstitute(key, sub rune, sim float64) {
	for _, existing := range t.substitutes[key] {
		if existing == sub {
			return
		}
	}
	t.substitutes[key] = append(t.substitutes[key], sub)
	pair := [2]rune{key, sub}
	if _, ok := t.similarity[pair]; !ok {
		t.similarity[pair] = sim
	}
}

// hasNeighbor reports whether n is already recorded as a neighbor of key.
func (t *Table) hasNeighbor(key, n rune) bool {
	for _, existing := range t.neighbors[key] {
		if existing == n {
			return true
		}
	}
	return false
}

// Lookup returns the substitution candidates for a rune.
// Unmapped runes return an empty slice, never an error.
// The returned slice is a copy; callers may mutate it freely.
func (t *Table) Lookup(r rune) []rune {
	return copyRunes(t.substitutes[r])
}

// Neighbors returns the keyboard-neighbor typo candidates for a rune.
// Unmapped runes return an empty slice, never an error.
func (t *Table) Neighbors(r rune) []rune {
	return copyRunes(t.neighbors[r])
}

// Similarity returns the pairwise visual similarity between an original
// character and its replacement, in [0, 1].
//
// Curated homoglyph pairs win; otherwise keyboard geometry decides for
// letter pairs, and unknown pairs fall back to a conservative default.
func (t *Table) Similarity(orig, repl rune) float64 {
	if sim, ok := t.similarity[[2]rune{orig, repl}]; ok {
		return sim
	}
	if _, ok := keyGrid[orig]; ok {
		if _, ok := keyGrid[repl]; ok {
			return typoSimilarity(orig, repl)
		}
	}
	return defaultSimilarity
}

func copyRunes(src []rune) []rune {
	if len(src) == 0 {
		return nil
	}
	out := make([]rune, len(src))
	copy(out, src)
	return out
}
