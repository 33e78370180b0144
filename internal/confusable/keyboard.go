package confusable

import "math"

// qwertyRows is the physical layout of a US QWERTY keyboard's letter
// block. Adjacency and key distance are derived from this grid rather
// than hand-written neighbor strings, so the neighbor sets stay
// consistent with the geometry.
var qwertyRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

// rowOffsets approximates the horizontal stagger of each keyboard row in
// key widths. Without the stagger, diagonal neighbors come out wrong
// (e.g. 'q' would neighbor 'z').
var rowOffsets = []float64{0, 0.25, 0.75}

// keyPosition is the physical position of a key on the grid.
type keyPosition struct {
	row float64
	col float64
}

// keyGrid maps each letter to its physical position.
var keyGrid = buildKeyGrid()

func buildKeyGrid() map[rune]keyPosition {
	grid := make(map[rune]keyPosition)
	for r, row := range qwertyRows {
		for c, ch := range row {
			grid[ch] = keyPosition{
				row: float64(r),
				col: float64(c) + rowOffsets[r],
			}
		}
	}
	return grid
}

// keyDistance returns the euclidean distance between two keys on the
// grid, or a large constant when either rune is not a letter key.
func keyDistance(a, b rune) float64 {
	pa, oka := keyGrid[a]
	pb, okb := keyGrid[b]
	if !oka || !okb {
		return 10
	}
	dr := pa.row - pb.row
	dc := pa.col - pb.col
	return math.Sqrt(dr*dr + dc*dc)
}

// neighborRadius bounds which keys count as one physical key-neighbor
// step. 1.5 covers horizontal neighbors and the staggered diagonals
// while excluding two-key jumps.
const neighborRadius = 1.5

// buildNeighbors derives the adjacency sets for all letter keys.
// Iteration is over the row strings, not the map, so the resulting
// neighbor ordering is deterministic.
func buildNeighbors() map[rune][]rune {
	neighbors := make(map[rune][]rune)
	for _, row := range qwertyRows {
		for _, ch := range row {
			for _, otherRow := range qwertyRows {
				for _, other := range otherRow {
					if other == ch {
						continue
					}
					if keyDistance(ch, other) <= neighborRadius {
						neighbors[ch] = append(neighbors[ch], other)
					}
				}
			}
		}
	}
	return neighbors
}

// typoSimilarity converts key distance into a visual-similarity factor
// for neighbor typos. A typo is never a homoglyph, so even adjacent keys
// score well below the curated confusable pairs.
func typoSimilarity(a, b rune) float64 {
	d := keyDistance(a, b)
	switch {
	case d <= 1.0:
		return 0.45
	case d <= neighborRadius:
		return 0.35
	default:
		return 0.2
	}
}
