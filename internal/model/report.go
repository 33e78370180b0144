package model

import "time"

// RankedReport is the result of a full generation run: the ranked
// look-alike variants for one label plus summary metadata.
//
// Design decision: We use a single struct with the full candidate list
// rather than separate summary/detail types to simplify serialization and
// database storage. Summary counts are computed once at construction so
// report writers never re-scan the candidate list.
type RankedReport struct {
	// Label is the input label exactly as provided.
	Label string `json:"label"`

	// Normalized is the normalized form all variants derive from.
	Normalized string `json:"normalized"`

	// GeneratedAt is the timestamp when the run was performed.
	GeneratedAt time.Time `json:"generated_at"`

	// Candidates is the ranked variant list, best first.
	Candidates []ScoredCandidate `json:"candidates"`

	// ClassCounts maps class names to the number of candidates whose
	// winning explanation has that class.
	ClassCounts map[string]int `json:"class_counts"`

	// TopScore is the score of the highest-ranked candidate,
	// or 0 when no candidates survived filtering.
	TopScore float64 `json:"top_score"`
}

// NewRankedReport builds a report for the given label and ranked candidates.
func NewRankedReport(label *Label, candidates []ScoredCandidate) *RankedReport {
	counts := make(map[string]int)
	for _, c := range candidates {
		counts[c.Class.String()]++
	}

	report := &RankedReport{
		Label:       label.Original(),
		Normalized:  label.Normalized(),
		GeneratedAt: time.Now(),
		Candidates:  candidates,
		ClassCounts: counts,
	}
	if len(candidates) > 0 {
		report.TopScore = candidates[0].Score
	}
	return report
}

// TotalCandidates returns the number of ranked candidates.
func (r *RankedReport) TotalCandidates() int {
	return len(r.Candidates)
}

// CountByClass returns the number of candidates whose winning explanation
// has the given class.
func (r *RankedReport) CountByClass(c Class) int {
	return r.ClassCounts[c.String()]
}

// HasCandidates reports whether any candidates survived filtering.
func (r *RankedReport) HasCandidates() bool {
	return len(r.Candidates) > 0
}

// Top returns at most n highest-ranked candidates.
func (r *RankedReport) Top(n int) []ScoredCandidate {
	if n < 0 || n > len(r.Candidates) {
		n = len(r.Candidates)
	}
	return r.Candidates[:n]
}
