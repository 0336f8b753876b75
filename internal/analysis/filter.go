package analysis

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/hollowoak/threadlens/internal/model"
)

// Filter returns the subsequence of posts satisfying every FilterState
// constraint: DateTime within [From, To] (inclusive both ends), sentiment
// label in the allowed set, and full_text containing the keyword
// case-insensitively. Relative order is preserved. The result is always a
// fresh slice; the input is never mutated.
//
// Recomputation is full-scan on every call. Dataset sizes here make O(n)
// per filter change acceptable, so there is no incremental maintenance.
func Filter(posts []model.ProcessedPost, f model.FilterState) []model.ProcessedPost {
	keyword := Fold(f.Keyword)

	out := make([]model.ProcessedPost, 0, len(posts))
	for _, p := range posts {
		if !f.From.IsZero() && p.DateTime.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && p.DateTime.After(f.To) {
			continue
		}
		if !f.Allows(p.Sentiment) {
			continue
		}
		if keyword != "" && !strings.Contains(Fold(p.FullText), keyword) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Fold lowercases s with Unicode case folding, the comparison form used for
// all keyword matching.
func Fold(s string) string {
	return cases.Fold().String(s)
}
