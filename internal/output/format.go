package output

import (
	"fmt"

	"github.com/hollowoak/threadlens/internal/model"
)

// Detail controls how much of each post an export carries.
type Detail int

const (
	// Minimal keeps the derived metrics and drops the text bodies.
	Minimal Detail = iota
	// Full preserves every field.
	Full
)

// ParseDetail maps a config string to a Detail level.
func ParseDetail(s string) (Detail, error) {
	switch s {
	case "minimal":
		return Minimal, nil
	case "full", "":
		return Full, nil
	}
	return Full, fmt.Errorf("unknown detail level %q", s)
}

// FormatPost returns a copy of the post with fields stripped according to
// the detail level. At Minimal: SelfText and FullText are zeroed (omitted
// from JSON via omitempty). At Full: all fields preserved.
func FormatPost(p model.ProcessedPost, detail Detail) model.ProcessedPost {
	if detail == Minimal {
		p.SelfText = ""
		p.FullText = ""
	}
	return p
}
