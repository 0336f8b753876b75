package model

import "time"

// FilterState is the analyst-chosen view constraint: a closed date interval,
// an allowed sentiment set, and a free-text keyword. Lives only for the
// session; never persisted.
type FilterState struct {
	From       time.Time
	To         time.Time
	Sentiments []Label // empty set is legal and matches nothing
	Keyword    string  // empty matches everything
}

// Allows reports whether the sentiment set admits l.
func (f FilterState) Allows(l Label) bool {
	for _, s := range f.Sentiments {
		if s == l {
			return true
		}
	}
	return false
}

// AllSentiments is the non-restrictive sentiment set.
func AllSentiments() []Label {
	return Labels()
}
