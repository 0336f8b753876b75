package analysis

import (
	"sort"
	"strings"

	"github.com/hollowoak/threadlens/internal/model"
)

// TopicTerms names a topic and the terms that identify it. Term lists come
// from the precomputed topics artifact; only the top few terms are used for
// matching.
type TopicTerms struct {
	Name  string
	Terms []string
}

// EvolutionPoint is one day of the topic-evolution table: per-topic match
// counts keyed by topic name.
type EvolutionPoint struct {
	Date   string         `json:"date"`
	Counts map[string]int `json:"counts"`
}

// matchTerms is how many of a topic's leading terms participate in matching.
const matchTerms = 3

// TopicEvolution buckets posts by day and topic. A post matches a topic when
// its full_text contains any of the topic's top terms, case-insensitively; a
// post may match several topics. Days are ascending; every day carries a
// count for every topic, zero-filled.
func TopicEvolution(posts []model.ProcessedPost, topics []TopicTerms) []EvolutionPoint {
	if len(topics) == 0 {
		return nil
	}

	folded := make([][]string, len(topics))
	for i, t := range topics {
		terms := t.Terms
		if len(terms) > matchTerms {
			terms = terms[:matchTerms]
		}
		for _, term := range terms {
			folded[i] = append(folded[i], Fold(term))
		}
	}

	var order []string
	days := make(map[string]map[string]int)

	for _, p := range posts {
		if p.FullText == "" {
			continue
		}
		text := Fold(p.FullText)
		for i, t := range topics {
			if !containsAny(text, folded[i]) {
				continue
			}
			counts, ok := days[p.Date]
			if !ok {
				counts = make(map[string]int, len(topics))
				for _, topic := range topics {
					counts[topic.Name] = 0
				}
				days[p.Date] = counts
				order = append(order, p.Date)
			}
			counts[t.Name]++
		}
	}

	out := make([]EvolutionPoint, len(order))
	for i, date := range order {
		out[i] = EvolutionPoint{Date: date, Counts: days[date]}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if t != "" && strings.Contains(text, t) {
			return true
		}
	}
	return false
}
