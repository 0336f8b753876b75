package analysis

import "github.com/hollowoak/threadlens/internal/model"

// DomainStats is the per-domain drill-down: volume, mean engagement score,
// and the top contributing authors.
type DomainStats struct {
	Domain     string      `json:"domain"`
	Count      int         `json:"count"`
	MeanScore  float64     `json:"meanScore"`
	TopAuthors []RankEntry `json:"topAuthors"`
}

// DomainDrilldown computes stats for the posts sourced from one domain.
// Matching is exact on the canonical domain. Zero-valued on no matches.
func DomainDrilldown(posts []model.ProcessedPost, domain string, topAuthors int) DomainStats {
	var subset []model.ProcessedPost
	total := 0
	for _, p := range posts {
		if p.Domain != domain {
			continue
		}
		subset = append(subset, p)
		total += p.Score
	}

	stats := DomainStats{Domain: domain, Count: len(subset)}
	if len(subset) > 0 {
		stats.MeanScore = float64(total) / float64(len(subset))
		stats.TopAuthors = TopAuthors(subset, topAuthors)
	}
	return stats
}

// ObservedDomains returns the distinct external domains present in the
// collection, in first-encountered order. Sentinels are excluded.
func ObservedDomains(posts []model.ProcessedPost) []string {
	groups := countBy(posts,
		func(p model.ProcessedPost) string { return p.Domain },
		func(key string) bool { return key == "" || model.InternalDomain(key) })
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Key
	}
	return out
}
