package analysis

import (
	"sort"

	"github.com/hollowoak/threadlens/internal/model"
)

// DayCount is one per-day bucket in the activity timeline.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// RankEntry is one row of a ranked grouping (authors, domains, subreddits).
type RankEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Distribution holds sentiment counts. All three keys are always present,
// zero-filled when a label is absent from the input.
type Distribution struct {
	Positive int `json:"Positive"`
	Neutral  int `json:"Neutral"`
	Negative int `json:"Negative"`
}

// Total returns the sum of all three counts, which equals the size of the
// collection the distribution was computed from.
func (d Distribution) Total() int {
	return d.Positive + d.Neutral + d.Negative
}

// Count returns the count for a single label.
func (d Distribution) Count(l model.Label) int {
	switch l {
	case model.Positive:
		return d.Positive
	case model.Negative:
		return d.Negative
	default:
		return d.Neutral
	}
}

// OverviewStats summarizes a collection at a glance.
type OverviewStats struct {
	TotalPosts       int    `json:"totalPosts"`
	UniqueAuthors    int    `json:"uniqueAuthors"`
	UniqueSubreddits int    `json:"uniqueSubreddits"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
}

// SentimentPoint is one day of the sentiment timeline.
type SentimentPoint struct {
	Date     string `json:"date"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
	Total    int    `json:"total"`
}

// DayCounts groups posts by calendar day and returns the buckets sorted
// ascending by date.
func DayCounts(posts []model.ProcessedPost) []DayCount {
	groups := countBy(posts, func(p model.ProcessedPost) string { return p.Date }, nil)
	out := make([]DayCount, len(groups))
	for i, g := range groups {
		out[i] = DayCount{Date: g.Key, Count: g.Count}
	}
	// YYYY-MM-DD sorts chronologically as a string.
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// SentimentDistribution counts each label over the collection.
func SentimentDistribution(posts []model.ProcessedPost) Distribution {
	var d Distribution
	for _, p := range posts {
		switch p.Sentiment {
		case model.Positive:
			d.Positive++
		case model.Negative:
			d.Negative++
		default:
			d.Neutral++
		}
	}
	return d
}

// TopAuthors ranks authors by post count, descending, truncated to n.
// The deletion sentinel and empty authors are excluded. Ties keep
// first-encountered order.
func TopAuthors(posts []model.ProcessedPost, n int) []RankEntry {
	groups := countBy(posts,
		func(p model.ProcessedPost) string { return p.Author },
		func(key string) bool { return key == "" || key == model.AuthorDeleted })
	return rank(groups, n)
}

// TopDomains ranks external source domains by post count, descending,
// truncated to n. Self/internal/unknown sentinels are excluded: a ranking
// of external sources must not contain non-sources.
func TopDomains(posts []model.ProcessedPost, n int) []RankEntry {
	groups := countBy(posts,
		func(p model.ProcessedPost) string { return p.Domain },
		func(key string) bool { return key == "" || model.InternalDomain(key) })
	return rank(groups, n)
}

// TopSubreddits ranks subreddits by post count, descending, truncated to n.
func TopSubreddits(posts []model.ProcessedPost, n int) []RankEntry {
	groups := countBy(posts,
		func(p model.ProcessedPost) string { return p.Subreddit },
		func(key string) bool { return key == "" })
	return rank(groups, n)
}

// PeakDay returns the day with the maximum post count. Ties keep the
// first-encountered day. ok is false on empty input.
func PeakDay(posts []model.ProcessedPost) (peak DayCount, ok bool) {
	groups := countBy(posts, func(p model.ProcessedPost) string { return p.Date }, nil)
	for _, g := range groups {
		if !ok || g.Count > peak.Count {
			peak = DayCount{Date: g.Key, Count: g.Count}
			ok = true
		}
	}
	return peak, ok
}

// DominantSentiment returns the label with the maximum count. Ties keep the
// label encountered first in the collection. ok is false on empty input.
func DominantSentiment(posts []model.ProcessedPost) (dominant model.Label, ok bool) {
	groups := countBy(posts, func(p model.ProcessedPost) string { return string(p.Sentiment) }, nil)
	best := -1
	for _, g := range groups {
		if g.Count > best {
			dominant = model.Label(g.Key)
			best = g.Count
			ok = true
		}
	}
	return dominant, ok
}

// Overview computes summary statistics for the collection.
func Overview(posts []model.ProcessedPost) OverviewStats {
	stats := OverviewStats{TotalPosts: len(posts)}

	authors := make(map[string]struct{})
	subreddits := make(map[string]struct{})
	for _, p := range posts {
		if p.Author != "" && p.Author != model.AuthorDeleted {
			authors[p.Author] = struct{}{}
		}
		if p.Subreddit != "" {
			subreddits[p.Subreddit] = struct{}{}
		}
		if stats.StartDate == "" || p.Date < stats.StartDate {
			stats.StartDate = p.Date
		}
		if p.Date > stats.EndDate {
			stats.EndDate = p.Date
		}
	}
	stats.UniqueAuthors = len(authors)
	stats.UniqueSubreddits = len(subreddits)
	return stats
}

// SentimentTimeline groups sentiment counts by day, ascending by date.
func SentimentTimeline(posts []model.ProcessedPost) []SentimentPoint {
	type entry struct {
		key   string
		point *SentimentPoint
	}
	var order []entry
	index := make(map[string]*SentimentPoint)

	for _, p := range posts {
		pt, ok := index[p.Date]
		if !ok {
			pt = &SentimentPoint{Date: p.Date}
			index[p.Date] = pt
			order = append(order, entry{key: p.Date, point: pt})
		}
		switch p.Sentiment {
		case model.Positive:
			pt.Positive++
		case model.Negative:
			pt.Negative++
		default:
			pt.Neutral++
		}
		pt.Total++
	}

	out := make([]SentimentPoint, len(order))
	for i, e := range order {
		out[i] = *e.point
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// group is one key's accumulated count, in first-encountered order.
type group struct {
	Key   string
	Count int
}

// countBy groups posts by key, preserving first-encountered order. Keys for
// which skip returns true are excluded.
func countBy(posts []model.ProcessedPost, key func(model.ProcessedPost) string, skip func(string) bool) []group {
	var order []string
	counts := make(map[string]int)

	for _, p := range posts {
		k := key(p)
		if skip != nil && skip(k) {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	out := make([]group, len(order))
	for i, k := range order {
		out[i] = group{Key: k, Count: counts[k]}
	}
	return out
}

// rank sorts groups descending by count (stable, so ties keep
// first-encountered order) and truncates to n.
func rank(groups []group, n int) []RankEntry {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Count > groups[j].Count })
	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}
	out := make([]RankEntry, len(groups))
	for i, g := range groups {
		out[i] = RankEntry{Key: g.Key, Count: g.Count}
	}
	return out
}
