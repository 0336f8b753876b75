package responder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hollowoak/threadlens/internal/analysis"
	"github.com/hollowoak/threadlens/internal/model"
)

const (
	topDomainCount    = 5
	topAuthorCount    = 5
	drilldownAuthors  = 3
	searchResultCount = 3
)

const helpText = "I can answer questions about the current selection. Try: " +
	"\"top domains\", \"analyze domain example.com\", \"search <keyword>\", " +
	"\"top authors\", \"sentiment breakdown\", \"activity trend\", or \"summary\"."

// defaultRules returns the built-in cascade in its authoritative order.
func defaultRules() []rule {
	return []rule{
		{
			intent: IntentTopDomains,
			match: func(q string, _ []model.ProcessedPost) bool {
				return containsAny(q, "top source", "top website", "top domain", "top site")
			},
			handle: answerTopDomains,
		},
		{
			intent: IntentDomainDrilldown,
			match: func(q string, posts []model.ProcessedPost) bool {
				if containsAny(q, "domain analysis", "analyze domain", "domain breakdown") {
					return true
				}
				return mentionedDomain(q, posts) != ""
			},
			handle: answerDomainDrilldown,
		},
		{
			intent: IntentSearch,
			match: func(q string, _ []model.ProcessedPost) bool {
				return containsAny(q, "search", "find", "latest", "about")
			},
			handle: answerSearch,
		},
		{
			intent: IntentTopAuthors,
			match: func(q string, _ []model.ProcessedPost) bool {
				return containsAny(q, "author", "user")
			},
			handle: answerTopAuthors,
		},
		{
			intent: IntentSentiment,
			match: func(q string, _ []model.ProcessedPost) bool {
				return strings.Contains(q, "sentiment")
			},
			handle: answerSentiment,
		},
		{
			intent: IntentTrend,
			match: func(q string, _ []model.ProcessedPost) bool {
				return containsAny(q, "trend", "time")
			},
			handle: answerTrend,
		},
		{
			intent: IntentSummary,
			match: func(q string, _ []model.ProcessedPost) bool {
				return strings.Contains(q, "summary")
			},
			handle: answerSummary,
		},
	}
}

// mentionedDomain returns the first observed external domain that appears
// verbatim in the query, or "".
func mentionedDomain(q string, posts []model.ProcessedPost) string {
	for _, d := range analysis.ObservedDomains(posts) {
		if strings.Contains(q, strings.ToLower(d)) {
			return d
		}
	}
	return ""
}

func answerTopDomains(_ string, posts []model.ProcessedPost) string {
	top := analysis.TopDomains(posts, topDomainCount)
	if len(top) == 0 {
		return "No external sources in the current selection."
	}

	var b strings.Builder
	b.WriteString("Top external sources:\n")
	for i, d := range top {
		fmt.Fprintf(&b, "%d. %s (%d posts)\n", i+1, d.Key, d.Count)
	}
	return strings.TrimRight(b.String(), "\n")
}

func answerDomainDrilldown(q string, posts []model.ProcessedPost) string {
	target := mentionedDomain(q, posts)
	if target == "" {
		// Drill-down phrasing without a named domain: use the top source.
		top := analysis.TopDomains(posts, 1)
		if len(top) == 0 {
			return "No external sources in the current selection."
		}
		target = top[0].Key
	}

	stats := analysis.DomainDrilldown(posts, target, drilldownAuthors)
	if stats.Count == 0 {
		return fmt.Sprintf("No posts from %s in the current selection.", target)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d posts, average score %.1f.", stats.Domain, stats.Count, stats.MeanScore)
	if len(stats.TopAuthors) > 0 {
		names := make([]string, len(stats.TopAuthors))
		for i, a := range stats.TopAuthors {
			names[i] = fmt.Sprintf("%s (%d)", a.Key, a.Count)
		}
		fmt.Fprintf(&b, " Top contributors: %s.", strings.Join(names, ", "))
	}
	return b.String()
}

func answerSearch(q string, posts []model.ProcessedPost) string {
	keyword := extractKeywords(q)
	if keyword == "" {
		return "Tell me what to search for, e.g. \"search election coverage\"."
	}

	var matches []model.ProcessedPost
	for _, p := range posts {
		if strings.Contains(analysis.Fold(p.FullText), analysis.Fold(keyword)) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		return fmt.Sprintf("No posts matching %q in the current selection.", keyword)
	}

	recent := make([]model.ProcessedPost, len(matches))
	copy(recent, matches)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].DateTime.After(recent[j].DateTime)
	})
	if len(recent) > searchResultCount {
		recent = recent[:searchResultCount]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d posts match %q. Most recent:\n", len(matches), keyword)
	for _, p := range recent {
		fmt.Fprintf(&b, "- [%s] %s\n", p.Date, snippet(p))
	}
	return strings.TrimRight(b.String(), "\n")
}

func answerTopAuthors(_ string, posts []model.ProcessedPost) string {
	top := analysis.TopAuthors(posts, topAuthorCount)
	if len(top) == 0 {
		return "No authors in the current selection."
	}

	var b strings.Builder
	b.WriteString("Most active authors:\n")
	for i, a := range top {
		fmt.Fprintf(&b, "%d. %s (%d posts)\n", i+1, a.Key, a.Count)
	}
	return strings.TrimRight(b.String(), "\n")
}

func answerSentiment(_ string, posts []model.ProcessedPost) string {
	d := analysis.SentimentDistribution(posts)
	total := d.Total()
	if total == 0 {
		return "No posts in the current selection."
	}

	pct := func(n int) float64 { return float64(n) / float64(total) * 100 }
	return fmt.Sprintf("Sentiment over %d posts: %.1f%% positive, %.1f%% neutral, %.1f%% negative.",
		total, pct(d.Positive), pct(d.Neutral), pct(d.Negative))
}

func answerTrend(_ string, posts []model.ProcessedPost) string {
	peak, ok := analysis.PeakDay(posts)
	if !ok {
		return "No posts in the current selection."
	}
	return fmt.Sprintf("Peak activity was on %s with %d posts.", peak.Date, peak.Count)
}

func answerSummary(_ string, posts []model.ProcessedPost) string {
	stats := analysis.Overview(posts)
	domains := len(analysis.ObservedDomains(posts))
	return fmt.Sprintf("Current selection: %d posts from %d authors across %d external domains.",
		stats.TotalPosts, stats.UniqueAuthors, domains)
}
