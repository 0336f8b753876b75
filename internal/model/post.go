package model

import "time"

// Label is a three-way sentiment bucket.
type Label string

const (
	Positive Label = "Positive"
	Neutral  Label = "Neutral"
	Negative Label = "Negative"
)

// Labels lists all sentiment labels in their canonical order.
func Labels() []Label {
	return []Label{Positive, Neutral, Negative}
}

// Canonical domain sentinels produced by the domain extractor. Posts carrying
// one of these never appear in external-source rankings.
const (
	DomainSelf       = "self"        // no URL: a plain self-post
	DomainSelfReddit = "self.reddit" // site-relative /r/... permalink
	DomainUnknown    = "unknown"     // URL present but unparseable
)

// AuthorDeleted is Reddit's placeholder for removed accounts. Excluded from
// author rankings.
const AuthorDeleted = "[deleted]"

// ProcessedPost is the analysis-ready record: the flattened raw payload plus
// derived date, sentiment, and domain fields. Derived exactly once per
// RawPost and never mutated afterwards.
type ProcessedPost struct {
	RawPost

	// Date is the calendar day (YYYY-MM-DD) of CreatedUTC interpreted in UTC.
	// All per-day aggregation buckets on this field.
	Date           string    `json:"date"`
	DateTime       time.Time `json:"datetime"`
	FullText       string    `json:"full_text,omitempty"` // title + " " + selftext
	SentimentScore float64   `json:"sentiment_score"`
	Sentiment      Label     `json:"sentiment_label"`
	Domain         string    `json:"domain"`
}

// InternalDomain reports whether d is one of the sentinels rather than a
// real external source.
func InternalDomain(d string) bool {
	switch d {
	case DomainSelf, DomainSelfReddit, DomainUnknown:
		return true
	}
	return false
}
