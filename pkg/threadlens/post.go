package threadlens

import "time"

// Post is an analysis-ready record derived from one raw dataset item.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	SelfText    string `json:"selftext,omitempty"`
	Author      string `json:"author"`
	Subreddit   string `json:"subreddit"`
	Score       int    `json:"score"`
	NumComments int    `json:"num_comments"`
	URL         string `json:"url"`
	Permalink   string `json:"permalink"`

	Date           string    `json:"date"` // calendar day, YYYY-MM-DD in UTC
	CreatedAt      time.Time `json:"created_at"`
	FullText       string    `json:"full_text,omitempty"`
	SentimentScore float64   `json:"sentiment_score"`
	Sentiment      string    `json:"sentiment_label"` // Positive, Neutral, Negative
	Domain         string    `json:"domain"`
}

// Filter restricts the working set every view and answer operates on.
// Zero-value From/To mean unbounded; nil Sentiments means all labels.
type Filter struct {
	From       time.Time
	To         time.Time
	Sentiments []string
	Keyword    string
}

// Answer is the result of a free-text analytical query.
type Answer struct {
	Intent string `json:"intent"`
	Text   string `json:"text"`
}

// DayCount is the number of posts on one calendar day.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Rank is one entry of a most-frequent ranking.
type Rank struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Distribution is the sentiment label breakdown of the working set.
type Distribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Overview is the headline summary of the working set.
type Overview struct {
	Posts             int    `json:"posts"`
	Authors           int    `json:"authors"`
	Subreddits        int    `json:"subreddits"`
	StartDate         string `json:"start_date,omitempty"`
	EndDate           string `json:"end_date,omitempty"`
	PeakDay           string `json:"peak_day,omitempty"`
	DominantSentiment string `json:"dominant_sentiment,omitempty"`
}
