package threadlens

import (
	"context"
	"fmt"

	"github.com/hollowoak/threadlens/internal/analysis"
	"github.com/hollowoak/threadlens/internal/artifact"
	"github.com/hollowoak/threadlens/internal/engine"
	"github.com/hollowoak/threadlens/internal/engine/sentiment"
	"github.com/hollowoak/threadlens/internal/model"
	"github.com/hollowoak/threadlens/internal/pipeline"
	"github.com/hollowoak/threadlens/internal/session"
	"github.com/hollowoak/threadlens/internal/source"

	_ "github.com/hollowoak/threadlens/internal/source/file"
	_ "github.com/hollowoak/threadlens/internal/source/httpsrc"
)

// Analyzer is a post analytics session over one loaded dataset.
// Not safe for concurrent use.
type Analyzer struct {
	session *session.Session
}

// Load fetches a dataset, derives per-post metrics, and returns a ready
// Analyzer. Malformed records are dropped, not errors; see Dropped.
func Load(ctx context.Context, opts ...Option) (*Analyzer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctor, err := source.Get(o.provider)
	if err != nil {
		return nil, fmt.Errorf("threadlens: %w", err)
	}

	p := pipeline.New(ctor(), engine.New(sentiment.New()))
	sess, err := p.Load(ctx, source.Config{
		Provider: o.provider,
		Path:     o.path,
		Endpoint: o.endpoint,
		Timeout:  o.timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("threadlens: %w", err)
	}

	if o.artifacts != (Artifacts{}) {
		p.LoadArtifacts(ctx, sess, artifact.Config{
			Topics:      o.artifacts.Topics,
			SemanticMap: o.artifacts.SemanticMap,
			Events:      o.artifacts.Events,
			Network:     o.artifacts.Network,
			Timeout:     o.timeout,
		})
	}

	return &Analyzer{session: sess}, nil
}

// LoadJSON builds an Analyzer from an in-memory dataset dump. Use this
// when the payload is already fetched; it accepts the same JSON shapes as
// the file and URL loaders.
func LoadJSON(data []byte) (*Analyzer, error) {
	raws, skipped, err := source.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("threadlens: %w", err)
	}
	posts, malformed := engine.New(sentiment.New()).ProcessBatch(raws)
	return &Analyzer{session: session.New(posts, skipped+malformed)}, nil
}

// Posts returns every post in the loaded collection, unfiltered.
func (a *Analyzer) Posts() []Post {
	return convertPosts(a.session.Posts())
}

// Working returns the posts admitted by the current filter.
func (a *Analyzer) Working() []Post {
	return convertPosts(a.session.Working())
}

// Dropped reports how many raw records were discarded during load.
func (a *Analyzer) Dropped() int {
	return a.session.Dropped()
}

// SetFilter replaces the working-set filter. Inverted date ranges are
// rejected and leave the previous filter in place.
func (a *Analyzer) SetFilter(f Filter) error {
	state := model.FilterState{
		From:    f.From,
		To:      f.To,
		Keyword: f.Keyword,
	}
	if f.Sentiments == nil {
		state.Sentiments = model.AllSentiments()
	} else {
		state.Sentiments = make([]model.Label, len(f.Sentiments))
		for i, s := range f.Sentiments {
			state.Sentiments[i] = model.Label(s)
		}
	}
	if err := a.session.SetFilter(state); err != nil {
		return fmt.Errorf("threadlens: %w", err)
	}
	return nil
}

// ResetFilter restores the full working set.
func (a *Analyzer) ResetFilter() {
	a.session.ResetFilter()
}

// Ask answers a free-text analytical query over the working set.
func (a *Analyzer) Ask(query string) Answer {
	res := a.session.Ask(query)
	return Answer{Intent: string(res.Intent), Text: res.Text}
}

// DayCounts returns the per-day activity timeline, ascending by date.
func (a *Analyzer) DayCounts() []DayCount {
	internal := analysis.DayCounts(a.session.Working())
	out := make([]DayCount, len(internal))
	for i, d := range internal {
		out[i] = DayCount{Date: d.Date, Count: d.Count}
	}
	return out
}

// SentimentBreakdown counts each label over the working set.
func (a *Analyzer) SentimentBreakdown() Distribution {
	d := analysis.SentimentDistribution(a.session.Working())
	return Distribution{Positive: d.Positive, Neutral: d.Neutral, Negative: d.Negative}
}

// TopDomains ranks external source domains by post count. Self-posts and
// unparseable URLs never appear.
func (a *Analyzer) TopDomains(n int) []Rank {
	return convertRanks(analysis.TopDomains(a.session.Working(), n))
}

// TopAuthors ranks authors by post count, excluding deleted accounts.
func (a *Analyzer) TopAuthors(n int) []Rank {
	return convertRanks(analysis.TopAuthors(a.session.Working(), n))
}

// TopSubreddits ranks subreddits by post count.
func (a *Analyzer) TopSubreddits(n int) []Rank {
	return convertRanks(analysis.TopSubreddits(a.session.Working(), n))
}

// Summary computes the headline overview of the working set.
func (a *Analyzer) Summary() Overview {
	working := a.session.Working()
	stats := analysis.Overview(working)
	out := Overview{
		Posts:      stats.TotalPosts,
		Authors:    stats.UniqueAuthors,
		Subreddits: stats.UniqueSubreddits,
		StartDate:  stats.StartDate,
		EndDate:    stats.EndDate,
	}
	if peak, ok := analysis.PeakDay(working); ok {
		out.PeakDay = peak.Date
	}
	if dominant, ok := analysis.DominantSentiment(working); ok {
		out.DominantSentiment = string(dominant)
	}
	return out
}

// Sentiments lists the sentiment labels in canonical order.
func Sentiments() []string {
	labels := model.Labels()
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = string(l)
	}
	return out
}

func convertPosts(posts []model.ProcessedPost) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		out[i] = Post{
			ID:             p.ID,
			Title:          p.Title,
			SelfText:       p.SelfText,
			Author:         p.Author,
			Subreddit:      p.Subreddit,
			Score:          p.Score,
			NumComments:    p.NumComments,
			URL:            p.URL,
			Permalink:      p.Permalink,
			Date:           p.Date,
			CreatedAt:      p.DateTime,
			FullText:       p.FullText,
			SentimentScore: p.SentimentScore,
			Sentiment:      string(p.Sentiment),
			Domain:         p.Domain,
		}
	}
	return out
}

func convertRanks(entries []analysis.RankEntry) []Rank {
	out := make([]Rank, len(entries))
	for i, e := range entries {
		out[i] = Rank{Key: e.Key, Count: e.Count}
	}
	return out
}
