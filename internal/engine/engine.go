package engine

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/hollowoak/threadlens/internal/engine/domain"
	"github.com/hollowoak/threadlens/internal/engine/sentiment"
	"github.com/hollowoak/threadlens/internal/model"
)

// ErrNoTimestamp marks a record with no usable created_utc/created value.
// Such records are dropped during batch normalization.
var ErrNoTimestamp = errors.New("record has no usable timestamp")

// Engine normalizes raw posts: flattens the payload, derives the UTC
// calendar day, builds full_text, and attaches sentiment and domain fields.
// Normalization is a pure map: the same input always yields the same
// output, and inputs are never mutated.
type Engine struct {
	sentiment *sentiment.Classifier
}

// New creates an Engine with the given sentiment classifier.
func New(cls *sentiment.Classifier) *Engine {
	return &Engine{sentiment: cls}
}

// Process normalizes a single raw record into a ProcessedPost.
func (e *Engine) Process(raw model.RawPost) (model.ProcessedPost, error) {
	ts := raw.CreatedAt()
	if ts == 0 {
		return model.ProcessedPost{}, ErrNoTimestamp
	}

	// Seconds-since-epoch carried at millisecond precision; day boundaries
	// are UTC.
	dt := time.UnixMilli(int64(ts * 1000)).UTC()

	fullText := FullText(raw)
	sent := e.sentiment.Classify(fullText)

	return model.ProcessedPost{
		RawPost:        raw,
		Date:           dt.Format("2006-01-02"),
		DateTime:       dt,
		FullText:       fullText,
		SentimentScore: sent.Score,
		Sentiment:      sent.Label,
		Domain:         domain.Extract(raw.URL),
	}, nil
}

// recordResult tags one record's outcome so a malformed record cannot abort
// the rest of the batch.
type recordResult struct {
	post model.ProcessedPost
	err  error
}

// ProcessBatch normalizes a slice of raw records. Malformed records are
// dropped and counted; every well-formed record yields exactly one
// ProcessedPost, in input order.
func (e *Engine) ProcessBatch(raws []model.RawPost) (posts []model.ProcessedPost, dropped int) {
	if len(raws) == 0 {
		return nil, 0
	}

	posts = make([]model.ProcessedPost, 0, len(raws))
	for i, raw := range raws {
		res := e.processOne(raw)
		if res.err != nil {
			dropped++
			slog.Debug("dropping malformed record", "index", i, "id", raw.ID, "err", res.err)
			continue
		}
		posts = append(posts, res.post)
	}
	return posts, dropped
}

func (e *Engine) processOne(raw model.RawPost) recordResult {
	post, err := e.Process(raw)
	return recordResult{post: post, err: err}
}

// FullText joins title and body with a single space, trimming the edges so
// a missing title or body leaves no stray whitespace.
func FullText(raw model.RawPost) string {
	return strings.TrimSpace(raw.Title + " " + raw.SelfText)
}
