package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/hollowoak/threadlens/internal/model"
)

// Bucketing thresholds for the compound polarity score. These are design
// constants, not tunables: a score of exactly ±0.05 is Neutral.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Result holds the outcome of scoring a single text.
type Result struct {
	Score float64 // compound polarity in [-1, 1]
	Label model.Label
}

// Classifier scores free text with a lexicon/rule-based valence model
// (VADER) and buckets the compound score into a three-way label.
// Deterministic; no training involved.
type Classifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// New creates a Classifier with a fresh VADER analyzer.
func New() *Classifier {
	return &Classifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Classify scores text and returns the compound score with its label.
// Empty text scores 0 (Neutral) without invoking the analyzer.
func (c *Classifier) Classify(text string) Result {
	if text == "" {
		return Result{Score: 0, Label: model.Neutral}
	}
	compound := c.analyzer.PolarityScores(text).Compound
	return Result{Score: compound, Label: Bucket(compound)}
}

// Bucket maps a compound score to its label. Both boundaries are exclusive.
func Bucket(score float64) model.Label {
	switch {
	case score > PositiveThreshold:
		return model.Positive
	case score < NegativeThreshold:
		return model.Negative
	default:
		return model.Neutral
	}
}
