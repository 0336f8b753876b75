package session

import (
	"fmt"

	"github.com/hollowoak/threadlens/internal/analysis"
	"github.com/hollowoak/threadlens/internal/artifact"
	"github.com/hollowoak/threadlens/internal/model"
	"github.com/hollowoak/threadlens/internal/responder"
)

// Session owns the state of one analysis sitting: the normalized collection
// (immutable after load), the current filter, and the working subset every
// view consumes. All operations are synchronous; the session is meant for a
// single event loop, not concurrent use.
type Session struct {
	posts   []model.ProcessedPost
	dropped int

	filter  model.FilterState
	working []model.ProcessedPost

	artifacts *artifact.Bundle
	responder *responder.Responder
}

// New creates a Session over the normalized collection. The initial filter
// spans the full observed date range with all sentiments allowed, so the
// working subset starts as the whole collection.
func New(posts []model.ProcessedPost, dropped int) *Session {
	s := &Session{
		posts:     posts,
		dropped:   dropped,
		responder: responder.New(),
	}
	s.filter = s.fullRangeFilter()
	s.recompute()
	return s
}

// Posts returns the full normalized collection. Callers must treat it as
// read-only.
func (s *Session) Posts() []model.ProcessedPost {
	return s.posts
}

// Dropped reports how many raw records were discarded during normalization.
func (s *Session) Dropped() int {
	return s.dropped
}

// Filter returns the current filter state.
func (s *Session) Filter() model.FilterState {
	return s.filter
}

// SetFilter replaces the filter and recomputes the working subset.
// Rejects inverted date ranges.
func (s *Session) SetFilter(f model.FilterState) error {
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return fmt.Errorf("invalid date range: %s after %s",
			f.From.Format("2006-01-02"), f.To.Format("2006-01-02"))
	}
	s.filter = f
	s.recompute()
	return nil
}

// ResetFilter restores the non-restrictive full-range filter.
func (s *Session) ResetFilter() {
	s.filter = s.fullRangeFilter()
	s.recompute()
}

// Working returns the current filtered subset, in collection order.
func (s *Session) Working() []model.ProcessedPost {
	return s.working
}

// Ask answers a free-text analytical query over the working subset.
func (s *Session) Ask(query string) responder.Response {
	return s.responder.Respond(query, s.working)
}

// SetArtifacts attaches the loaded precomputed artifacts.
func (s *Session) SetArtifacts(b *artifact.Bundle) {
	s.artifacts = b
}

// Artifacts returns the attached artifact bundle, or nil.
func (s *Session) Artifacts() *artifact.Bundle {
	return s.artifacts
}

// TopicTerms bridges the topics artifact into the analysis layer's matching
// input. Nil when no topics artifact is loaded.
func (s *Session) TopicTerms() []analysis.TopicTerms {
	if s.artifacts == nil || s.artifacts.Topics == nil {
		return nil
	}
	topics := s.artifacts.Topics.Topics
	out := make([]analysis.TopicTerms, len(topics))
	for i, t := range topics {
		out[i] = analysis.TopicTerms{Name: t.Name, Terms: t.TermsOf(0)}
	}
	return out
}

// recompute rebuilds the working subset from scratch. O(n) per change is
// the intended design; no incremental maintenance.
func (s *Session) recompute() {
	s.working = analysis.Filter(s.posts, s.filter)
}

func (s *Session) fullRangeFilter() model.FilterState {
	f := model.FilterState{Sentiments: model.AllSentiments()}
	for _, p := range s.posts {
		if f.From.IsZero() || p.DateTime.Before(f.From) {
			f.From = p.DateTime
		}
		if f.To.IsZero() || p.DateTime.After(f.To) {
			f.To = p.DateTime
		}
	}
	return f
}
