package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/hollowoak/threadlens/internal/engine"
	"github.com/hollowoak/threadlens/internal/engine/sentiment"
	"github.com/hollowoak/threadlens/internal/model"
	"github.com/hollowoak/threadlens/internal/source"
)

// stubSource serves a fixed dataset without I/O.
type stubSource struct {
	raws    []model.RawPost
	skipped int
	err     error
}

func (s *stubSource) Fetch(_ context.Context, _ source.Config) ([]model.RawPost, int, error) {
	return s.raws, s.skipped, s.err
}

func TestLoad(t *testing.T) {
	src := &stubSource{raws: []model.RawPost{
		{ID: "a", Title: "Hello", CreatedUTC: 1704067200},
		{ID: "b", Title: "World", CreatedUTC: 1704153600},
	}}
	p := New(src, engine.New(sentiment.New()))

	sess, err := p.Load(context.Background(), source.Config{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(sess.Posts()) != 2 {
		t.Fatalf("posts = %d, want 2", len(sess.Posts()))
	}
	if sess.Dropped() != 0 {
		t.Fatalf("dropped = %d, want 0", sess.Dropped())
	}
	if len(sess.Working()) != 2 {
		t.Fatalf("working = %d, want 2", len(sess.Working()))
	}
}

func TestLoadCountsAllDrops(t *testing.T) {
	// One undecodable item from the source, one record without a timestamp.
	src := &stubSource{
		raws: []model.RawPost{
			{ID: "ok", Title: "fine", CreatedUTC: 1704067200},
			{ID: "no-ts", Title: "broken"},
		},
		skipped: 1,
	}
	p := New(src, engine.New(sentiment.New()))

	sess, err := p.Load(context.Background(), source.Config{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(sess.Posts()) != 1 {
		t.Fatalf("posts = %d, want 1", len(sess.Posts()))
	}
	if sess.Dropped() != 2 {
		t.Fatalf("dropped = %d, want 2", sess.Dropped())
	}
}

func TestLoadFetchFailureIsTerminal(t *testing.T) {
	src := &stubSource{err: errors.New("connection refused")}
	p := New(src, engine.New(sentiment.New()))

	if _, err := p.Load(context.Background(), source.Config{}); err == nil {
		t.Fatal("expected error when fetch fails")
	}
}

func TestLoadEmptyDataset(t *testing.T) {
	p := New(&stubSource{}, engine.New(sentiment.New()))

	sess, err := p.Load(context.Background(), source.Config{})
	if err != nil {
		t.Fatalf("empty dataset is a valid no-data state, got: %v", err)
	}
	if len(sess.Posts()) != 0 {
		t.Fatalf("posts = %d, want 0", len(sess.Posts()))
	}
}
