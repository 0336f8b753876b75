package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hollowoak/threadlens/internal/artifact"
	"github.com/hollowoak/threadlens/internal/engine"
	"github.com/hollowoak/threadlens/internal/session"
	"github.com/hollowoak/threadlens/internal/source"
)

// Pipeline connects a dataset source and the normalization engine into a
// one-shot load: fetch once, normalize, hand the session to the caller.
type Pipeline struct {
	source source.Source
	engine *engine.Engine
}

// New creates a Pipeline from the given components.
func New(src source.Source, eng *engine.Engine) *Pipeline {
	return &Pipeline{source: src, engine: eng}
}

// Load fetches the raw dataset, normalizes it, and returns a ready session.
// A fetch or top-level decode failure is terminal; per-record problems are
// logged and counted, never fatal. An empty dataset yields a valid empty
// session.
func (p *Pipeline) Load(ctx context.Context, cfg source.Config) (*session.Session, error) {
	raws, skipped, err := p.source.Fetch(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pipeline load: %w", err)
	}

	posts, malformed := p.engine.ProcessBatch(raws)
	dropped := skipped + malformed
	if dropped > 0 {
		slog.Info("records dropped during load", "undecodable", skipped, "malformed", malformed)
	}
	slog.Info("dataset loaded", "posts", len(posts), "dropped", dropped)

	return session.New(posts, dropped), nil
}

// LoadArtifacts fetches the optional precomputed artifacts and attaches
// them to the session. Artifact failures degrade individual views only, so
// this never returns an error.
func (p *Pipeline) LoadArtifacts(ctx context.Context, s *session.Session, cfg artifact.Config) {
	s.SetArtifacts(artifact.NewLoader(cfg.Timeout).LoadBundle(ctx, cfg))
}
