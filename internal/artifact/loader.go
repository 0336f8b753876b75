package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hollowoak/threadlens/internal/source/httpclient"
)

// Config locates the optional artifacts. Each entry may be a local path or
// an http(s) URL; an empty entry means the artifact is not configured.
type Config struct {
	Topics      string
	SemanticMap string
	Events      string
	Network     string
	Timeout     time.Duration
}

// Bundle holds whichever artifacts loaded. A nil field means the artifact
// was not configured or failed to load; Errors records failures per
// artifact so each view can surface its own error state.
type Bundle struct {
	Topics      *TopicSet
	SemanticMap *SemanticMap
	Events      *EventSet
	Network     *NetworkFile
	Errors      map[string]error
}

// Loader fetches precomputed artifacts from local paths or static URLs.
type Loader struct {
	client *httpclient.Client
}

// NewLoader creates a Loader. timeout <= 0 keeps the client default.
func NewLoader(timeout time.Duration) *Loader {
	var opts []httpclient.Option
	if timeout > 0 {
		opts = append(opts, httpclient.WithTimeout(timeout))
	}
	return &Loader{client: httpclient.New(opts...)}
}

// LoadBundle loads every configured artifact. Failures are isolated: a
// missing or malformed artifact degrades only its own entry, never the
// bundle.
func (l *Loader) LoadBundle(ctx context.Context, cfg Config) *Bundle {
	b := &Bundle{Errors: map[string]error{}}

	if cfg.Topics != "" {
		var ts TopicSet
		if err := l.load(ctx, cfg.Topics, &ts); err != nil {
			b.Errors["topics"] = err
			slog.Warn("topics artifact unavailable", "location", cfg.Topics, "err", err)
		} else {
			b.Topics = &ts
		}
	}
	if cfg.SemanticMap != "" {
		var sm SemanticMap
		if err := l.load(ctx, cfg.SemanticMap, &sm); err != nil {
			b.Errors["semantic_map"] = err
			slog.Warn("semantic-map artifact unavailable", "location", cfg.SemanticMap, "err", err)
		} else {
			b.SemanticMap = &sm
		}
	}
	if cfg.Events != "" {
		var es EventSet
		if err := l.load(ctx, cfg.Events, &es); err != nil {
			b.Errors["events"] = err
			slog.Warn("events artifact unavailable", "location", cfg.Events, "err", err)
		} else {
			b.Events = &es
		}
	}
	if cfg.Network != "" {
		var nf NetworkFile
		if err := l.load(ctx, cfg.Network, &nf); err != nil {
			b.Errors["network"] = err
			slog.Warn("network artifact unavailable", "location", cfg.Network, "err", err)
		} else {
			b.Network = &nf
		}
	}
	return b
}

func (l *Loader) load(ctx context.Context, location string, dest any) error {
	payload, err := l.read(ctx, location)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("parse %s: %w", location, err)
	}
	return nil
}

func (l *Loader) read(ctx context.Context, location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return l.client.Get(ctx, location)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(location)
}
