package source

import (
	"context"
	"time"

	"github.com/hollowoak/threadlens/internal/model"
)

// Source defines the interface all dataset providers must implement.
// A dataset is fetched exactly once per session; there is no streaming or
// retry semantics; a failed fetch surfaces as an error for the caller to
// render.
type Source interface {
	// Fetch retrieves the full raw dataset. skipped counts items that were
	// present but undecodable; they never abort the fetch.
	Fetch(ctx context.Context, cfg Config) (raws []model.RawPost, skipped int, err error)
}

// Config holds provider-specific dataset location settings.
type Config struct {
	Provider string
	Path     string        // file provider: local dataset path
	Endpoint string        // http provider: dataset URL
	Timeout  time.Duration // http provider: request timeout
}
