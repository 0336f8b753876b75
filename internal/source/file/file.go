package file

import (
	"context"
	"fmt"
	"os"

	"github.com/hollowoak/threadlens/internal/model"
	"github.com/hollowoak/threadlens/internal/source"
)

func init() {
	source.Register("file", func() source.Source {
		return &Source{}
	})
}

// Source reads the dataset from a local JSON file.
type Source struct{}

// Fetch loads and decodes the dataset at cfg.Path.
func (s *Source) Fetch(ctx context.Context, cfg source.Config) ([]model.RawPost, int, error) {
	if cfg.Path == "" {
		return nil, 0, fmt.Errorf("file source: no path configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	payload, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, 0, fmt.Errorf("file source: %w", err)
	}

	raws, skipped, err := source.Decode(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("file source: %w", err)
	}
	return raws, skipped, nil
}
