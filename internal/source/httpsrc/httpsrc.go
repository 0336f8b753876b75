package httpsrc

import (
	"context"
	"fmt"

	"github.com/hollowoak/threadlens/internal/model"
	"github.com/hollowoak/threadlens/internal/source"
	"github.com/hollowoak/threadlens/internal/source/httpclient"
)

func init() {
	source.Register("http", func() source.Source {
		return &Source{}
	})
}

// Source fetches the dataset from a static HTTP endpoint with a single
// request per session.
type Source struct{}

// Fetch downloads and decodes the dataset at cfg.Endpoint.
func (s *Source) Fetch(ctx context.Context, cfg source.Config) ([]model.RawPost, int, error) {
	if cfg.Endpoint == "" {
		return nil, 0, fmt.Errorf("http source: no endpoint configured")
	}

	var opts []httpclient.Option
	if cfg.Timeout > 0 {
		opts = append(opts, httpclient.WithTimeout(cfg.Timeout))
	}
	client := httpclient.New(opts...)

	payload, err := client.Get(ctx, cfg.Endpoint)
	if err != nil {
		return nil, 0, fmt.Errorf("http source: %w", err)
	}

	raws, skipped, err := source.Decode(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("http source: %w", err)
	}
	return raws, skipped, nil
}
