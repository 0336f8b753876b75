package output

import (
	"context"

	"github.com/hollowoak/threadlens/internal/model"
)

// Output defines the interface for processed-post export destinations.
type Output interface {
	Write(ctx context.Context, post model.ProcessedPost) error
	Close() error
}
