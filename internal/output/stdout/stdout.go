package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hollowoak/threadlens/internal/model"
	"github.com/hollowoak/threadlens/internal/output"
)

// Output writes JSON-encoded processed posts to stdout.
type Output struct {
	enc    *json.Encoder
	detail output.Detail
}

// New creates a new stdout Output with detail-aware field omission
// and optional pretty-printed JSON.
func New(detail output.Detail, pretty bool) *Output {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc, detail: detail}
}

func (o *Output) Write(_ context.Context, post model.ProcessedPost) error {
	formatted := output.FormatPost(post, o.detail)
	if err := o.enc.Encode(formatted); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
