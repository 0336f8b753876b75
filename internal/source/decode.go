package source

import (
	"encoding/json"
	"fmt"

	"github.com/hollowoak/threadlens/internal/model"
)

// envelope is the Reddit listing wrapper some dumps carry around each post.
type envelope struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// Decode parses a dataset payload: a JSON array whose items are either flat
// post objects or {kind, data} envelopes. Malformed top-level JSON is an
// error; a valid empty array is a valid empty dataset. Items that fail to
// decode individually are skipped and counted, never aborting the rest.
func Decode(payload []byte) (raws []model.RawPost, skipped int, err error) {
	var items []json.RawMessage
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, 0, fmt.Errorf("dataset is not a JSON array: %w", err)
	}

	raws = make([]model.RawPost, 0, len(items))
	for _, item := range items {
		post, ok := decodeItem(item)
		if !ok {
			skipped++
			continue
		}
		raws = append(raws, post)
	}
	return raws, skipped, nil
}

func decodeItem(item json.RawMessage) (model.RawPost, bool) {
	var env envelope
	if err := json.Unmarshal(item, &env); err == nil && env.Kind != "" && len(env.Data) > 0 {
		var post model.RawPost
		if err := json.Unmarshal(env.Data, &post); err != nil {
			return model.RawPost{}, false
		}
		return post, true
	}

	var post model.RawPost
	if err := json.Unmarshal(item, &post); err != nil {
		return model.RawPost{}, false
	}
	return post, true
}
