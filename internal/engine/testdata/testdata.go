// Package testdata embeds a small Reddit-style dataset dump used by
// integration tests across the module.
package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/hollowoak/threadlens/internal/model"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusJSON returns the raw embedded dump, suitable for feeding to the
// source layer or writing to a temp file.
func CorpusJSON() []byte {
	return corpusJSON
}

// Corpus parses the embedded dump into raw posts. The dump deliberately
// includes one record without a timestamp, so the engine drops it.
func Corpus() ([]model.RawPost, error) {
	var raws []model.RawPost
	if err := json.Unmarshal(corpusJSON, &raws); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return raws, nil
}
