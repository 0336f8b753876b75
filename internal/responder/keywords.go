package responder

import (
	"strings"

	"github.com/hollowoak/threadlens/internal/model"
)

// stopWords are stripped from search queries before matching. The trigger
// words themselves are included so "search for election posts" reduces to
// "election". Fixed list; extending it changes which queries match.
var stopWords = map[string]struct{}{
	"search": {}, "find": {}, "latest": {}, "about": {},
	"post": {}, "posts": {}, "show": {}, "me": {}, "news": {},
	"the": {}, "a": {}, "an": {}, "for": {}, "of": {}, "on": {}, "in": {},
	"is": {}, "are": {}, "what": {}, "any": {}, "all": {}, "to": {},
}

// extractKeywords strips stop words from the lowercased query and joins the
// remainder with single spaces.
func extractKeywords(q string) string {
	var kept []string
	for _, w := range strings.Fields(q) {
		w = strings.Trim(w, ".,!?;:\"'")
		if w == "" {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// snippetLen bounds how much of a post surfaces in a chat answer.
const snippetLen = 120

// snippet returns a display line for a post: its title, or the leading
// slice of full_text when the title is empty, truncated to snippetLen runes.
func snippet(p model.ProcessedPost) string {
	s := p.Title
	if s == "" {
		s = p.FullText
	}
	return truncate(s, snippetLen)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
