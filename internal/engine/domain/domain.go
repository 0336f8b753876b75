package domain

import (
	"net/url"
	"strings"

	"github.com/hollowoak/threadlens/internal/model"
)

// Extract derives the canonical source domain from a post's URL field.
// Absent URLs are self-posts, site-relative /r/... paths are internal
// reddit links, and anything unparseable folds into the unknown sentinel.
// Never fails.
func Extract(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return model.DomainSelf
	}
	if strings.HasPrefix(rawURL, "/r/") {
		return model.DomainSelfReddit
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return model.DomainUnknown
	}
	return strings.ToLower(u.Hostname())
}
