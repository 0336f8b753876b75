package responder

import (
	"strings"

	"github.com/hollowoak/threadlens/internal/model"
)

// Intent identifies which rule produced a response. Useful for precedence
// tests and for presentation layers that render intents differently.
type Intent string

const (
	IntentTopDomains      Intent = "top_domains"
	IntentDomainDrilldown Intent = "domain_drilldown"
	IntentSearch          Intent = "search"
	IntentTopAuthors      Intent = "top_authors"
	IntentSentiment       Intent = "sentiment"
	IntentTrend           Intent = "trend"
	IntentSummary         Intent = "summary"
	IntentHelp            Intent = "help"
)

// Response is a canned analytical answer over the current working subset.
type Response struct {
	Intent Intent
	Text   string
}

// rule pairs a trigger predicate with its answer handler. Rules are
// evaluated strictly in order; the first match wins. Precedence is by
// position, not by semantic disjointness: several rules can match the same
// query, so order changes are behavior changes.
type rule struct {
	intent Intent
	match  func(q string, posts []model.ProcessedPost) bool
	handle func(q string, posts []model.ProcessedPost) string
}

// Responder maps free-text queries to deterministic answers computed over a
// post collection. No fuzzy matching, no synonyms: triggers are literal
// substrings of the lowercased query.
type Responder struct {
	rules []rule
}

// New creates a Responder with the built-in rule cascade.
func New() *Responder {
	return &Responder{rules: defaultRules()}
}

// Respond evaluates the rule cascade against query and the current subset.
// Always produces a response; an unmatched query falls through to the fixed
// help text.
func (r *Responder) Respond(query string, posts []model.ProcessedPost) Response {
	q := strings.ToLower(strings.TrimSpace(query))

	for _, rl := range r.rules {
		if rl.match(q, posts) {
			return Response{Intent: rl.intent, Text: rl.handle(q, posts)}
		}
	}
	return Response{Intent: IntentHelp, Text: helpText}
}

// containsAny reports whether q contains any of the literal phrases.
func containsAny(q string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(q, p) {
			return true
		}
	}
	return false
}
