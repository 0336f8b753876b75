package artifact

// Precomputed artifact shapes. These files are produced offline (topic
// modeling, embedding projection, event correlation) and consumed read-only;
// the engine never recomputes them.

// TermWeight is one weighted vocabulary term of a topic.
type TermWeight struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// Topic is one ranked term list from the offline topic model.
type Topic struct {
	ID    int          `json:"id"`
	Name  string       `json:"name"`
	Words []TermWeight `json:"words"`
}

// TopicSet is the topics artifact: the topics plus a precomputed
// time-bucketed evolution table (rows keyed by date and topic name).
type TopicSet struct {
	Topics    []Topic          `json:"topics"`
	Evolution []map[string]any `json:"evolution"`
}

// TermsOf returns topic t's terms in ranked order, up to n.
func (t Topic) TermsOf(n int) []string {
	words := t.Words
	if n > 0 && len(words) > n {
		words = words[:n]
	}
	terms := make([]string, len(words))
	for i, w := range words {
		terms[i] = w.Term
	}
	return terms
}

// SemanticPoint is one 2-D projected document in the semantic map.
type SemanticPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Cluster int     `json:"cluster"`
	Text    string  `json:"text"`
}

// SemanticMap is the semantic-map artifact.
type SemanticMap struct {
	Points []SemanticPoint `json:"points"`
}

// Event is one dated real-world event with its associated metrics, used to
// overlay the activity timeline.
type Event struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Name      string  `json:"name"`
	Volume    int     `json:"volume"`
	Sentiment float64 `json:"sentiment"`
}

// EventSet is the event-correlation artifact.
type EventSet struct {
	Events []Event `json:"events"`
}

// NetworkNode mirrors the offline network file's node shape.
type NetworkNode struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Val   int    `json:"val"`
	Posts int    `json:"posts"`
}

// NetworkLink mirrors the offline network file's link shape.
type NetworkLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  int    `json:"value"`
}

// NetworkFile is the precomputed coordination-graph artifact.
type NetworkFile struct {
	Nodes []NetworkNode `json:"nodes"`
	Links []NetworkLink `json:"links"`
}
