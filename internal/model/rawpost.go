package model

// RawPost is the input record as supplied by the dataset dump. Dumps carry
// either flat post objects or Reddit listing envelopes ({kind, data}); the
// source layer unwraps envelopes before handing records to the engine.
type RawPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	SelfText    string  `json:"selftext,omitempty"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	Ups         int     `json:"ups"`
	Downs       int     `json:"downs"`
	NumComments int     `json:"num_comments"`
	Subscribers int     `json:"subreddit_subscribers"`
	CreatedUTC  float64 `json:"created_utc"` // seconds since epoch
	Created     float64 `json:"created"`     // fallback timestamp in older dumps
	URL         string  `json:"url"`
	Permalink   string  `json:"permalink"`
}

// CreatedAt returns the post's epoch timestamp in seconds, preferring
// created_utc over the legacy created field. Zero means no usable timestamp.
func (r RawPost) CreatedAt() float64 {
	if r.CreatedUTC != 0 {
		return r.CreatedUTC
	}
	return r.Created
}
