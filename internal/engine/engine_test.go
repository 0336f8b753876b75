package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hollowoak/threadlens/internal/engine/sentiment"
	"github.com/hollowoak/threadlens/internal/model"
)

func newTestEngine() *Engine {
	return New(sentiment.New())
}

// 2024-01-01 00:00:00 UTC
const jan1 = 1704067200

func TestProcessDerivedFields(t *testing.T) {
	eng := newTestEngine()

	raw := model.RawPost{
		ID:         "abc123",
		Title:      "Server outage report",
		SelfText:   "Everything went down at noon.",
		Author:     "opsguy",
		Subreddit:  "sysadmin",
		Score:      42,
		CreatedUTC: jan1 + 3600, // 01:00 UTC
		URL:        "https://status.example.com/incident/9",
	}

	post, err := eng.Process(raw)
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}

	if post.Date != "2024-01-01" {
		t.Errorf("Date = %q, want 2024-01-01", post.Date)
	}
	if post.DateTime.Unix() != jan1+3600 {
		t.Errorf("DateTime = %v, want unix %d", post.DateTime, jan1+3600)
	}
	if post.DateTime.Location() != post.DateTime.UTC().Location() {
		t.Errorf("DateTime not in UTC: %v", post.DateTime)
	}
	if want := "Server outage report Everything went down at noon."; post.FullText != want {
		t.Errorf("FullText = %q, want %q", post.FullText, want)
	}
	if post.Domain != "status.example.com" {
		t.Errorf("Domain = %q, want status.example.com", post.Domain)
	}
	if post.Sentiment != sentiment.Bucket(post.SentimentScore) {
		t.Errorf("Sentiment %q inconsistent with score %v", post.Sentiment, post.SentimentScore)
	}
	// Flattened payload fields carried through untouched.
	if post.Author != "opsguy" || post.Score != 42 {
		t.Errorf("payload fields not preserved: %+v", post.RawPost)
	}
}

func TestProcessUTCDayBoundary(t *testing.T) {
	eng := newTestEngine()

	// 2023-12-31 23:59:59 UTC must bucket to 2023-12-31 regardless of the
	// machine's local zone.
	post, err := eng.Process(model.RawPost{Title: "x", CreatedUTC: jan1 - 1})
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if post.Date != "2023-12-31" {
		t.Errorf("Date = %q, want 2023-12-31", post.Date)
	}
}

func TestProcessMissingTitleAndBody(t *testing.T) {
	eng := newTestEngine()

	post, err := eng.Process(model.RawPost{CreatedUTC: jan1})
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if post.FullText != "" {
		t.Errorf("FullText = %q, want empty", post.FullText)
	}
	if post.Sentiment != model.Neutral || post.SentimentScore != 0 {
		t.Errorf("empty text should be Neutral/0, got %q/%v", post.Sentiment, post.SentimentScore)
	}
	if post.Domain != model.DomainSelf {
		t.Errorf("Domain = %q, want %q", post.Domain, model.DomainSelf)
	}
}

func TestProcessNoTimestamp(t *testing.T) {
	eng := newTestEngine()

	_, err := eng.Process(model.RawPost{Title: "no clock"})
	if err != ErrNoTimestamp {
		t.Fatalf("err = %v, want ErrNoTimestamp", err)
	}
}

func TestProcessLegacyCreatedFallback(t *testing.T) {
	eng := newTestEngine()

	post, err := eng.Process(model.RawPost{Title: "old dump", Created: jan1})
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if post.Date != "2024-01-01" {
		t.Errorf("Date = %q, want 2024-01-01", post.Date)
	}
}

func TestProcessBatchCardinality(t *testing.T) {
	eng := newTestEngine()

	raws := []model.RawPost{
		{ID: "a", Title: "first", CreatedUTC: jan1},
		{ID: "b", Title: "second", CreatedUTC: jan1 + 60},
		{ID: "c", Title: "third", CreatedUTC: jan1 + 120},
	}

	posts, dropped := eng.ProcessBatch(raws)
	if dropped != 0 {
		t.Fatalf("dropped = %d, want 0", dropped)
	}
	if len(posts) != len(raws) {
		t.Fatalf("len(posts) = %d, want %d", len(posts), len(raws))
	}
	for i := range raws {
		if posts[i].ID != raws[i].ID {
			t.Errorf("posts[%d].ID = %q, want %q (order not preserved)", i, posts[i].ID, raws[i].ID)
		}
	}
}

func TestProcessBatchIsolatesMalformedRecords(t *testing.T) {
	eng := newTestEngine()

	raws := []model.RawPost{
		{ID: "good1", Title: "ok", CreatedUTC: jan1},
		{ID: "bad", Title: "no timestamp"},
		{ID: "good2", Title: "also ok", CreatedUTC: jan1 + 60},
	}

	posts, dropped := eng.ProcessBatch(raws)
	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	if posts[0].ID != "good1" || posts[1].ID != "good2" {
		t.Errorf("surviving records wrong or reordered: %q, %q", posts[0].ID, posts[1].ID)
	}
}

func TestProcessBatchEmpty(t *testing.T) {
	eng := newTestEngine()

	posts, dropped := eng.ProcessBatch(nil)
	if posts != nil || dropped != 0 {
		t.Fatalf("ProcessBatch(nil) = %v, %d; want nil, 0", posts, dropped)
	}
}

func TestProcessBatchIdempotent(t *testing.T) {
	eng := newTestEngine()

	raws := []model.RawPost{
		{ID: "a", Title: "Great news everyone!", CreatedUTC: jan1, URL: "https://example.com/a"},
		{ID: "b", Title: "Awful outcome", SelfText: "truly terrible", CreatedUTC: jan1 + 60},
	}

	first, _ := eng.ProcessBatch(raws)
	second, _ := eng.ProcessBatch(raws)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("normalization not idempotent (-first +second):\n%s", diff)
	}
}

func TestFullText(t *testing.T) {
	cases := []struct {
		title, body, want string
	}{
		{"Title", "Body", "Title Body"},
		{"Title", "", "Title"},
		{"", "Body", "Body"},
		{"", "", ""},
	}
	for _, tc := range cases {
		got := FullText(model.RawPost{Title: tc.title, SelfText: tc.body})
		if got != tc.want {
			t.Errorf("FullText(%q, %q) = %q, want %q", tc.title, tc.body, got, tc.want)
		}
	}
}
