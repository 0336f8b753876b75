package main

import (
	"testing"
	"time"

	"github.com/hollowoak/threadlens/internal/model"
	"github.com/hollowoak/threadlens/internal/session"
)

func flagPost(id, date string, label model.Label) model.ProcessedPost {
	dt, _ := time.Parse("2006-01-02", date)
	return model.ProcessedPost{
		RawPost:   model.RawPost{ID: id, Author: "u"},
		Date:      date,
		DateTime:  dt.Add(12 * time.Hour),
		FullText:  "post " + id,
		Sentiment: label,
	}
}

func resetFlags() {
	fromDate, toDate, keyword = "", "", ""
	sentiments = nil
}

func TestApplyFlagFilterNoFlags(t *testing.T) {
	resetFlags()
	sess := session.New([]model.ProcessedPost{
		flagPost("a", "2024-01-01", model.Positive),
		flagPost("b", "2024-01-02", model.Negative),
	}, 0)

	if err := applyFlagFilter(sess); err != nil {
		t.Fatalf("applyFlagFilter() error: %v", err)
	}
	if len(sess.Working()) != 2 {
		t.Fatalf("no flags must not narrow the working set, got %d", len(sess.Working()))
	}
}

func TestApplyFlagFilterDateRange(t *testing.T) {
	resetFlags()
	fromDate, toDate = "2024-01-02", "2024-01-02"
	defer resetFlags()

	sess := session.New([]model.ProcessedPost{
		flagPost("a", "2024-01-01", model.Positive),
		flagPost("b", "2024-01-02", model.Negative),
		flagPost("c", "2024-01-03", model.Neutral),
	}, 0)

	if err := applyFlagFilter(sess); err != nil {
		t.Fatalf("applyFlagFilter() error: %v", err)
	}
	w := sess.Working()
	if len(w) != 1 || w[0].ID != "b" {
		t.Fatalf("working = %+v", w)
	}
}

func TestApplyFlagFilterSentiment(t *testing.T) {
	resetFlags()
	sentiments = []string{"Negative"}
	defer resetFlags()

	sess := session.New([]model.ProcessedPost{
		flagPost("a", "2024-01-01", model.Positive),
		flagPost("b", "2024-01-02", model.Negative),
	}, 0)

	if err := applyFlagFilter(sess); err != nil {
		t.Fatalf("applyFlagFilter() error: %v", err)
	}
	w := sess.Working()
	if len(w) != 1 || w[0].ID != "b" {
		t.Fatalf("working = %+v", w)
	}
}

func TestApplyFlagFilterRejectsBadLabel(t *testing.T) {
	resetFlags()
	sentiments = []string{"Angry"}
	defer resetFlags()

	sess := session.New(nil, 0)
	if err := applyFlagFilter(sess); err == nil {
		t.Fatal("expected error for unknown label")
	}
}

func TestApplyFlagFilterRejectsBadDate(t *testing.T) {
	resetFlags()
	fromDate = "01/02/2024"
	defer resetFlags()

	sess := session.New(nil, 0)
	if err := applyFlagFilter(sess); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
