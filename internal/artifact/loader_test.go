package artifact

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const topicsJSON = `{
	"topics": [
		{"id": 1, "name": "Topic 1", "words": [
			{"term": "election", "weight": 12.5},
			{"term": "vote", "weight": 10.1},
			{"term": "ballot", "weight": 8.0},
			{"term": "poll", "weight": 6.2}
		]}
	],
	"evolution": [{"date": "2024-01-01", "Topic 1": 4}]
}`

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func TestLoadBundleFromFiles(t *testing.T) {
	cfg := Config{
		Topics: writeArtifact(t, "topics.json", topicsJSON),
		Events: writeArtifact(t, "events.json", `{"events":[{"date":"2024-01-01","name":"Primary","volume":120,"sentiment":-0.2}]}`),
	}

	b := NewLoader(0).LoadBundle(context.Background(), cfg)

	if len(b.Errors) != 0 {
		t.Fatalf("Errors = %v", b.Errors)
	}
	if b.Topics == nil || len(b.Topics.Topics) != 1 {
		t.Fatalf("Topics = %+v", b.Topics)
	}
	if b.Events == nil || b.Events.Events[0].Name != "Primary" {
		t.Fatalf("Events = %+v", b.Events)
	}
	if b.SemanticMap != nil || b.Network != nil {
		t.Fatal("unconfigured artifacts should stay nil")
	}
}

func TestLoadBundleFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"points":[{"x":0.5,"y":-1.2,"cluster":2,"text":"sample"}]}`))
	}))
	defer srv.Close()

	b := NewLoader(0).LoadBundle(context.Background(), Config{SemanticMap: srv.URL})

	if b.SemanticMap == nil || len(b.SemanticMap.Points) != 1 {
		t.Fatalf("SemanticMap = %+v, errors = %v", b.SemanticMap, b.Errors)
	}
	if b.SemanticMap.Points[0].Cluster != 2 {
		t.Fatalf("point = %+v", b.SemanticMap.Points[0])
	}
}

func TestLoadBundleIsolatesFailures(t *testing.T) {
	cfg := Config{
		Topics: writeArtifact(t, "topics.json", topicsJSON),
		Events: "/nonexistent/events.json",
	}

	b := NewLoader(0).LoadBundle(context.Background(), cfg)

	if b.Topics == nil {
		t.Fatal("healthy artifact should still load")
	}
	if b.Events != nil {
		t.Fatal("failed artifact should be nil")
	}
	if b.Errors["events"] == nil {
		t.Fatal("failure should be recorded per artifact")
	}
}

func TestLoadBundleMalformedArtifact(t *testing.T) {
	cfg := Config{Network: writeArtifact(t, "network.json", `{"nodes": "broken"`)}

	b := NewLoader(0).LoadBundle(context.Background(), cfg)
	if b.Network != nil || b.Errors["network"] == nil {
		t.Fatalf("Network = %+v, Errors = %v", b.Network, b.Errors)
	}
}

func TestTopicTermsOf(t *testing.T) {
	topic := Topic{Words: []TermWeight{{Term: "a"}, {Term: "b"}, {Term: "c"}, {Term: "d"}}}

	got := topic.TermsOf(3)
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("TermsOf(3) = %v", got)
	}
	if all := topic.TermsOf(0); len(all) != 4 {
		t.Fatalf("TermsOf(0) = %v", all)
	}
}
