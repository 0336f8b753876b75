package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hollowoak/threadlens/internal/model"
	"github.com/hollowoak/threadlens/internal/output"
)

func testPost(id string) model.ProcessedPost {
	return model.ProcessedPost{
		RawPost: model.RawPost{ID: id, Title: "Election results thread"},
		Date:    "2024-01-01",
		Domain:  "example.com",
	}
}

func TestWriteNDJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.ndjson")
	out, err := New(path, output.Full)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		if err := out.Write(ctx, testPost(id)); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &m); err != nil {
		t.Fatalf("line 2 is not valid JSON: %v", err)
	}
	if m["id"] != "b" {
		t.Fatalf("expected id=b, got %v", m["id"])
	}
}

func TestAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.ndjson")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		out, err := New(path, output.Full)
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		if err := out.Write(ctx, testPost("x")); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
		if err := out.Close(); err != nil {
			t.Fatalf("Close() error: %v", err)
		}
	}

	data, _ := os.ReadFile(path)
	if got := len(strings.Split(strings.TrimSpace(string(data)), "\n")); got != 2 {
		t.Fatalf("expected 2 lines after reopen, got %d", got)
	}
}

func TestRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.ndjson")
	// Max size small enough that every write past the first triggers rotation.
	out, err := New(path, output.Full, WithMaxSize(100), WithBufSize(16))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		if err := out.Write(ctx, testPost(id)); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Fatalf("rotated file missing: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("current file missing: %v", err)
	}
}

func TestNewFailsOnBadPath(t *testing.T) {
	if _, err := New("/nonexistent/dir/posts.ndjson", output.Full); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
