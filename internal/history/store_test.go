package history

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "history.txt"))
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	if urls := store.Load(); len(urls) != 0 {
		t.Errorf("Expected empty history for missing file, got %v", urls)
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	content := "https://youtube.com/a\n\n  \nhttps://youtube.com/b\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to seed history file: %v", err)
	}

	store := NewStore(path)
	want := []string{"https://youtube.com/a", "https://youtube.com/b"}
	if got := store.Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %v, want %v", got, want)
	}
}

func TestRecordInsertsAtFront(t *testing.T) {
	store := newTestStore(t)

	store.Record("https://youtube.com/a")
	got := store.Record("https://youtube.com/b")

	want := []string{"https://youtube.com/b", "https://youtube.com/a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Record() = %v, want %v", got, want)
	}

	// Round-trips through the file.
	if loaded := store.Load(); !reflect.DeepEqual(loaded, want) {
		t.Errorf("Load() after record = %v, want %v", loaded, want)
	}
}

func TestRecordIsIdempotentOnRepetition(t *testing.T) {
	store := newTestStore(t)

	store.Record("https://youtube.com/a")
	store.Record("https://youtube.com/b")

	before, err := os.ReadFile(store.path)
	if err != nil {
		t.Fatalf("Failed to read history file: %v", err)
	}

	got := store.Record("https://youtube.com/b")
	want := []string{"https://youtube.com/b", "https://youtube.com/a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Repeated Record() = %v, want %v", got, want)
	}

	after, err := os.ReadFile(store.path)
	if err != nil {
		t.Fatalf("Failed to read history file: %v", err)
	}
	if string(before) != string(after) {
		t.Error("Re-recording the most recent URL must not rewrite the file")
	}
}

func TestRecordDeduplicatesAndReorders(t *testing.T) {
	store := newTestStore(t)

	store.Record("https://youtube.com/a")
	store.Record("https://youtube.com/b")
	got := store.Record("https://youtube.com/a")

	want := []string{"https://youtube.com/a", "https://youtube.com/b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Record() = %v, want %v", got, want)
	}
}

func TestRecordEnforcesCap(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < MaxEntries; i++ {
		store.Record(fmt.Sprintf("https://youtube.com/v%d", i))
	}

	got := store.Record("https://youtube.com/one-more")
	if len(got) != MaxEntries {
		t.Fatalf("Expected %d entries, got %d", MaxEntries, len(got))
	}
	if got[0] != "https://youtube.com/one-more" {
		t.Errorf("Expected newest URL first, got %q", got[0])
	}
	for _, url := range got {
		if url == "https://youtube.com/v0" {
			t.Error("Expected least recently used URL to be dropped")
		}
	}
}

func TestRecordSurvivesUnwritablePath(t *testing.T) {
	// Write failures are non-fatal; the returned list is still correct.
	store := NewStore(filepath.Join(t.TempDir(), "missing-dir", "history.txt"))

	got := store.Record("https://youtube.com/a")
	if len(got) != 1 || got[0] != "https://youtube.com/a" {
		t.Errorf("Record() = %v, want single-entry list despite write failure", got)
	}
}
