package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"careplan/pkg/logx"
)

func TestOpenDisabled(t *testing.T) {
	t.Parallel()
	for _, driver := range []string{"", "none", " NONE "} {
		st, err := Open(Config{Driver: driver}, logx.Nop())
		if err != nil {
			t.Fatalf("Open(%q) error: %v", driver, err)
		}
		if st != nil {
			t.Fatalf("Open(%q) returned a store", driver)
		}
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	t.Parallel()
	if _, err := Open(Config{Driver: "redis"}, logx.Nop()); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestFileStoreRequiresPath(t *testing.T) {
	t.Parallel()
	if _, err := Open(Config{Driver: "file"}, logx.Nop()); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestFileStoreAppendAndReadBack(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	st, err := Open(Config{Driver: "file", Path: filepath.Join(dir, "careplan_store")}, logx.Nop())
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}

	entries := []CompletionEntry{
		{Planner: "Daily Care", Subject: "Buddy", Title: "Walk", Start: "9:00 AM", CompletedOn: "2025-03-10", NextDue: "2025-03-11"},
		{Planner: "Daily Care", Subject: "Whiskers", Title: "Litter", Start: "9:30 AM", CompletedOn: "2025-03-10"},
	}
	for _, e := range entries {
		if err := st.AppendCompletion(context.Background(), e); err != nil {
			t.Fatalf("AppendCompletion error: %v", err)
		}
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "careplan_store.completions.jsonl"))
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var got []CompletionEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e CompletionEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("bad log line %q: %v", sc.Text(), err)
		}
		got = append(got, e)
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("read %d entries, want 2", len(got))
	}
	if got[0].Title != "Walk" || got[0].NextDue != "2025-03-11" {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}
	if got[1].Subject != "Whiskers" || got[1].NextDue != "" {
		t.Fatalf("unexpected second entry: %+v", got[1])
	}
	if got[0].At.IsZero() {
		t.Fatal("At timestamp was not stamped")
	}
}

func TestFileStoreAppendAfterClose(t *testing.T) {
	t.Parallel()
	st, err := Open(Config{Driver: "file", Path: filepath.Join(t.TempDir(), "store")}, logx.Nop())
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if err := st.AppendCompletion(context.Background(), CompletionEntry{Title: "Walk"}); err == nil {
		t.Fatal("expected error appending to a closed store")
	}
	// Close is idempotent.
	if err := st.Close(); err != nil {
		t.Fatalf("second Close error: %v", err)
	}
}
