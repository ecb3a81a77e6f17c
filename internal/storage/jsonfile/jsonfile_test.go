package jsonfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mongle/monglectl/internal/entry"
)

func TestLoadMissingBlob(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load on missing blob must not fail: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %d", len(got))
	}
}

func TestLoadMalformedBlob(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "diaries.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing blob: %v", err)
	}
	if _, err := s.Load(); err == nil {
		t.Error("expected error for malformed blob")
	}
}

func TestBlobFieldNames(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e := entry.Entry{
		ID:      "abc12345",
		Text:    "오늘은 행복했다",
		Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Locked:  false,
		Emotion: entry.Joy,
	}
	if err := s.Save([]entry.Entry{e}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "diaries.json"))
	if err != nil {
		t.Fatalf("reading blob: %v", err)
	}
	blob := string(data)
	for _, field := range []string{`"id"`, `"text"`, `"date"`, `"locked"`, `"emotion"`} {
		if !strings.Contains(blob, field) {
			t.Errorf("blob missing field %s:\n%s", field, blob)
		}
	}
	if !strings.Contains(blob, "2024-03-01T00:00:00Z") {
		t.Errorf("date not serialized as ISO-8601:\n%s", blob)
	}
}

func TestNoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Save([]entry.Entry{{ID: "abc12345", Text: "x", Date: time.Now()}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, f := range files {
		if strings.HasPrefix(f.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", f.Name())
		}
	}
}
