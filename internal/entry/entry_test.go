package entry

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestNewID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := NewID()
		if err != nil {
			t.Fatalf("NewID: %v", err)
		}
		if err := ValidateID(id); err != nil {
			t.Errorf("generated ID failed validation: %v", err)
		}
		if seen[id] {
			t.Errorf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestValidateText(t *testing.T) {
	if err := ValidateText("오늘은 행복했다"); err != nil {
		t.Errorf("valid text rejected: %v", err)
	}
	if err := ValidateText("   \n\t"); err == nil {
		t.Error("expected error for whitespace-only text")
	}
}

func TestEmotionJSON(t *testing.T) {
	e := Entry{
		ID:     "abc12345",
		Text:   "test",
		Date:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Locked: false,
	}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "emotion") {
		t.Errorf("unclassified entry should omit emotion field: %s", data)
	}

	e.Emotion = Joy
	data, err = json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Entry
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Emotion != Joy {
		t.Errorf("emotion = %q, want %q", got.Emotion, Joy)
	}
}

func TestEmotionKnown(t *testing.T) {
	for _, em := range Emotions {
		if !em.Known() {
			t.Errorf("%q should be known", em)
		}
	}
	if Unknown.Known() {
		t.Error("unknown sentinel must not count as a known label")
	}
	if Emotion("happiness").Known() {
		t.Error("labels outside the closed set must not be known")
	}
}

func TestSameMonth(t *testing.T) {
	e := Entry{Date: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)}
	if !e.SameMonth(time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC)) {
		t.Error("same month/year should match")
	}
	if e.SameMonth(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("different month should not match")
	}
	if e.SameMonth(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("different year should not match")
	}
}

func TestPreview(t *testing.T) {
	e := Entry{Text: "first line\nsecond line"}
	if got := e.Preview(60); got != "first line second line" {
		t.Errorf("preview = %q", got)
	}
	e.Locked = true
	if got := e.Preview(60); got != "잠긴 내용입니다." {
		t.Errorf("locked preview = %q", got)
	}
}

func TestPreviewTruncatesOnRuneBoundary(t *testing.T) {
	e := Entry{Text: strings.Repeat("오늘도 즐거운 하루였다 ", 10)}
	got := e.Preview(20)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("long preview should be truncated, got %q", got)
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncated preview is not valid UTF-8: %q", got)
	}
	if n := len([]rune(got)); n != 20 {
		t.Errorf("truncated preview is %d runes, want 20", n)
	}
}
