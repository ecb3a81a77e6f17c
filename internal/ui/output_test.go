package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mongle/monglectl/internal/config"
	"github.com/mongle/monglectl/internal/entry"
	"github.com/mongle/monglectl/internal/stats"
)

func testTheme() Theme {
	return ResolveTheme(config.ThemeConfig{})
}

func TestFormatEntryListMasksLocked(t *testing.T) {
	var buf bytes.Buffer
	entries := []entry.Entry{
		{ID: "aaaaaaaa", Text: "비밀 일기", Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Locked: true},
		{ID: "bbbbbbbb", Text: "공개 일기", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	FormatEntryList(&buf, entries, testTheme())

	out := buf.String()
	if strings.Contains(out, "비밀 일기") {
		t.Error("locked entry text must not be revealed")
	}
	if !strings.Contains(out, "잠긴 내용입니다.") {
		t.Error("locked entry should show the mask text")
	}
	if !strings.Contains(out, "공개 일기") {
		t.Error("unlocked entry text should be shown")
	}
}

func TestFormatEntryListEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatEntryList(&buf, nil, testTheme())
	if !strings.Contains(buf.String(), "No diary entries found.") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestFormatMonthStats(t *testing.T) {
	var buf bytes.Buffer
	counts := stats.Counts{
		entry.Fear: 0, entry.Anger: 1, entry.Joy: 3,
		entry.Sadness: 0, entry.Disgust: 0,
	}
	FormatMonthStats(&buf, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), counts, testTheme())

	out := buf.String()
	if !strings.Contains(out, "2024-03") {
		t.Error("month header missing")
	}
	for _, em := range entry.Emotions {
		if !strings.Contains(out, string(em)) {
			t.Errorf("label %q missing from stats output", em)
		}
	}
}

func TestToSummaries(t *testing.T) {
	entries := []entry.Entry{
		{ID: "aaaaaaaa", Text: "hello", Date: time.Now(), Emotion: entry.Joy},
		{ID: "bbbbbbbb", Text: "no label", Date: time.Now()},
	}
	summaries := ToSummaries(entries)
	if summaries[0].Emotion != "joy" {
		t.Errorf("emotion = %q", summaries[0].Emotion)
	}
	if summaries[1].Emotion != "" {
		t.Errorf("unclassified summary should have empty emotion, got %q", summaries[1].Emotion)
	}
}

func TestResolveThemeFallback(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "no-such-preset"})
	if theme.MarkdownStyle != "dark" {
		t.Errorf("unknown preset should fall back to default-dark, got %q", theme.MarkdownStyle)
	}
	theme = ResolveTheme(config.ThemeConfig{Preset: "default-light", MarkdownStyle: "notty"})
	if theme.MarkdownStyle != "notty" {
		t.Errorf("markdown style override ignored, got %q", theme.MarkdownStyle)
	}
}
