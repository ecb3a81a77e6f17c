package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mongle/monglectl/internal/entry"
	"github.com/mongle/monglectl/internal/stats"
)

// FormatEntryCreated formats a creation confirmation message.
func FormatEntryCreated(w io.Writer, e entry.Entry) {
	fmt.Fprintf(w, "Created entry %s (%s)\n", e.ID, e.Date.Local().Format("2006-01-02"))
}

// FormatEntryUpdated formats an update confirmation message.
func FormatEntryUpdated(w io.Writer, e entry.Entry) {
	fmt.Fprintf(w, "Updated entry %s (%s)\n", e.ID, e.Date.Local().Format("2006-01-02"))
}

// FormatEntryDeleted formats a deletion confirmation message.
func FormatEntryDeleted(w io.Writer, id string) {
	fmt.Fprintf(w, "Deleted entry %s.\n", id)
}

// FormatLockToggled formats a lock/unlock confirmation message.
func FormatLockToggled(w io.Writer, e entry.Entry) {
	if e.Locked {
		fmt.Fprintf(w, "Locked entry %s.\n", e.ID)
	} else {
		fmt.Fprintf(w, "Unlocked entry %s.\n", e.ID)
	}
}

// FormatEntryFull formats a full entry display with metadata header.
// Locked entries still show their text here: opening the detail view is the
// owner's deliberate action, unlike list output which masks them.
func FormatEntryFull(w io.Writer, e entry.Entry, theme Theme) {
	fmt.Fprintf(w, "Entry: %s\n", e.ID)
	fmt.Fprintf(w, "Date: %s\n", e.Date.Local().Format("2006-01-02"))
	if e.Locked {
		fmt.Fprintln(w, "Locked: yes")
	}
	fmt.Fprintln(w)

	rendered := RenderMarkdownWithStyle(e.Text, 80, theme.MarkdownStyle)
	fmt.Fprintln(w, rendered)
}

// FormatEmotion formats the enrichment outcome below a detail view.
func FormatEmotion(w io.Writer, em entry.Emotion, message string, theme Theme) {
	fmt.Fprintf(w, "감정: %s\n", theme.EmotionStyle(em).Render(string(em)))
	if message != "" {
		fmt.Fprintf(w, "한마디 메시지: %s\n", message)
	}
}

// FormatFallback formats the advisory shown when classification failed.
func FormatFallback(w io.Writer, message string, theme Theme) {
	fmt.Fprintln(w, theme.MutedStyle().Render(message))
}

// FormatEntryList formats a list of entries as a table. Locked entries are
// masked, never previewed.
func FormatEntryList(w io.Writer, entries []entry.Entry, theme Theme) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No diary entries found.")
		return
	}
	for _, e := range entries {
		label := "          "
		if e.Emotion != "" {
			label = theme.EmotionStyle(e.Emotion).Render(fmt.Sprintf("%-10s", e.Emotion))
		}
		fmt.Fprintf(w, "%s  %s  %s %s\n",
			e.ID,
			e.Date.Local().Format("2006-01-02"),
			label,
			e.Preview(60),
		)
	}
}

// FormatMonthStats formats per-emotion counts for one month.
func FormatMonthStats(w io.Writer, month time.Time, counts stats.Counts, theme Theme) {
	fmt.Fprintln(w, theme.HeaderStyle().Render("감정 통계 "+month.Format("2006-01")))
	for _, em := range entry.Emotions {
		fmt.Fprintf(w, "  %s %d\n",
			theme.EmotionStyle(em).Render(fmt.Sprintf("%-10s", em)),
			counts[em],
		)
	}
	if counts.Total() == 0 {
		fmt.Fprintln(w, theme.MutedStyle().Render("  (no classified entries this month)"))
	}
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EntrySummary is a JSON representation for list output.
type EntrySummary struct {
	ID      string    `json:"id"`
	Preview string    `json:"preview"`
	Date    time.Time `json:"date"`
	Locked  bool      `json:"locked"`
	Emotion string    `json:"emotion,omitempty"`
}

// ToSummaries converts entries to summary format for JSON list output.
func ToSummaries(entries []entry.Entry) []EntrySummary {
	summaries := make([]EntrySummary, len(entries))
	for i, e := range entries {
		summaries[i] = EntrySummary{
			ID:      e.ID,
			Preview: e.Preview(60),
			Date:    e.Date,
			Locked:  e.Locked,
			Emotion: string(e.Emotion),
		}
	}
	return summaries
}

// DeleteResult is a JSON representation for delete output.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// EnrichmentJSON is a JSON representation of an enrichment outcome.
type EnrichmentJSON struct {
	ID      string `json:"id"`
	State   string `json:"state"`
	Emotion string `json:"emotion,omitempty"`
	Message string `json:"message,omitempty"`
}

// ChatJSON is a JSON representation of one chat exchange.
type ChatJSON struct {
	Message string `json:"message"`
	Reply   string `json:"reply"`
	Failed  bool   `json:"failed,omitempty"`
}

// StatsJSON is a JSON representation of monthly emotion counts.
type StatsJSON struct {
	Month  string         `json:"month"`
	Counts map[string]int `json:"counts"`
}

// ToStatsJSON converts counts to their JSON representation.
func ToStatsJSON(month time.Time, counts stats.Counts) StatsJSON {
	out := StatsJSON{Month: month.Format("2006-01"), Counts: map[string]int{}}
	for em, n := range counts {
		out.Counts[string(em)] = n
	}
	return out
}
