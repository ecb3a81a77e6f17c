package entry

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

var idPattern = regexp.MustCompile(`^[a-z0-9]{8}$`)

// Emotion is a classification label attached to an entry.
type Emotion string

// The closed set of labels the classifier may produce. Unknown is the
// sentinel for responses that name none of the five emotions.
const (
	Fear    Emotion = "fear"
	Anger   Emotion = "anger"
	Joy     Emotion = "joy"
	Sadness Emotion = "sadness"
	Disgust Emotion = "disgust"
	Unknown Emotion = "unknown"
)

// Emotions lists the five known labels in display order.
var Emotions = []Emotion{Fear, Anger, Joy, Sadness, Disgust}

// Known reports whether e is one of the five emotion labels.
func (e Emotion) Known() bool {
	switch e {
	case Fear, Anger, Joy, Sadness, Disgust:
		return true
	}
	return false
}

// Entry represents a single diary entry.
// Emotion is written only by the enrichment pass, never by user edits.
type Entry struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	Date    time.Time `json:"date"`
	Locked  bool      `json:"locked"`
	Emotion Emotion   `json:"emotion,omitempty"`
}

// NewID generates a new nanoid for an entry.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// ValidateID checks whether an ID matches the expected pattern.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid entry ID: %q (must be 8 lowercase alphanumeric characters)", id)
	}
	return nil
}

// ValidateText checks whether the entry body is non-empty.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("entry text must not be empty")
	}
	return nil
}

// SameMonth reports whether the entry's date falls in the same calendar
// month and year as ref.
func (e *Entry) SameMonth(ref time.Time) bool {
	return e.Date.Year() == ref.Year() && e.Date.Month() == ref.Month()
}

// Preview returns a truncated single-line preview of the entry text.
// Locked entries are masked instead of previewed. Truncation counts runes,
// not bytes, so multibyte text is never cut mid-character.
func (e *Entry) Preview(maxLen int) string {
	if e.Locked {
		return "잠긴 내용입니다."
	}
	text := strings.ReplaceAll(e.Text, "\n", " ")
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-3]) + "..."
}
