package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mongle/monglectl/internal/entry"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDeleteConfirmShowsEntry(t *testing.T) {
	e := entry.Entry{
		ID:   "abc12345",
		Text: "지울 일기",
		Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	m := deleteConfirmModel{entry: e, theme: testTheme()}

	view := m.View()
	if !strings.Contains(view, "abc12345") {
		t.Error("view should show the entry id")
	}
	if !strings.Contains(view, "지울 일기") {
		t.Error("view should show the entry preview")
	}
	if !strings.Contains(view, "[y/N]") {
		t.Error("view should show the y/N prompt")
	}
}

func TestDeleteConfirmMasksLockedEntry(t *testing.T) {
	e := entry.Entry{
		ID:     "abc12345",
		Text:   "비밀 일기",
		Date:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Locked: true,
	}
	m := deleteConfirmModel{entry: e, theme: testTheme()}

	view := m.View()
	if strings.Contains(view, "비밀 일기") {
		t.Error("locked entry text must not appear in the confirm prompt")
	}
	if !strings.Contains(view, "잠긴 내용입니다.") {
		t.Error("locked entry should show the mask text")
	}
}

func TestDeleteConfirmKeys(t *testing.T) {
	tests := []struct {
		key       string
		confirmed bool
	}{
		{"y", true},
		{"Y", true},
		{"n", false},
		{"x", false},
	}
	for _, tt := range tests {
		m := deleteConfirmModel{theme: testTheme()}
		updated, _ := m.Update(keyMsg(tt.key))
		got := updated.(deleteConfirmModel)
		if tt.key == "x" {
			if got.done {
				t.Errorf("key %q should not finish the prompt", tt.key)
			}
			continue
		}
		if !got.done {
			t.Errorf("key %q should finish the prompt", tt.key)
		}
		if got.confirmed != tt.confirmed {
			t.Errorf("key %q: confirmed = %v, want %v", tt.key, got.confirmed, tt.confirmed)
		}
	}
}

func TestDeleteConfirmEscDeclines(t *testing.T) {
	m := deleteConfirmModel{confirmed: true, theme: testTheme()}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got := updated.(deleteConfirmModel)
	if !got.done || got.confirmed {
		t.Errorf("esc should decline, got done=%v confirmed=%v", got.done, got.confirmed)
	}
	if got.View() != "" {
		t.Error("finished prompt should render nothing")
	}
}
