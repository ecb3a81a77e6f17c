package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mongle/monglectl/internal/entry"
)

// deleteConfirmModel asks for confirmation before an entry is permanently
// deleted. The entry itself is rendered in the prompt so the user sees what
// is about to go; locked entries stay masked even here.
type deleteConfirmModel struct {
	entry     entry.Entry
	confirmed bool
	done      bool
	theme     Theme
}

func (m deleteConfirmModel) Init() tea.Cmd {
	return nil
}

func (m deleteConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "enter", "esc", "ctrl+c":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m deleteConfirmModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.HeaderStyle().Render(fmt.Sprintf("Entry %s (%s)", m.entry.ID, m.entry.Date.Local().Format("2006-01-02"))))
	b.WriteString("\n")
	b.WriteString(m.theme.MutedStyle().Render(m.entry.Preview(60)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.DangerStyle().Render("Delete this entry? This cannot be undone."))
	b.WriteString(" [y/N] ")
	return b.String()
}

// ConfirmDelete shows the entry and asks whether to delete it. Returns true
// only on an explicit "y".
func ConfirmDelete(e entry.Entry, theme Theme) (bool, error) {
	m := deleteConfirmModel{entry: e, theme: theme}
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	return result.(deleteConfirmModel).confirmed, nil
}
