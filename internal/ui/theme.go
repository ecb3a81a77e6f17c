package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mongle/monglectl/internal/config"
	"github.com/mongle/monglectl/internal/entry"
)

// Theme holds resolved lipgloss colors for terminal output.
type Theme struct {
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	MarkdownStyle string
}

// Built-in presets.
var presets = map[string]Theme{
	"default-dark": {
		Primary:       lipgloss.Color("15"),
		Muted:         lipgloss.Color("241"),
		Danger:        lipgloss.Color("9"),
		MarkdownStyle: "dark",
	},
	"default-light": {
		Primary:       lipgloss.Color("0"),
		Muted:         lipgloss.Color("245"),
		Danger:        lipgloss.Color("1"),
		MarkdownStyle: "light",
	},
}

// emotionColors matches each emotion label to its chart color.
var emotionColors = map[entry.Emotion]lipgloss.Color{
	entry.Fear:    lipgloss.Color("#f39c12"),
	entry.Anger:   lipgloss.Color("#e74c3c"),
	entry.Joy:     lipgloss.Color("#f1c40f"),
	entry.Sadness: lipgloss.Color("#3498db"),
	entry.Disgust: lipgloss.Color("#2ecc71"),
}

const defaultEmotionColor = lipgloss.Color("#95a5a6")

// ResolveTheme builds a Theme from config, starting with a preset
// and applying any explicit overrides.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	preset := cfg.Preset
	if preset == "" {
		preset = "default-dark"
	}

	theme, ok := presets[preset]
	if !ok {
		theme = presets["default-dark"]
	}

	if cfg.MarkdownStyle != "" {
		theme.MarkdownStyle = cfg.MarkdownStyle
	}

	return theme
}

// HeaderStyle returns a lipgloss style for headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

// MutedStyle returns a lipgloss style for secondary text.
func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// DangerStyle returns a lipgloss style for warnings/delete prompts.
func (t Theme) DangerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Danger)
}

// EmotionStyle returns a bold style in the color assigned to the emotion.
// Unknown or absent labels use a neutral gray.
func (t Theme) EmotionStyle(em entry.Emotion) lipgloss.Style {
	color, ok := emotionColors[em]
	if !ok {
		color = defaultEmotionColor
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
