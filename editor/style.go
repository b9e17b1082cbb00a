package editor

import "github.com/charmbracelet/lipgloss"

// Style controls how View decorates the rendered rows.
type Style struct {
	Text   lipgloss.Style
	Caret  lipgloss.Style
	Filler lipgloss.Style
	Banner lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:   lipgloss.NewStyle(),
		Caret:  lipgloss.NewStyle().Reverse(true),
		Filler: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Banner: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
