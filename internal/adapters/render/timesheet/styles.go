package timesheet

import "github.com/charmbracelet/lipgloss"

type styles struct {
	enabled bool
	header  lipgloss.Style
	rule    lipgloss.Style
	running lipgloss.Style
	count   lipgloss.Style
	total   lipgloss.Style
}

func newStyles(enabled bool) styles {
	base := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return styles{
		enabled: enabled,
		header:  base.Bold(true),
		rule:    base.Foreground(lipgloss.Color("241")),
		running: base.Bold(true).Foreground(lipgloss.Color("214")),
		count:   base.Foreground(lipgloss.Color("245")),
		total:   base.Bold(true).Foreground(lipgloss.Color("39")),
	}
}

func (s styles) paint(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}
