package viz

import "github.com/charmbracelet/lipgloss"

// styles derived from the active theme
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	running lipgloss.Style
	paused  lipgloss.Style
	hint    lipgloss.Style
	panel   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		label:   lipgloss.NewStyle().Foreground(t.Muted),
		value:   lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		running: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		hint:    lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(1, 2),
	}
}

func (s styles) metric(label, value string) string {
	return s.label.Render(label+" ") + s.value.Render(value)
}
