package form

import "github.com/charmbracelet/lipgloss"

// Style controls the form's rendering.
type Style struct {
	Title lipgloss.Style

	Label        lipgloss.Style
	LabelFocused lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Text         lipgloss.Style
	Placeholder  lipgloss.Style

	PreviewTitle lipgloss.Style
	Preview      lipgloss.Style
}

func DefaultStyle() Style {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Padding(0, 1)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("246"))

	return Style{
		Title:        lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Label:        label,
		LabelFocused: label.Foreground(lipgloss.Color("252")).Bold(true),
		Input:        box,
		InputFocused: box.BorderForeground(lipgloss.Color("#3b82f6")),
		Text:         lipgloss.NewStyle(),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		PreviewTitle: lipgloss.NewStyle().Bold(true).MarginTop(1),
		Preview: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
	}
}
