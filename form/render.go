package form

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/paramedit/internal/grapheme"
)

const (
	previewTitle = "Current model"
	ellipsis     = "…"
)

func (m Model) View() string {
	st := m.cfg.Style
	parts := make([]string, 0, 2*len(m.inputs)+3)
	parts = append(parts, st.Title.Render(m.cfg.Title))

	for i := range m.inputs {
		parts = append(parts, m.renderField(i))
	}

	if m.cfg.ShowPreview {
		parts = append(parts,
			st.PreviewTitle.Render(previewTitle),
			st.Preview.Render(m.previewJSON()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderField(i int) string {
	st := m.cfg.Style
	labelStyle, boxStyle := st.Label, st.Input
	if m.focused && i == m.cursor {
		labelStyle, boxStyle = st.LabelFocused, st.InputFocused
	}

	d := m.cfg.Definitions[i]
	label := labelStyle.Render(grapheme.Truncate(d.Name, m.cfg.Width, ellipsis))
	// The input pads itself to the field width.
	return label + "\n" + boxStyle.Render(m.inputs[i].View())
}

func (m Model) previewJSON() string {
	b, err := json.MarshalIndent(m.GetModel(), "", "  ")
	if err != nil {
		// param.Model holds only ints and strings.
		return err.Error()
	}
	return strings.TrimRight(string(b), "\n")
}
