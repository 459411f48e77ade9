package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/paramedit/form"
	"github.com/iw2rmb/paramedit/param"
)

type hostKeyMap struct {
	form.KeyMap
	Submit key.Binding
	Quit   key.Binding
}

func defaultHostKeyMap() hostKeyMap {
	return hostKeyMap{
		KeyMap: form.DefaultKeyMap(),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "get model")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k hostKeyMap) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), k.Submit, k.Quit)
}

func (k hostKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type model struct {
	form form.Model
	keys hostKeyMap
	help help.Model
	log  *zap.Logger

	submitted bool
	result    param.Model
}

func newModel(doc param.Document, showPreview bool, log *zap.Logger) model {
	cfg := form.Config{
		Definitions: doc.Definitions,
		Model:       doc.Model,
		ShowPreview: showPreview,
		Style:       form.DefaultStyle(),
		Logger:      log,
	}
	return model{
		form: form.New(cfg),
		keys: defaultHostKeyMap(),
		help: help.New(),
		log:  log,
	}
}

func (m model) Init() tea.Cmd { return m.form.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.log.Info("editor closed without submitting")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.submitted = true
			m.result = m.form.GetModel()
			m.log.Info("model requested", zap.Int("values", len(m.result.Values)))
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.form.View(),
		"",
		m.help.View(m.keys))
}

func runEditor(out io.Writer, doc param.Document, showPreview bool, log *zap.Logger) error {
	log.Info("starting editor",
		zap.Int("definitions", len(doc.Definitions)),
		zap.Int("values", len(doc.Model.Values)))

	p := tea.NewProgram(newModel(doc, showPreview, log), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	m, ok := final.(model)
	if !ok || !m.submitted {
		return nil
	}
	return writeModel(out, m.result)
}

func printInitialModel(out io.Writer, doc param.Document) error {
	return writeModel(out, param.NewState(doc.Definitions, doc.Model).Model(doc.Model.Colors))
}

func writeModel(out io.Writer, pm param.Model) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pm); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return nil
}
