package form

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/paramedit/param"
)

// Model is a Bubble Tea component that renders and edits a parameter set.
//
// Model is a value type: Update, SetValue and the focus helpers return the
// next Model and never change the receiver's State.
type Model struct {
	cfg Config
	log *zap.Logger

	state   param.State
	version uint64

	// inputs[i] renders cfg.Definitions[i].
	inputs  []textinput.Model
	cursor  int
	focused bool
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:     cfg,
		log:     cfg.Logger.Named("form"),
		state:   param.NewState(cfg.Definitions, cfg.Model),
		focused: true,
	}

	m.inputs = make([]textinput.Model, len(cfg.Definitions))
	for i, d := range cfg.Definitions {
		m.inputs[i] = m.newInput(d)
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}

	m.log.Debug("form initialized",
		zap.Int("definitions", len(cfg.Definitions)),
		zap.Int("entries", m.state.Len()),
		zap.Int("colors", len(cfg.Model.Colors)))
	return m
}

func (m Model) newInput(d param.Definition) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Width = m.cfg.Width - 1
	ti.Placeholder = placeholderFor(d)
	ti.TextStyle = m.cfg.Style.Text
	ti.PlaceholderStyle = m.cfg.Style.Placeholder
	_ = ti.Cursor.SetMode(cursor.CursorStatic)

	v, _ := m.state.Get(d.ID)
	ti.SetValue(v)
	return ti
}

func placeholderFor(d param.Definition) string {
	return "Enter a value for " + d.Name
}

func (m Model) Init() tea.Cmd { return nil }

// GetModel rebuilds the model from the current values. Colors are the ones
// supplied in Config.Model, or an empty slice.
func (m Model) GetModel() param.Model {
	return m.state.Model(m.cfg.Model.Colors)
}

// State returns the current immutable snapshot.
func (m Model) State() param.State { return m.state }

// Value returns the current value for id, or "" when id has no entry.
func (m Model) Value(id int) string {
	v, _ := m.state.Get(id)
	return v
}

// Version counts effective changes since New.
func (m Model) Version() uint64 { return m.version }

// SetValue replaces the value for id. Any string is accepted; ids without a
// definition are stored as well and show up in GetModel.
func (m Model) SetValue(id int, value string) Model {
	return m.commit(id, value, -1)
}

// commit stores value for id and syncs every field bound to id except skip,
// which already shows the new value.
func (m Model) commit(id int, value string, skip int) Model {
	prev, ok := m.state.Get(id)
	if ok && prev == value {
		return m
	}

	m.state = m.state.With(id, value)
	m.version++

	m.inputs = cloneInputs(m.inputs)
	for i, d := range m.cfg.Definitions {
		if d.ID == id && i != skip {
			m.inputs[i].SetValue(value)
			m.inputs[i].CursorEnd()
		}
	}

	m.log.Debug("parameter changed",
		zap.Int("param_id", id),
		zap.String("value", value),
		zap.String("previous", prev),
		zap.Bool("defined", m.defined(id)),
		zap.Uint64("version", m.version))

	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ChangeEvent{
			ParamID:  id,
			Value:    value,
			Previous: prev,
			Version:  m.version,
		})
	}
	return m
}

func (m Model) defined(id int) bool {
	for _, d := range m.cfg.Definitions {
		if d.ID == id {
			return true
		}
	}
	return false
}

func cloneInputs(in []textinput.Model) []textinput.Model {
	return append([]textinput.Model(nil), in...)
}

// detachInput gives ti a rune buffer of its own. textinput edits its buffer in
// place, and copies of a Model share it until one of them reallocates.
func detachInput(ti textinput.Model) textinput.Model {
	pos := ti.Position()
	ti.SetValue(ti.Value())
	ti.SetCursor(pos)
	return ti
}

func (m Model) Focus() Model {
	if m.focused {
		return m
	}
	m.focused = true
	if len(m.inputs) > 0 {
		m.inputs = cloneInputs(m.inputs)
		m.inputs[m.cursor].Focus()
	}
	return m
}

func (m Model) Blur() Model {
	if !m.focused {
		return m
	}
	m.focused = false
	if len(m.inputs) > 0 {
		m.inputs = cloneInputs(m.inputs)
		m.inputs[m.cursor].Blur()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// FocusedIndex returns the index of the active field in definition order, or
// -1 when there are no fields.
func (m Model) FocusedIndex() int {
	if len(m.inputs) == 0 {
		return -1
	}
	return m.cursor
}

// FocusField moves the active field to index i, wrapping around both ends.
func (m Model) FocusField(i int) Model {
	n := len(m.inputs)
	if n == 0 {
		return m
	}
	i = ((i % n) + n) % n
	if i == m.cursor {
		return m
	}

	m.inputs = cloneInputs(m.inputs)
	m.inputs[m.cursor].Blur()
	m.cursor = i
	if m.focused {
		m.inputs[m.cursor].Focus()
	}

	m.log.Debug("focus moved",
		zap.Int("index", i),
		zap.Int("param_id", m.cfg.Definitions[i].ID))
	return m
}

// SetWidth sets the inner width of every field.
func (m Model) SetWidth(width int) Model {
	width = normalizeWidth(width)
	if width == m.cfg.Width {
		return m
	}
	m.cfg.Width = width
	m.inputs = cloneInputs(m.inputs)
	for i := range m.inputs {
		m.inputs[i].Width = width - 1
	}
	return m
}

func (m Model) Width() int { return m.cfg.Width }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		frame := m.cfg.Style.InputFocused.GetHorizontalFrameSize()
		return m.SetWidth(msg.Width - frame), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		return m.updateField(msg)
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || len(m.inputs) == 0 {
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Next):
		return m.FocusField(m.cursor + 1), nil
	case key.Matches(msg, km.Prev):
		return m.FocusField(m.cursor - 1), nil
	}
	return m.updateField(msg)
}

func (m Model) updateField(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused || len(m.inputs) == 0 {
		return m, nil
	}

	i := m.cursor
	before := m.inputs[i].Value()

	m.inputs = cloneInputs(m.inputs)
	m.inputs[i] = detachInput(m.inputs[i])
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)

	// Compare against the field, not the state: the field may show a
	// sanitized form of a value set by the host.
	if after := m.inputs[i].Value(); after != before {
		m = m.commit(m.cfg.Definitions[i].ID, after, i)
	}
	return m, cmd
}
