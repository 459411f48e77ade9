package form

import (
	"strconv"

	"github.com/iw2rmb/paramedit/param"
)

// Field is the host-facing view of one rendered field.
type Field struct {
	Definition param.Definition
	// InputID identifies the field the label belongs to ("param-<id>").
	InputID string
	// Value is the field's display text. Tabs and newlines in the stored value
	// show as spaces here; Model.Value returns the stored string.
	Value   string
	Focused bool
}

func InputID(paramID int) string {
	return "param-" + strconv.Itoa(paramID)
}

// Fields returns every rendered field in definition order.
func (m Model) Fields() []Field {
	out := make([]Field, 0, len(m.inputs))
	for i := range m.inputs {
		out = append(out, m.field(i))
	}
	return out
}

// Field finds a field by its label. When several definitions share a name the
// first one wins.
func (m Model) Field(label string) (Field, bool) {
	for i, d := range m.cfg.Definitions {
		if d.Name == label {
			return m.field(i), true
		}
	}
	return Field{}, false
}

// SetFieldValue edits the field labeled label as if the user had replaced its
// text. It reports false when no field has that label.
func (m Model) SetFieldValue(label, value string) (Model, bool) {
	f, ok := m.Field(label)
	if !ok {
		return m, false
	}
	return m.SetValue(f.Definition.ID, value), true
}

func (m Model) field(i int) Field {
	d := m.cfg.Definitions[i]
	return Field{
		Definition: d,
		InputID:    InputID(d.ID),
		Value:      m.inputs[i].Value(),
		Focused:    m.focused && i == m.cursor,
	}
}
