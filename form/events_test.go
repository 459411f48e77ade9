package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestOnChange_FiresOnEffectiveChangesOnly(t *testing.T) {
	var events []ChangeEvent
	cfg := demoConfig()
	cfg.OnChange = func(ev ChangeEvent) { events = append(events, ev) }
	m := New(cfg)

	if len(events) != 0 {
		t.Fatalf("events after New: got %d, want %d", len(events), 0)
	}

	m = m.SetValue(1, "casual") // same value
	if len(events) != 0 {
		t.Fatalf("events after no-op SetValue: got %d, want %d", len(events), 0)
	}

	m = m.SetValue(1, "evening")
	if len(events) != 1 {
		t.Fatalf("events after SetValue: got %d, want %d", len(events), 1)
	}
	if got, want := events[0], (ChangeEvent{ParamID: 1, Value: "evening", Previous: "casual", Version: 1}); got != want {
		t.Fatalf("event: got %+v, want %+v", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if len(events) != 2 {
		t.Fatalf("events after backspace: got %d, want %d", len(events), 2)
	}
	if got, want := events[1], (ChangeEvent{ParamID: 2, Value: "max", Previous: "maxi", Version: 2}); got != want {
		t.Fatalf("event: got %+v, want %+v", got, want)
	}
	if got, want := m.Version(), uint64(2); got != want {
		t.Fatalf("version: got %d, want %d", got, want)
	}
}

func TestOnChange_NewIDFromEmptyString(t *testing.T) {
	var events []ChangeEvent
	cfg := demoConfig()
	cfg.OnChange = func(ev ChangeEvent) { events = append(events, ev) }
	m := New(cfg)

	m = m.SetValue(5, "")
	if len(events) != 1 {
		t.Fatalf("inserting an unknown id must fire: got %d events", len(events))
	}
	if !m.State().Has(5) {
		t.Fatalf("id 5 must have an entry")
	}
}
