package form

import "testing"

func TestField_ByLabel(t *testing.T) {
	m := New(demoConfig())

	f := mustField(t, m, "Length")
	if got, want := f.InputID, "param-2"; got != want {
		t.Fatalf("input id: got %q, want %q", got, want)
	}
	if got, want := f.Definition.ID, 2; got != want {
		t.Fatalf("definition id: got %d, want %d", got, want)
	}
	if f.Focused {
		t.Fatalf("Length must not be focused initially")
	}
	if !mustField(t, m, "Purpose").Focused {
		t.Fatalf("Purpose must be focused initially")
	}
}

func TestField_UnknownLabel(t *testing.T) {
	m := New(demoConfig())

	if _, ok := m.Field("Colour"); ok {
		t.Fatalf("unexpected field for unknown label")
	}
	next, ok := m.SetFieldValue("Colour", "red")
	if ok {
		t.Fatalf("SetFieldValue on unknown label must report false")
	}
	if next.Version() != m.Version() {
		t.Fatalf("SetFieldValue on unknown label must not change the form")
	}
}

func TestFields_DefinitionOrder(t *testing.T) {
	fields := New(demoConfig()).Fields()

	want := []string{"Purpose", "Length"}
	for i, f := range fields {
		if f.Definition.Name != want[i] {
			t.Fatalf("field %d: got %q, want %q", i, f.Definition.Name, want[i])
		}
	}
}
