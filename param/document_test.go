package param

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const demoYAML = `
definitions:
  - id: 1
    name: Purpose
    type: text
  - id: 2
    name: Length
model:
  paramValues:
    - paramId: 1
      value: casual
    - paramId: 2
      value: maxi
  colors:
    - id: 5
      name: red
`

func TestDecodeDocument_YAML(t *testing.T) {
	doc, err := DecodeDocument(strings.NewReader(demoYAML))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := Document{
		Definitions: []Definition{
			{ID: 1, Name: "Purpose", Type: TypeText},
			{ID: 2, Name: "Length"},
		},
		Model: Model{
			Values: []Value{{ParamID: 1, Value: "casual"}, {ParamID: 2, Value: "maxi"}},
			Colors: []Color{{ID: 5, Name: "red"}},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeDocument_JSON(t *testing.T) {
	in := `{"definitions":[{"id":1,"name":"Purpose"}],"model":{"paramValues":[{"paramId":1,"value":"casual"}],"colors":[]}}`
	doc, err := DecodeDocument(strings.NewReader(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got, want := len(doc.Definitions), 1; got != want {
		t.Fatalf("definitions: got %d, want %d", got, want)
	}
	if got, want := doc.Model.Values[0].Value, "casual"; got != want {
		t.Fatalf("value: got %q, want %q", got, want)
	}
}

func TestDecodeDocument_Empty(t *testing.T) {
	doc, err := DecodeDocument(strings.NewReader(""))
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if len(doc.Definitions) != 0 || len(doc.Model.Values) != 0 {
		t.Fatalf("empty input: got %+v, want zero document", doc)
	}
}

func TestDecodeDocument_UnknownFieldFails(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader("definitions: []\nextra: 1\n"))
	if err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if !strings.Contains(err.Error(), "decode parameter document") {
		t.Fatalf("error context: got %q", err.Error())
	}
}

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(path, []byte(demoYAML), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := doc.Definitions[0].Name, "Purpose"; got != want {
		t.Fatalf("first definition: got %q, want %q", got, want)
	}
}

func TestLoadDocument_MissingFile(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
