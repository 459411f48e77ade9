package param

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document bundles what a host needs to open a form: the field definitions
// and the initial model.
type Document struct {
	Definitions []Definition `json:"definitions" yaml:"definitions"`
	Model       Model        `json:"model" yaml:"model"`
}

// DecodeDocument reads a YAML (or JSON) document from r.
// An empty input yields an empty Document.
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return Document{}, fmt.Errorf("decode parameter document: %w", err)
	}
	return doc, nil
}

// LoadDocument reads the document stored at path.
func LoadDocument(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open parameter document: %w", err)
	}
	defer f.Close()

	doc, err := DecodeDocument(f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
