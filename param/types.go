package param

// TypeText is the only field type. Every Definition renders as a text field
// whatever its Type.
const TypeText = "text"

// Definition describes one editable field. ID is unique within a form.
type Definition struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Value is the current string for one parameter.
type Value struct {
	ParamID int    `json:"paramId" yaml:"paramId"`
	Value   string `json:"value" yaml:"value"`
}

// Color is carried through the form untouched.
type Color struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Model is the value set handed to and read back from the form.
type Model struct {
	Values []Value `json:"paramValues" yaml:"paramValues"`
	Colors []Color `json:"colors" yaml:"colors"`
}

func cloneColors(in []Color) []Color {
	out := make([]Color, len(in))
	copy(out, in)
	return out
}
