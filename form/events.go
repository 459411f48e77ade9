package form

// ChangeEvent describes one effective value change.
type ChangeEvent struct {
	ParamID  int
	Value    string
	Previous string
	// Version counts effective changes since New.
	Version uint64
}
