package param

// State maps parameter ids to their current string values.
//
// A State is never modified after construction: With returns a new snapshot
// and leaves the receiver as it was. Entries keep insertion order.
type State struct {
	ids    []int
	values map[int]string
}

// NewState merges the initial model with the definitions.
//
// Every value from initial is copied (a repeated id keeps its first position
// and takes the last value), then every definition missing from the mapping is
// added with an empty string. Ids that appear only in initial are kept.
func NewState(defs []Definition, initial Model) State {
	s := State{
		ids:    make([]int, 0, len(initial.Values)+len(defs)),
		values: make(map[int]string, len(initial.Values)+len(defs)),
	}
	for _, v := range initial.Values {
		s.set(v.ParamID, v.Value)
	}
	for _, d := range defs {
		if _, ok := s.values[d.ID]; !ok {
			s.set(d.ID, "")
		}
	}
	return s
}

func (s *State) set(id int, value string) {
	if s.values == nil {
		s.values = make(map[int]string)
	}
	if _, ok := s.values[id]; !ok {
		s.ids = append(s.ids, id)
	}
	s.values[id] = value
}

// Len returns the number of entries.
func (s State) Len() int { return len(s.ids) }

// Get returns the value stored for id.
func (s State) Get(id int) (string, bool) {
	v, ok := s.values[id]
	return v, ok
}

// Has reports whether id has an entry.
func (s State) Has(id int) bool {
	_, ok := s.values[id]
	return ok
}

// IDs returns the entry ids in insertion order.
func (s State) IDs() []int {
	return append([]int(nil), s.ids...)
}

// With returns a copy of s with id set to value. New ids are appended.
func (s State) With(id int, value string) State {
	next := State{
		ids:    make([]int, len(s.ids), len(s.ids)+1),
		values: make(map[int]string, len(s.values)+1),
	}
	copy(next.ids, s.ids)
	for k, v := range s.values {
		next.values[k] = v
	}
	next.set(id, value)
	return next
}

// Values returns every entry as a Value, in insertion order.
func (s State) Values() []Value {
	out := make([]Value, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, Value{ParamID: id, Value: s.values[id]})
	}
	return out
}

// Model rebuilds a Model from s. A nil colors slice becomes an empty one.
func (s State) Model(colors []Color) Model {
	return Model{
		Values: s.Values(),
		Colors: cloneColors(colors),
	}
}

// Equal reports whether s and o hold the same entries, ignoring order.
func (s State) Equal(o State) bool {
	if len(s.values) != len(o.values) {
		return false
	}
	for k, v := range s.values {
		if ov, ok := o.values[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
