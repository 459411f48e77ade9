// Package form provides a Bubble Tea parameter form backed by the param
// package.
//
// A Model renders one labeled text field per param.Definition, keeps the
// edited values in an immutable param.State, and hands them back to the host
// through GetModel. Hosts can also drive edits with SetValue and observe them
// through Config.OnChange.
package form
