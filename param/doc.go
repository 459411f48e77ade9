// Package param implements the pure data model behind the parameter form.
//
// A Definition describes one editable field, a Model is the externally visible
// value set, and a State is the immutable per-field mapping the form edits.
// Nothing here depends on the terminal.
package param
