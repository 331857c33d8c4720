// Package view holds the caller-facing state of the matching core: the
// active filter/highlight expressions, the configuration record, the
// line buffer, and the annotator that turns raw lines into pass/fail
// decisions and styled runs.
//
// Everything upstream (how lines arrive) and downstream (how runs are
// drawn) is an external collaborator; this package only exchanges plain
// strings, booleans and runs with them.
package view

// Event is one message from a log source: either a complete,
// newline-stripped line, or a source-level failure. Sources deliver
// these over a channel owned by the embedding program.
type Event struct {
	Line string
	Err  error
}
