// Package highlight defines the outbound notification bridge to an
// external incremental highlighter. The core never owns or implements
// highlighting; it only reports the net structural change after each
// mutating action so a highlighter can recompute token spans for the
// affected rows.
package highlight

// Highlighter receives fire-and-forget, synchronous notifications. The
// core does not observe a return value and never blocks on a call.
// Shaped like a single external lexer interface the core holds and
// calls, inverted from pull to push so the core drives notification
// timing instead of the highlighter polling for changes.
type Highlighter interface {
	// Edit is called after a character-level edit within row, with the
	// row's full text post-edit.
	Edit(row int, rowText string)
	// InsertLine is called after a row is inserted at index row, with
	// that row's text.
	InsertLine(row int, rowText string)
	// RemoveLine is called after the row at index row is deleted.
	RemoveLine(row int)
	// Append is called after a row is appended at the end of the buffer.
	Append(rowText string)
}

// Noop discards every notification. It is the zero-value default when a
// host does not supply a highlighter.
type Noop struct{}

func (Noop) Edit(int, string)       {}
func (Noop) InsertLine(int, string) {}
func (Noop) RemoveLine(int)         {}
func (Noop) Append(string)          {}
