// Package buffer implements the text buffer primitive: an ordered
// sequence of rows, each an ordered sequence of Unicode scalar values,
// with no interior newline per row.
package buffer

import "strings"

// Buffer is a two-dimensional character store with row/column indexing.
// Rows are addressed by []rune so InsertChar/RemoveChar operate on scalar
// values, not bytes or grapheme clusters.
type Buffer struct {
	rows [][]rune
}

// New creates a buffer from the given lines, splitting text on '\n'.
// An empty string produces a single empty row (`content: []string{""}`),
// never zero rows.
func New(text string) *Buffer {
	if text == "" {
		return &Buffer{rows: [][]rune{{}}}
	}
	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = []rune(l)
	}
	return &Buffer{rows: rows}
}

// Empty creates a buffer with zero rows, distinct from New("")'s single
// empty row.
func Empty() *Buffer {
	return &Buffer{rows: nil}
}

// Len returns the row count.
func (b *Buffer) Len() int {
	return len(b.rows)
}

// LenCol returns the character count of row, or -1 if row is out of bounds.
func (b *Buffer) LenCol(row int) int {
	if row < 0 || row >= len(b.rows) {
		return -1
	}
	return len(b.rows[row])
}

// Row returns the text of row. Out-of-bounds rows return "".
func (b *Buffer) Row(row int) string {
	if row < 0 || row >= len(b.rows) {
		return ""
	}
	return string(b.rows[row])
}

// Lines returns every row as a string slice, in order.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.rows))
	for i, r := range b.rows {
		out[i] = string(r)
	}
	return out
}

// Text joins every row with '\n', reconstructing the original text.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// Clone returns a deep copy, used by the undo engine to snapshot state.
func (b *Buffer) Clone() *Buffer {
	rows := make([][]rune, len(b.rows))
	for i, r := range b.rows {
		cp := make([]rune, len(r))
		copy(cp, r)
		rows[i] = cp
	}
	return &Buffer{rows: rows}
}

// InsertChar inserts ch at (row, col). If the buffer is empty, the first
// insertion creates row 0.
func (b *Buffer) InsertChar(row, col int, ch rune) {
	if len(b.rows) == 0 {
		b.rows = [][]rune{{}}
		row = 0
		col = 0
	}
	if row < 0 {
		row = 0
	}
	if row >= len(b.rows) {
		row = len(b.rows) - 1
	}
	line := b.rows[row]
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = ch
	b.rows[row] = line
}

// RemoveChar removes and returns the character at (row, col).
// Out-of-range positions are a no-op and return (0, false).
func (b *Buffer) RemoveChar(row, col int) (rune, bool) {
	if row < 0 || row >= len(b.rows) {
		return 0, false
	}
	line := b.rows[row]
	if col < 0 || col >= len(line) {
		return 0, false
	}
	ch := line[col]
	b.rows[row] = append(line[:col], line[col+1:]...)
	return ch, true
}

// InsertRow inserts a new row with the given text at index row.
// row may equal Len() to append at the end.
func (b *Buffer) InsertRow(row int, text string) {
	if row < 0 {
		row = 0
	}
	if row > len(b.rows) {
		row = len(b.rows)
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[row+1:], b.rows[row:])
	b.rows[row] = []rune(text)
}

// RemoveRow deletes the row at index row. A no-op if out of range.
func (b *Buffer) RemoveRow(row int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	b.rows = append(b.rows[:row], b.rows[row+1:]...)
}

// SplitAt splits the buffer at (row, col): the returned tail buffer begins
// with the suffix of row from col onward, followed by every subsequent
// row; the receiver is truncated to keep only the prefix of row and the
// rows before it.
func (b *Buffer) SplitAt(row, col int) *Buffer {
	if row < 0 || row >= len(b.rows) {
		return Empty()
	}
	line := b.rows[row]
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}

	suffix := make([]rune, len(line)-col)
	copy(suffix, line[col:])

	tailRows := make([][]rune, 0, len(b.rows)-row)
	tailRows = append(tailRows, suffix)
	for _, r := range b.rows[row+1:] {
		cp := make([]rune, len(r))
		copy(cp, r)
		tailRows = append(tailRows, cp)
	}

	prefix := make([]rune, col)
	copy(prefix, line[:col])
	b.rows = append(b.rows[:row:row], prefix)

	return &Buffer{rows: tailRows}
}

// Append concatenates tail onto the end of the buffer: tail's first row is
// joined onto the buffer's current last row, and tail's remaining rows are
// appended as new rows. It is the inverse of SplitAt.
func (b *Buffer) Append(tail *Buffer) {
	if tail == nil || len(tail.rows) == 0 {
		return
	}
	if len(b.rows) == 0 {
		b.rows = tail.rows
		return
	}
	last := len(b.rows) - 1
	b.rows[last] = append(b.rows[last], tail.rows[0]...)
	b.rows = append(b.rows, tail.rows[1:]...)
}
