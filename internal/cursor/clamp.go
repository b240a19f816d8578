package cursor

import (
	"github.com/arjunvelu/vimcore/internal/buffer"
	"github.com/arjunvelu/vimcore/internal/mode"
)

// MaxCol returns the highest legal column for row under m:
// LenCol(row)-1 in every mode except Insert and Replace, LenCol(row) in
// those two (the modes that can park the cursor just past the last
// character while typing).
// 0 when the row is empty.
func MaxCol(b *buffer.Buffer, row int, m mode.Mode) int {
	n := b.LenCol(row)
	if n < 0 {
		return 0
	}
	if isInsertLike(m) {
		return n
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

// MaxRow returns the highest legal row under m: Len()-1 in Normal/Visual
// family, Len() in Insert-like modes (permits a cursor parked just past
// the last row while appending a new one).
func MaxRow(b *buffer.Buffer, m mode.Mode) int {
	n := b.Len()
	if isInsertLike(m) {
		return n
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

// isInsertLike reports whether m permits a cursor parked one past the last
// character/row. Insert and Replace do: Search and Command never index the
// buffer directly and their cursor is always set to an existing match or
// left untouched (see action.execAppendCharToSearch), so the stricter bound
// never clips a position either mode would actually produce.
func isInsertLike(m mode.Mode) bool {
	return m == mode.Insert || m == mode.Replace
}

// ClampColumn brings p.Col into the legal range for p.Row under m without
// moving the row. Called at the start of actions that may follow a mode
// change.
func ClampColumn(b *buffer.Buffer, p Position, m mode.Mode) Position {
	max := MaxCol(b, p.Row, m)
	if p.Col > max {
		p.Col = max
	}
	if p.Col < 0 {
		p.Col = 0
	}
	return p
}

// ClampRow brings p.Row into the legal range under m, then clamps the
// column against the (possibly new) row.
func ClampRow(b *buffer.Buffer, p Position, m mode.Mode) Position {
	max := MaxRow(b, m)
	if p.Row > max {
		p.Row = max
	}
	if p.Row < 0 {
		p.Row = 0
	}
	return ClampColumn(b, p, m)
}
