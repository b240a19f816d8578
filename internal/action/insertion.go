package action

import "github.com/arjunvelu/vimcore/internal/mode"

// execInsertChar implements InsertChar(ch): a newline routes to
// line-break logic; otherwise the rune is inserted at the cursor and
// the cursor advances by one.
func execInsertChar(ctx *Context, ch rune) {
	if ch == '\n' {
		execLineBreak(ctx, 1)
		return
	}
	ctx.capture()
	row, col := ctx.Cursor.Row, ctx.Cursor.Col
	ctx.Buffer.InsertChar(row, col, ch)
	ctx.Cursor.Col++
	ctx.Highlighter.Edit(row, ctx.Buffer.Row(row))
}

// execLineBreak implements LineBreak(n): splits the current row at the
// cursor, inserts n line breaks, and positions the cursor at the start
// of the first new row. Notifications fire edit(row) on the original row,
// then insert_line for each new row in order.
func execLineBreak(ctx *Context, n int) {
	ctx.capture()
	if ctx.Buffer.Len() == 0 {
		ctx.Buffer.InsertRow(0, "")
		ctx.Highlighter.InsertLine(0, "")
	}
	row, col := ctx.Cursor.Row, ctx.Cursor.Col
	tail := ctx.Buffer.SplitAt(row, col)
	insertAt := row + 1

	for i := 0; i < n-1; i++ {
		ctx.Buffer.InsertRow(insertAt+i, "")
	}
	tailLines := tail.Lines()
	for i, line := range tailLines {
		ctx.Buffer.InsertRow(insertAt+(n-1)+i, line)
	}

	ctx.Highlighter.Edit(row, ctx.Buffer.Row(row))
	for i := 0; i < n-1; i++ {
		ctx.Highlighter.InsertLine(insertAt+i, "")
	}
	for i, line := range tailLines {
		ctx.Highlighter.InsertLine(insertAt+(n-1)+i, line)
	}

	ctx.Cursor.Row = insertAt
	ctx.Cursor.Col = 0
}

// execAppendNewline implements AppendNewline(n): inserts n empty rows
// after the current row, positions the cursor at column 0 of the first
// new row, and enters Insert.
func execAppendNewline(ctx *Context, n int) {
	ctx.capture()
	at := ctx.Cursor.Row + 1
	if at > ctx.Buffer.Len() {
		at = ctx.Buffer.Len()
	}
	for i := 0; i < n; i++ {
		ctx.Buffer.InsertRow(at+i, "")
		ctx.Highlighter.InsertLine(at+i, "")
	}
	ctx.Cursor.Row = at
	ctx.Cursor.Col = 0
	*ctx.Mode = mode.Insert
}

// execInsertNewline implements InsertNewline(n): like AppendNewline but
// the new rows are inserted before the current row.
func execInsertNewline(ctx *Context, n int) {
	ctx.capture()
	row := ctx.Cursor.Row
	for i := 0; i < n; i++ {
		ctx.Buffer.InsertRow(row+i, "")
		ctx.Highlighter.InsertLine(row+i, "")
	}
	ctx.Cursor.Row = row
	ctx.Cursor.Col = 0
	*ctx.Mode = mode.Insert
}

// execReplaceChar implements ReplaceChar(ch): overwrites the character
// under the cursor and advances the column. At end of a row (no character
// to overwrite) it behaves like an insert, extending the row, matching
// how Replace mode's single-character overwrite falls back at end-of-line.
func execReplaceChar(ctx *Context, ch rune) {
	ctx.capture()
	row, col := ctx.Cursor.Row, ctx.Cursor.Col
	ctx.Buffer.RemoveChar(row, col)
	ctx.Buffer.InsertChar(row, col, ch)
	ctx.Cursor.Col++
	ctx.Highlighter.Edit(row, ctx.Buffer.Row(row))
}
