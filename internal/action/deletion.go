package action

import (
	"strings"

	"github.com/arjunvelu/vimcore/internal/cursor"
	"github.com/arjunvelu/vimcore/internal/mode"
)

// execRemoveChar implements RemoveChar(n): removes the character under
// the cursor n times. If the row empties, the column is clamped.
func execRemoveChar(ctx *Context, n int) {
	ctx.capture()
	row := ctx.Cursor.Row
	for i := 0; i < n; i++ {
		if _, ok := ctx.Buffer.RemoveChar(row, ctx.Cursor.Col); !ok {
			break
		}
	}
	ctx.clampColumn()
	ctx.Highlighter.Edit(row, ctx.Buffer.Row(row))
}

// execDeleteChar implements DeleteChar(n): removes the character
// immediately left of the cursor, n times; at column 0 with row > 0 it
// merges the row into the previous one.
func execDeleteChar(ctx *Context, n int) {
	ctx.capture()
	for i := 0; i < n; i++ {
		if ctx.Cursor.Col > 0 {
			ctx.Cursor.Col--
			ctx.Buffer.RemoveChar(ctx.Cursor.Row, ctx.Cursor.Col)
			ctx.Highlighter.Edit(ctx.Cursor.Row, ctx.Buffer.Row(ctx.Cursor.Row))
			continue
		}
		if ctx.Cursor.Row == 0 {
			break
		}
		curRow := ctx.Cursor.Row
		prevRow := curRow - 1
		prevLen := ctx.Buffer.LenCol(prevRow)
		curText := []rune(ctx.Buffer.Row(curRow))
		ctx.Buffer.RemoveRow(curRow)
		for j, ch := range curText {
			ctx.Buffer.InsertChar(prevRow, prevLen+j, ch)
		}
		ctx.Highlighter.RemoveLine(curRow)
		ctx.Highlighter.Edit(prevRow, ctx.Buffer.Row(prevRow))
		ctx.Cursor.Row = prevRow
		ctx.Cursor.Col = prevLen
	}
	ctx.clampColumn()
}

// execDeleteLine implements DeleteLine(n): removes n consecutive rows
// starting at the cursor row, clamping the cursor row to the last row
// and its column to 0.
func execDeleteLine(ctx *Context, n int) {
	ctx.capture()
	row := ctx.Cursor.Row
	for i := 0; i < n; i++ {
		if ctx.Buffer.Len() == 0 {
			break
		}
		ctx.Buffer.RemoveRow(row)
		ctx.Highlighter.RemoveLine(row)
	}
	maxRow := cursorMaxRow(ctx)
	if ctx.Cursor.Row > maxRow {
		ctx.Cursor.Row = maxRow
	}
	if ctx.Cursor.Row < 0 {
		ctx.Cursor.Row = 0
	}
	ctx.Cursor.Col = 0
}

// extractLines returns the full text of rows [startRow, endRow], joined
// with '\n'.
func extractLines(ctx *Context, startRow, endRow int) string {
	var lines []string
	for r := startRow; r <= endRow; r++ {
		lines = append(lines, ctx.Buffer.Row(r))
	}
	return strings.Join(lines, "\n")
}

// deleteLines removes rows [startRow, endRow] outright, matching
// linewise deletion's defining property: the rows disappear entirely
// rather than leaving an empty row behind the way a charwise deletion
// spanning the same text would.
func deleteLines(ctx *Context, startRow, endRow int) {
	for r := startRow; r <= endRow; r++ {
		if ctx.Buffer.Len() == 0 {
			break
		}
		ctx.Buffer.RemoveRow(startRow)
		ctx.Highlighter.RemoveLine(startRow)
	}
}

// extractRange returns the inclusive text spanned by [start, end] in
// row-major order, joined with '\n'.
func extractRange(ctx *Context, start, end cursor.Position) string {
	if start.Row == end.Row {
		runes := []rune(ctx.Buffer.Row(start.Row))
		from, to := clampIdx(start.Col, len(runes)), clampIdx(end.Col+1, len(runes))
		if to < from {
			to = from
		}
		return string(runes[from:to])
	}
	var lines []string
	first := []rune(ctx.Buffer.Row(start.Row))
	from := clampIdx(start.Col, len(first))
	lines = append(lines, string(first[from:]))
	for r := start.Row + 1; r < end.Row; r++ {
		lines = append(lines, ctx.Buffer.Row(r))
	}
	last := []rune(ctx.Buffer.Row(end.Row))
	to := clampIdx(end.Col+1, len(last))
	lines = append(lines, string(last[:to]))
	return strings.Join(lines, "\n")
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// deleteRange removes every character within [start, end] inclusive,
// merging the surviving prefix of start's row with the surviving suffix
// of end's row into a single row at start.Row.
func deleteRange(ctx *Context, start, end cursor.Position) {
	startRunes := []rune(ctx.Buffer.Row(start.Row))
	prefix := startRunes[:clampIdx(start.Col, len(startRunes))]
	endRunes := []rune(ctx.Buffer.Row(end.Row))
	suffix := endRunes[clampIdx(end.Col+1, len(endRunes)):]
	merged := string(prefix) + string(suffix)

	rowsSpanned := end.Row - start.Row + 1
	for i := 0; i < rowsSpanned; i++ {
		ctx.Buffer.RemoveRow(start.Row)
	}
	ctx.Buffer.InsertRow(start.Row, merged)

	for i := 0; i < rowsSpanned-1; i++ {
		ctx.Highlighter.RemoveLine(start.Row)
	}
	ctx.Highlighter.Edit(start.Row, merged)
}

// execDeleteSelection implements DeleteSelection: copies the selection
// into the clipboard, removes every character within it, clears the
// selection, and returns to Normal.
func execDeleteSelection(ctx *Context) {
	if ctx.Selection.Value == nil {
		return
	}
	ctx.capture()
	sel := ctx.Selection.Value.Normalize()
	linewise := *ctx.Mode == mode.VisualLine

	if linewise {
		text := extractLines(ctx, sel.Start.Row, sel.End.Row)
		ctx.Clipboard.SetText(text)
		if lw, ok := ctx.Clipboard.(interface{ SetLinewise(bool) }); ok {
			lw.SetLinewise(true)
		}
		deleteLines(ctx, sel.Start.Row, sel.End.Row)
	} else {
		text := extractRange(ctx, sel.Start, sel.End)
		ctx.Clipboard.SetText(text)
		if lw, ok := ctx.Clipboard.(interface{ SetLinewise(bool) }); ok {
			lw.SetLinewise(false)
		}
		deleteRange(ctx, sel.Start, sel.End)
	}

	ctx.Cursor.Row = sel.Start.Row
	if linewise {
		ctx.Cursor.Col = 0
	} else {
		ctx.Cursor.Col = sel.Start.Col
	}
	ctx.Selection.Value = nil
	*ctx.Mode = mode.Normal
	ctx.clampRow()
	ctx.clampColumn()
}
