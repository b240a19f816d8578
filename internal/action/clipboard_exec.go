package action

import (
	"strings"

	"github.com/arjunvelu/vimcore/internal/cursor"
	"github.com/arjunvelu/vimcore/internal/mode"
)

// execCopySelection implements CopySelection: copies the selection's
// text to the clipboard, returns to Normal, clears the selection.
func execCopySelection(ctx *Context) {
	if ctx.Selection.Value == nil {
		return
	}
	sel := ctx.Selection.Value.Normalize()
	linewise := *ctx.Mode == mode.VisualLine

	var text string
	if linewise {
		text = extractLines(ctx, sel.Start.Row, sel.End.Row)
	} else {
		text = extractRange(ctx, sel.Start, sel.End)
	}
	ctx.Clipboard.SetText(text)
	if lw, ok := ctx.Clipboard.(interface{ SetLinewise(bool) }); ok {
		lw.SetLinewise(linewise)
	}
	ctx.Selection.Value = nil
	*ctx.Mode = mode.Normal
}

// insertTextAt inserts text (which may contain embedded newlines) at pos
// and returns the position of the LAST inserted character: paste lands
// the cursor on the final pasted rune rather than one past it.
func insertTextAt(ctx *Context, pos cursor.Position, text string) cursor.Position {
	if text == "" {
		return pos
	}
	lines := strings.Split(text, "\n")
	row, col := pos.Row, pos.Col

	if len(lines) == 1 {
		for _, ch := range lines[0] {
			ctx.Buffer.InsertChar(row, col, ch)
			col++
		}
		ctx.Highlighter.Edit(row, ctx.Buffer.Row(row))
		return cursor.Position{Row: row, Col: col - 1}
	}

	tail := ctx.Buffer.SplitAt(row, col)
	for _, ch := range lines[0] {
		ctx.Buffer.InsertChar(row, col, ch)
		col++
	}
	ctx.Highlighter.Edit(row, ctx.Buffer.Row(row))

	insertAt := row + 1
	for i := 1; i < len(lines)-1; i++ {
		ctx.Buffer.InsertRow(insertAt, lines[i])
		ctx.Highlighter.InsertLine(insertAt, lines[i])
		insertAt++
	}

	lastLineText := lines[len(lines)-1]
	tailLines := tail.Lines()
	combined := lastLineText + tailLines[0]
	ctx.Buffer.InsertRow(insertAt, combined)
	ctx.Highlighter.InsertLine(insertAt, combined)

	endCol := len([]rune(lastLineText)) - 1
	if endCol < 0 {
		endCol = 0
	}
	endPos := cursor.Position{Row: insertAt, Col: endCol}

	for i := 1; i < len(tailLines); i++ {
		ctx.Buffer.InsertRow(insertAt+i, tailLines[i])
		ctx.Highlighter.InsertLine(insertAt+i, tailLines[i])
	}
	return endPos
}

// execPaste implements Paste: captures undo, clamps, deletes the current
// selection if any, then inserts the clipboard text either at the
// resulting cursor (selection was present) or after the cursor
// (no selection) — or, for a linewise register, as whole new lines.
func execPaste(ctx *Context) {
	ctx.capture()
	ctx.clampColumn()

	hadSelection := ctx.Selection.Value != nil
	if hadSelection {
		sel := ctx.Selection.Value.Normalize()
		deleteRange(ctx, sel.Start, sel.End)
		ctx.Cursor.Row = sel.Start.Row
		ctx.Cursor.Col = sel.Start.Col
		ctx.Selection.Value = nil
	}

	text := ctx.Clipboard.GetText()
	linewise := false
	if lw, ok := ctx.Clipboard.(interface{ IsLinewise() bool }); ok {
		linewise = lw.IsLinewise()
	}

	switch {
	case linewise && !hadSelection:
		row := ctx.Cursor.Row
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			ctx.Buffer.InsertRow(row+1+i, line)
			ctx.Highlighter.InsertLine(row+1+i, line)
		}
		ctx.Cursor.Row = row + 1
		ctx.Cursor.Col = 0
	case hadSelection:
		*ctx.Cursor = insertTextAt(ctx, *ctx.Cursor, text)
	default:
		insertPos := cursor.Position{Row: ctx.Cursor.Row, Col: ctx.Cursor.Col + 1}
		*ctx.Cursor = insertTextAt(ctx, insertPos, text)
	}

	*ctx.Mode = mode.Normal
}
