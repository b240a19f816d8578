package action

import "github.com/arjunvelu/vimcore/internal/cursor"

func execMoveForward(ctx *Context, n int) {
	max := ctx.Cursor.Col + n
	limit := cursorMaxCol(ctx)
	if max > limit {
		max = limit
	}
	ctx.Cursor.Col = max
	ctx.afterMotion()
}

func execMoveBackward(ctx *Context, n int) {
	col := ctx.Cursor.Col - n
	if col < 0 {
		col = 0
	}
	ctx.Cursor.Col = col
	ctx.afterMotion()
}

func execMoveUp(ctx *Context, n int) {
	row := ctx.Cursor.Row - n
	if row < 0 {
		row = 0
	}
	ctx.Cursor.Row = row
	ctx.clampColumn()
	ctx.afterMotion()
}

func execMoveDown(ctx *Context, n int) {
	row := ctx.Cursor.Row + n
	limit := cursorMaxRow(ctx)
	if row > limit {
		row = limit
	}
	ctx.Cursor.Row = row
	ctx.clampColumn()
	ctx.afterMotion()
}

func execMoveWordForwardStart(ctx *Context, n int) {
	*ctx.Cursor = moveWordForwardStart(ctx.Buffer, *ctx.Cursor, n, ctx.PunctuationIsWord)
	ctx.afterMotion()
}

func execMoveWordForwardEnd(ctx *Context, n int) {
	*ctx.Cursor = moveWordForwardEnd(ctx.Buffer, *ctx.Cursor, n, ctx.PunctuationIsWord)
	ctx.afterMotion()
}

func execMoveWordBackward(ctx *Context, n int) {
	*ctx.Cursor = moveWordBackward(ctx.Buffer, *ctx.Cursor, n, ctx.PunctuationIsWord)
	ctx.afterMotion()
}

func execMoveToStart(ctx *Context) {
	ctx.Cursor.Col = 0
	ctx.afterMotion()
}

func execMoveToFirst(ctx *Context) {
	ctx.Cursor.Col = moveToFirst(ctx.Buffer, ctx.Cursor.Row)
	ctx.afterMotion()
}

func execMoveToEnd(ctx *Context) {
	ctx.Cursor.Col = cursorMaxCol(ctx)
	ctx.afterMotion()
}

func execMoveToFirstLine(ctx *Context) {
	ctx.Cursor.Row = 0
	ctx.Cursor.Col = 0
	ctx.afterMotion()
}

func execMoveToLastLine(ctx *Context) {
	ctx.Cursor.Row = cursorMaxRow(ctx)
	ctx.Cursor.Col = 0
	ctx.afterMotion()
}

func cursorMaxCol(ctx *Context) int {
	return cursor.MaxCol(ctx.Buffer, ctx.Cursor.Row, *ctx.Mode)
}

func cursorMaxRow(ctx *Context) int {
	return cursor.MaxRow(ctx.Buffer, *ctx.Mode)
}
