package action

// execUndo and execRedo implement Undo/Redo: neither calls capture
// itself.
func execUndo(ctx *Context) {
	ctx.Undo.Undo(ctx.Buffer, ctx.Cursor, ctx.Mode)
}

func execRedo(ctx *Context) {
	ctx.Undo.Redo(ctx.Buffer, ctx.Cursor, ctx.Mode)
}
