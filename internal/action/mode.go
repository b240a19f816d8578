package action

import (
	"github.com/arjunvelu/vimcore/internal/cursor"
	"github.com/arjunvelu/vimcore/internal/mode"
)

// execSwitchMode implements SwitchMode(m): sets mode first so the column
// clamp that follows uses the target mode's bound (e.g. pulling the
// column back from Insert's end-of-line to Normal's), then resets
// selection on entering Normal or starts a fresh point selection on
// entering a visual mode.
func execSwitchMode(ctx *Context, target mode.Mode) {
	*ctx.Mode = target
	ctx.clampColumn()
	switch {
	case target == mode.Normal:
		ctx.Selection.Value = nil
	case target.IsVisual():
		ctx.Selection.Value = &cursor.Selection{Start: *ctx.Cursor, End: *ctx.Cursor}
	}
}

// execAppend implements Append = SwitchMode(Insert) then MoveForward(1).
func execAppend(ctx *Context) {
	execSwitchMode(ctx, mode.Insert)
	execMoveForward(ctx, 1)
}
