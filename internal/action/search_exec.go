package action

import "github.com/arjunvelu/vimcore/internal/mode"

// execStartSearch implements StartSearch: enters Search mode and records
// start_cursor.
func execStartSearch(ctx *Context) {
	ctx.Search.Start(*ctx.Cursor)
	*ctx.Mode = mode.Search
}

// execAppendCharToSearch implements AppendCharToSearch(ch): updates the
// pattern, re-runs trigger_search, and moves the cursor to find_first if
// any match exists.
func execAppendCharToSearch(ctx *Context, ch rune) {
	ctx.Search.PushChar(ch)
	ctx.Search.Trigger(ctx.Buffer)
	if pos, ok := ctx.Search.FindFirst(); ok {
		*ctx.Cursor = pos
	}
}

// execRemoveCharFromSearch implements RemoveCharFromSearch, the inverse
// of AppendCharToSearch.
func execRemoveCharFromSearch(ctx *Context) {
	ctx.Search.RemoveChar()
	ctx.Search.Trigger(ctx.Buffer)
	if pos, ok := ctx.Search.FindFirst(); ok {
		*ctx.Cursor = pos
	}
}

// execTriggerSearch implements TriggerSearch: returns to Normal and
// moves the cursor to the first match.
func execTriggerSearch(ctx *Context) {
	ctx.Search.Trigger(ctx.Buffer)
	if pos, ok := ctx.Search.FindFirst(); ok {
		*ctx.Cursor = pos
	}
	*ctx.Mode = mode.Normal
}

// execFindNext implements FindNext: returns to Normal and moves the
// cursor to the next match, cyclically.
func execFindNext(ctx *Context) {
	ctx.Search.Trigger(ctx.Buffer)
	if pos, ok := ctx.Search.FindNext(); ok {
		*ctx.Cursor = pos
	}
	*ctx.Mode = mode.Normal
}

// execFindPrevious implements FindPrevious, the cyclic inverse of
// FindNext.
func execFindPrevious(ctx *Context) {
	ctx.Search.Trigger(ctx.Buffer)
	if pos, ok := ctx.Search.FindPrevious(); ok {
		*ctx.Cursor = pos
	}
	*ctx.Mode = mode.Normal
}

// execStopSearch implements StopSearch: returns to Normal, clears search
// state, and restores the cursor to start_cursor.
func execStopSearch(ctx *Context) {
	*ctx.Cursor = ctx.Search.StartCursor
	ctx.Search.Clear()
	*ctx.Mode = mode.Normal
}
