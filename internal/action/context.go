// Package action implements the closed Action Catalog: every editing
// operation as a tagged-union variant plus a single Execute dispatch,
// preferring a tagged union over trait-object-per-action dispatch to
// ease serialization.
package action

import (
	"github.com/arjunvelu/vimcore/internal/buffer"
	"github.com/arjunvelu/vimcore/internal/clipboard"
	"github.com/arjunvelu/vimcore/internal/cmdline"
	"github.com/arjunvelu/vimcore/internal/cursor"
	"github.com/arjunvelu/vimcore/internal/highlight"
	"github.com/arjunvelu/vimcore/internal/mode"
	"github.com/arjunvelu/vimcore/internal/search"
	"github.com/arjunvelu/vimcore/internal/undo"
)

// SelectionBox holds the current selection, or nil when there is none. It
// exists so Context can hand actions a stable handle that can be reset to
// nil (clearing the selection) without the editor aggregate losing track
// of where that field lives.
type SelectionBox struct {
	Value *cursor.Selection
}

// Context bundles every piece of state an action may read or mutate. The
// editor aggregate owns the concrete values; Context holds pointers (or,
// for interfaces, the value itself) so actions can be pure functions of
// (Context) without depending on the editor package, which would create
// an import cycle since the editor package depends on action.
type Context struct {
	Buffer      *buffer.Buffer
	Cursor      *cursor.Position
	Selection   *SelectionBox
	Mode        *mode.Mode
	Undo        *undo.Engine
	Clipboard   clipboard.Clipboard
	Search      *search.State
	Cmdline     *cmdline.State
	Highlighter highlight.Highlighter

	// PunctuationIsWord selects vim's word classification (punctuation is
	// its own word class, distinct from alphanumerics) for the word
	// motions, versus folding punctuation into whichever non-whitespace
	// run it sits in. Resolved from config.Config.WordBoundaryPunctuationIsWord.
	PunctuationIsWord bool
}

// capture snapshots state before a mutation; every mutating action must
// capture before mutating.
func (ctx *Context) capture() {
	if ctx.Undo != nil {
		ctx.Undo.Capture(ctx.Buffer, *ctx.Cursor, *ctx.Mode)
	}
}

// afterMotion updates selection.end when the active mode is a visual
// mode: after any motion, if the active mode is Visual, selection.end
// tracks the cursor.
func (ctx *Context) afterMotion() {
	if !ctx.Mode.IsVisual() {
		return
	}
	if ctx.Selection.Value == nil {
		ctx.Selection.Value = &cursor.Selection{Start: *ctx.Cursor, End: *ctx.Cursor}
		return
	}
	ctx.Selection.Value.End = *ctx.Cursor
}

func (ctx *Context) clampColumn() {
	*ctx.Cursor = cursor.ClampColumn(ctx.Buffer, *ctx.Cursor, *ctx.Mode)
}

func (ctx *Context) clampRow() {
	*ctx.Cursor = cursor.ClampRow(ctx.Buffer, *ctx.Cursor, *ctx.Mode)
}
