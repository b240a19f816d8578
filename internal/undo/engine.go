// Package undo implements the snapshot-stack undo/redo engine: capture()
// pushes a full {lines, cursor, mode} snapshot before any mutation;
// undo()/redo() move between stacks restoring the snapshot verbatim,
// including cursor and mode.
package undo

import (
	"github.com/arjunvelu/vimcore/internal/buffer"
	"github.com/arjunvelu/vimcore/internal/cursor"
	"github.com/arjunvelu/vimcore/internal/log"
	"github.com/arjunvelu/vimcore/internal/mode"
)

// Snapshot is the undoable unit: the whole buffer plus cursor and mode.
type Snapshot struct {
	Lines  []string
	Cursor cursor.Position
	Mode   mode.Mode
}

func snapshotOf(b *buffer.Buffer, c cursor.Position, m mode.Mode) Snapshot {
	return Snapshot{Lines: b.Lines(), Cursor: c, Mode: m}
}

func (s Snapshot) restore(b *buffer.Buffer, c *cursor.Position, m *mode.Mode) {
	*b = *buffer.New(joinLines(s.Lines))
	*c = s.Cursor
	*m = s.Mode
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n" + l
	}
	return out
}

// Engine holds the undo and redo stacks as two separate slices, storing
// full buffer/cursor/mode snapshots instead of reversible commands.
type Engine struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int // 0 = unbounded
}

// New creates an empty engine. maxDepth bounds the undo stack with FIFO
// eviction; 0 means unbounded, the default.
func New(maxDepth int) *Engine {
	return &Engine{maxDepth: maxDepth}
}

// Capture pushes the current state onto the undo stack and clears the
// redo stack. MUST be called by every mutating action before it mutates.
// When debug logging is enabled, it also logs the line-level diff between
// this snapshot and the previous one, summarizing what the prior action
// changed.
func (e *Engine) Capture(b *buffer.Buffer, c cursor.Position, m mode.Mode) {
	snap := snapshotOf(b, c, m)
	if log.Enabled() && len(e.undoStack) > 0 {
		LogCaptureDiff(e.undoStack[len(e.undoStack)-1], snap)
	}
	e.undoStack = append(e.undoStack, snap)
	if e.maxDepth > 0 && len(e.undoStack) > e.maxDepth {
		e.undoStack = e.undoStack[len(e.undoStack)-e.maxDepth:]
	}
	e.redoStack = e.redoStack[:0]
}

// CanUndo reports whether Undo would have an effect.
func (e *Engine) CanUndo() bool { return len(e.undoStack) > 0 }

// CanRedo reports whether Redo would have an effect.
func (e *Engine) CanRedo() bool { return len(e.redoStack) > 0 }

// Undo pops the top undo snapshot, pushes the current state onto the redo
// stack, and restores the popped snapshot. A no-op on an empty stack.
func (e *Engine) Undo(b *buffer.Buffer, c *cursor.Position, m *mode.Mode) {
	if len(e.undoStack) == 0 {
		return
	}
	top := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]
	e.redoStack = append(e.redoStack, snapshotOf(b, *c, *m))
	top.restore(b, c, m)
}

// Redo is the symmetric inverse of Undo. A no-op on an empty redo stack.
func (e *Engine) Redo(b *buffer.Buffer, c *cursor.Position, m *mode.Mode) {
	if len(e.redoStack) == 0 {
		return
	}
	top := e.redoStack[len(e.redoStack)-1]
	e.redoStack = e.redoStack[:len(e.redoStack)-1]
	e.undoStack = append(e.undoStack, snapshotOf(b, *c, *m))
	top.restore(b, c, m)
}

// Clear resets both stacks to empty, e.g. when a host loads new content.
func (e *Engine) Clear() {
	e.undoStack = nil
	e.redoStack = nil
}

// Depth returns the current undo-stack length, mainly for tests/metrics.
func (e *Engine) Depth() int { return len(e.undoStack) }
