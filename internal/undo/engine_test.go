package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunvelu/vimcore/internal/buffer"
	"github.com/arjunvelu/vimcore/internal/cursor"
	"github.com/arjunvelu/vimcore/internal/log"
	"github.com/arjunvelu/vimcore/internal/mode"
)

func TestCapture_ClearsRedoStack(t *testing.T) {
	e := New(0)
	b := buffer.New("a")
	c := cursor.Position{}
	m := mode.Normal

	e.Capture(b, c, m)
	b.InsertChar(0, 1, 'b')
	e.Undo(b, &c, &m)
	require.True(t, e.CanRedo())

	e.Capture(b, c, m)
	assert.False(t, e.CanRedo())
}

func TestUndo_IsLeftInverseOfCapture(t *testing.T) {
	e := New(0)
	b := buffer.New("Hello World!\n\n123.")
	c := cursor.Position{Row: 0, Col: 5}
	m := mode.Normal

	before := b.Text()
	e.Capture(b, c, m)
	b.RemoveChar(0, 5)

	e.Undo(b, &c, &m)
	assert.Equal(t, before, b.Text())
	assert.Equal(t, cursor.Position{Row: 0, Col: 5}, c)
	assert.Equal(t, mode.Normal, m)
}

func TestRedo_RestoresPostActionState(t *testing.T) {
	e := New(0)
	b := buffer.New("abc")
	c := cursor.Position{Row: 0, Col: 0}
	m := mode.Normal

	e.Capture(b, c, m)
	b.RemoveChar(0, 0)
	afterText := b.Text()

	e.Undo(b, &c, &m)
	e.Redo(b, &c, &m)
	assert.Equal(t, afterText, b.Text())
}

func TestUndo_EmptyStackIsNoop(t *testing.T) {
	e := New(0)
	b := buffer.New("abc")
	c := cursor.Position{}
	m := mode.Normal
	e.Undo(b, &c, &m)
	assert.Equal(t, "abc", b.Text())
	assert.False(t, e.CanUndo())
}

func TestRedo_EmptyStackIsNoop(t *testing.T) {
	e := New(0)
	b := buffer.New("abc")
	c := cursor.Position{}
	m := mode.Normal
	e.Redo(b, &c, &m)
	assert.Equal(t, "abc", b.Text())
}

func TestCapture_BoundedDepthEvictsOldest(t *testing.T) {
	e := New(2)
	b := buffer.New("abc")
	c := cursor.Position{}
	m := mode.Normal

	e.Capture(b, c, m) // snapshot "abc"
	b.InsertChar(0, 0, '1')
	e.Capture(b, c, m) // snapshot "1abc"
	b.InsertChar(0, 0, '2')
	e.Capture(b, c, m) // snapshot "21abc" — evicts "abc"
	b.InsertChar(0, 0, '3')

	assert.Equal(t, 2, e.Depth())
	e.Undo(b, &c, &m)
	e.Undo(b, &c, &m)
	// Only two captures remain; buffer should now read "1abc", not "abc".
	assert.Equal(t, "1abc", b.Text())
}

func TestClear_ResetsBothStacks(t *testing.T) {
	e := New(0)
	b := buffer.New("abc")
	c := cursor.Position{}
	m := mode.Normal
	e.Capture(b, c, m)
	e.Clear()
	assert.False(t, e.CanUndo())
	assert.False(t, e.CanRedo())
}

func TestLogCaptureDiff_DoesNotPanic(t *testing.T) {
	before := Snapshot{Lines: []string{"a", "b"}}
	after := Snapshot{Lines: []string{"a", "bc", "d"}}
	assert.NotPanics(t, func() { LogCaptureDiff(before, after) })
}

// TestCapture_LogsDiffWhenLoggingEnabled exercises the one production call
// site of LogCaptureDiff: a second Capture, with logging enabled, must not
// panic diffing against the first snapshot.
func TestCapture_LogsDiffWhenLoggingEnabled(t *testing.T) {
	log.InitDiscard()
	e := New(0)
	b := buffer.New("a")
	c := cursor.Position{}
	m := mode.Normal

	e.Capture(b, c, m)
	b.InsertChar(0, 1, 'b')
	assert.NotPanics(t, func() { e.Capture(b, c, m) })
}
