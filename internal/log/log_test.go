package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesEntries(t *testing.T) {
	reset()
	dir := t.TempDir()
	cleanup, err := Init(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	defer cleanup()

	Debug(CatAction, "dispatch", "kind", "MoveForward")
	Info(CatKeymap, "resolved")

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] [action] dispatch kind=MoveForward")
	assert.Contains(t, string(data), "[INFO] [keymap] resolved")
}

func TestSetMinLevel_FiltersBelowThreshold(t *testing.T) {
	reset()
	InitDiscard()
	SetMinLevel(LevelWarn)

	// No assertion on output possible without a writer hook; this exercises
	// the filter path without panicking and without a subscriber deadlock.
	Debug(CatBuffer, "should be filtered")
	Warn(CatBuffer, "should pass")
}

func TestSetEnabled_Toggle(t *testing.T) {
	reset()
	InitDiscard()
	SetEnabled(false)
	Debug(CatUndo, "dropped while disabled")
	SetEnabled(true)
	Debug(CatUndo, "delivered")
}
