package undo

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/arjunvelu/vimcore/internal/log"
)

// LogCaptureDiff writes a debug line summarizing the line-level diff
// between before and after, keyed under log.CatUndo. Called from
// Engine.Capture when logging is enabled; undo correctness never depends
// on it, since Undo/Redo restore full snapshots regardless. Uses
// diffmatchpatch the way a diffviewer's word-level diff would,
// generalized from word-level to line-level here since the editor core
// has no concept of "hunks" to diff around.
func LogCaptureDiff(before, after Snapshot) {
	dmp := diffmatchpatch.New()
	a := strings.Join(before.Lines, "\n")
	b := strings.Join(after.Lines, "\n")
	diffs := dmp.DiffMain(a, b, false)

	var added, removed int
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += strings.Count(d.Text, "\n") + boolToInt(d.Text != "")
		case diffmatchpatch.DiffDelete:
			removed += strings.Count(d.Text, "\n") + boolToInt(d.Text != "")
		}
	}
	log.Debug(log.CatUndo, "capture", "lines_added", added, "lines_removed", removed)
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
