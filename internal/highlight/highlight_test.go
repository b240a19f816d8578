package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoop_SatisfiesInterface(t *testing.T) {
	var _ Highlighter = Noop{}
}

func TestRecorder_RecordsInOrder(t *testing.T) {
	r := NewRecorder()
	var _ Highlighter = r

	r.Edit(0, "ab")
	r.InsertLine(1, "cd")
	r.RemoveLine(2)
	r.Append("ef")

	assert.Equal(t, []Event{
		{Kind: "edit", Row: 0, RowText: "ab"},
		{Kind: "insert_line", Row: 1, RowText: "cd"},
		{Kind: "remove_line", Row: 2},
		{Kind: "append", RowText: "ef"},
	}, r.Events)
}
