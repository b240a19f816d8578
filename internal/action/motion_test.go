package action

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arjunvelu/vimcore/internal/buffer"
	"github.com/arjunvelu/vimcore/internal/cursor"
)

func TestMoveWordForwardStart_SkipsCurrentWordAndWhitespace(t *testing.T) {
	b := buffer.New("foo bar baz")
	p := moveWordForwardStart(b, cursor.Position{Row: 0, Col: 0}, 1, true)
	assert.Equal(t, cursor.Position{Row: 0, Col: 4}, p)
}

func TestMoveWordForwardStart_CrossesLineEnd(t *testing.T) {
	b := buffer.New("foo\nbar")
	p := moveWordForwardStart(b, cursor.Position{Row: 0, Col: 0}, 1, true)
	assert.Equal(t, cursor.Position{Row: 1, Col: 0}, p)
}

func TestMoveWordForwardStart_SaturatesAtEnd(t *testing.T) {
	b := buffer.New("foo")
	p := moveWordForwardStart(b, cursor.Position{Row: 0, Col: 0}, 5, true)
	assert.Equal(t, cursor.Position{Row: 0, Col: 2}, p)
}

func TestMoveWordForwardStart_PunctuationIsItsOwnWordWhenEnabled(t *testing.T) {
	b := buffer.New("foo.bar baz")
	p := moveWordForwardStart(b, cursor.Position{Row: 0, Col: 0}, 1, true)
	assert.Equal(t, cursor.Position{Row: 0, Col: 3}, p)
}

func TestMoveWordForwardStart_PunctuationFoldedIntoWordWhenDisabled(t *testing.T) {
	b := buffer.New("foo.bar baz")
	p := moveWordForwardStart(b, cursor.Position{Row: 0, Col: 0}, 1, false)
	assert.Equal(t, cursor.Position{Row: 0, Col: 8}, p)
}

func TestMoveWordForwardEnd_AdvancesToCurrentWordEndFirst(t *testing.T) {
	b := buffer.New("foo bar")
	p := moveWordForwardEnd(b, cursor.Position{Row: 0, Col: 0}, 1, true)
	assert.Equal(t, cursor.Position{Row: 0, Col: 2}, p)
}

func TestMoveWordForwardEnd_FromWordEndAdvancesToNextWordEnd(t *testing.T) {
	b := buffer.New("foo bar")
	p := moveWordForwardEnd(b, cursor.Position{Row: 0, Col: 2}, 1, true)
	assert.Equal(t, cursor.Position{Row: 0, Col: 6}, p)
}

func TestMoveWordBackward_ReturnsToWordStart(t *testing.T) {
	b := buffer.New("foo bar baz")
	p := moveWordBackward(b, cursor.Position{Row: 0, Col: 8}, 1, true)
	assert.Equal(t, cursor.Position{Row: 0, Col: 4}, p)
}

func TestMoveWordBackward_SaturatesAtStart(t *testing.T) {
	b := buffer.New("foo bar")
	p := moveWordBackward(b, cursor.Position{Row: 0, Col: 0}, 5, true)
	assert.Equal(t, cursor.Position{Row: 0, Col: 0}, p)
}

func TestMoveToFirst_SkipsLeadingWhitespace(t *testing.T) {
	b := buffer.New("   hi")
	assert.Equal(t, 3, moveToFirst(b, 0))
}

func TestMoveToFirst_AllWhitespaceReturnsZero(t *testing.T) {
	b := buffer.New("    ")
	assert.Equal(t, 0, moveToFirst(b, 0))
}
