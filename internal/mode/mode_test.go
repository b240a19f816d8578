package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	cases := map[Mode]string{
		Normal:     "NORMAL",
		Insert:     "INSERT",
		Visual:     "VISUAL",
		VisualLine: "VISUAL LINE",
		Search:     "SEARCH",
		Command:    "COMMAND",
		Replace:    "REPLACE",
		Mode(99):   "UNKNOWN",
	}
	for m, want := range cases {
		assert.Equal(t, want, m.String())
	}
}

func TestIsVisual(t *testing.T) {
	assert.True(t, Visual.IsVisual())
	assert.True(t, VisualLine.IsVisual())
	assert.False(t, Normal.IsVisual())
	assert.False(t, Insert.IsVisual())
}

func TestParse(t *testing.T) {
	assert.Equal(t, Insert, Parse("insert"))
	assert.Equal(t, Insert, Parse("INSERT"))
	assert.Equal(t, Normal, Parse("normal"))
	assert.Equal(t, Normal, Parse(""))
	assert.Equal(t, Normal, Parse("visual"))
}
