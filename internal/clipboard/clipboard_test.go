package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemory_GetSetRoundTrip(t *testing.T) {
	c := New()
	assert.Equal(t, "", c.GetText())
	c.SetText("hello")
	assert.Equal(t, "hello", c.GetText())
}

func TestInMemory_LinewiseFlag(t *testing.T) {
	c := New()
	assert.False(t, c.IsLinewise())
	c.SetLinewise(true)
	assert.True(t, c.IsLinewise())
}

func TestInMemory_SatisfiesLinewiseClipboard(t *testing.T) {
	var _ LinewiseClipboard = New()
}

func TestSystemClipboard_SatisfiesLinewiseClipboard(t *testing.T) {
	var _ LinewiseClipboard = NewSystem()
}

func TestSystemClipboard_LinewiseFlagIsLocal(t *testing.T) {
	c := NewSystem()
	c.SetLinewise(true)
	assert.True(t, c.IsLinewise())
}
