package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/arjunvelu/vimcore/internal/buffer"
	"github.com/arjunvelu/vimcore/internal/cursor"
)

// literalOccurrences computes every row-major (row, col) at which pattern
// occurs in b, independently of the search package, as the reference
// oracle for the property below.
func literalOccurrences(b *buffer.Buffer, pattern string) []cursor.Position {
	var out []cursor.Position
	if pattern == "" {
		return out
	}
	patRunes := []rune(pattern)
	for row := 0; row < b.Len(); row++ {
		runes := []rune(b.Row(row))
		for col := 0; col+len(patRunes) <= len(runes); col++ {
			if string(runes[col:col+len(patRunes)]) == pattern {
				out = append(out, cursor.Position{Row: row, Col: col})
			}
		}
	}
	return out
}

// TestProperty_TriggerMatchesExactlyLiteralOccurrences verifies invariant
// #6: for any pattern and buffer, Trigger's Matches are exactly the
// literal, row-major occurrences of the pattern; an empty pattern yields
// no matches.
func TestProperty_TriggerMatchesExactlyLiteralOccurrences(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[ab \n]{0,25}`).Draw(t, "text")
		pattern := rapid.StringMatching(`[ab]{0,3}`).Draw(t, "pattern")

		b := buffer.New(text)
		s := New()
		s.Pattern = pattern
		s.Trigger(b)

		want := literalOccurrences(b, pattern)
		if want == nil {
			want = []cursor.Position{}
		}
		got := s.Matches
		if got == nil {
			got = []cursor.Position{}
		}
		require.Equal(t, want, got)

		if pattern == "" {
			require.Empty(t, s.Matches)
		}
	})
}

// TestProperty_TriggerNeverMatchesAcrossRowBoundary guards the "no
// interior newline" row-boundary rule: a pattern containing a newline
// can never appear in Matches, since Contains/Trigger both operate
// per-row.
func TestProperty_TriggerNeverMatchesAcrossRowBoundary(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[ab \n]{0,25}`).Draw(t, "text")
		pattern := rapid.StringMatching(`[ab]\n[ab]`).Draw(t, "pattern")

		b := buffer.New(text)
		s := New()
		s.Pattern = pattern
		s.Trigger(b)

		require.Empty(t, s.Matches)
		require.False(t, strings.Contains(b.Row(0), "\n"))
	})
}
