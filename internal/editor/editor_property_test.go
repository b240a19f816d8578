package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/arjunvelu/vimcore/internal/cursor"
	"github.com/arjunvelu/vimcore/internal/keymap"
)

// alphabet is weighted toward the bound Normal/Visual keys so a
// property run actually exercises motions, operators, and mode
// switches instead of mostly falling through to character insertion.
const propertyAlphabet = "hjklwebxXdyvVioaORu/n:.,! "

func randomKey(t *rapid.T, label string) keymap.Key {
	kind := rapid.SampledFrom([]keymap.KeyKind{
		keymap.KindChar, keymap.KindChar, keymap.KindChar, keymap.KindChar,
		keymap.KindEsc, keymap.KindEnter, keymap.KindBackspace,
	}).Draw(t, label+"/kind")
	if kind != keymap.KindChar {
		return keymap.Key{Kind: kind}
	}
	ch := rapid.SampledFrom([]rune(propertyAlphabet)).Draw(t, label+"/ch")
	return keymap.Key{Kind: keymap.KindChar, Ch: ch}
}

func assertCursorInRange(t *rapid.T, s *State) {
	maxRow := cursor.MaxRow(s.Buffer, s.Mode)
	require.GreaterOrEqual(t, s.Cursor.Row, 0)
	require.LessOrEqual(t, s.Cursor.Row, maxRow)

	maxCol := cursor.MaxCol(s.Buffer, s.Cursor.Row, s.Mode)
	require.GreaterOrEqual(t, s.Cursor.Col, 0)
	require.LessOrEqual(t, s.Cursor.Col, maxCol)
}

func assertSelectionInRange(t *rapid.T, s *State) {
	if s.Selection.Value == nil {
		return
	}
	sel := *s.Selection.Value
	for _, p := range []cursor.Position{sel.Start, sel.End} {
		maxRow := cursor.MaxRow(s.Buffer, s.Mode)
		require.GreaterOrEqual(t, p.Row, 0)
		require.LessOrEqual(t, p.Row, maxRow)
		maxCol := cursor.MaxCol(s.Buffer, p.Row, s.Mode)
		require.GreaterOrEqual(t, p.Col, 0)
		require.LessOrEqual(t, p.Col, maxCol)
	}
	n := sel.Normalize()
	require.False(t, n.End.Less(n.Start))
}

// TestProperty_CursorAndSelectionStayInRange exercises invariants #1-#3:
// after every single action, the cursor (and, when present, both
// selection endpoints) stay within max_row/max_col for the active mode,
// and a selection's endpoints stay start<=end once normalized.
func TestProperty_CursorAndSelectionStayInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z \n]{0,40}`).Draw(t, "text")
		s := New(text)

		steps := rapid.IntRange(0, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			s.Handle(randomKey(t, "key"))
			assertCursorInRange(t, s)
			assertSelectionInRange(t, s)
		}
	})
}
