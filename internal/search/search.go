// Package search implements incremental in-buffer search: a literal,
// per-row substring search whose match set recomputes on every
// keystroke and whose cursor tracks find_first/find_next/find_previous.
package search

import (
	"github.com/arjunvelu/vimcore/internal/buffer"
	"github.com/arjunvelu/vimcore/internal/cursor"
)

// State holds one in-progress (or most recently completed) search.
type State struct {
	Pattern      string
	Matches      []cursor.Position
	CurrentIndex int // -1 when there is no current match
	StartCursor  cursor.Position
}

// New returns an empty, inactive search state.
func New() *State {
	return &State{CurrentIndex: -1}
}

// Start records the cursor position search began from and clears any
// previous pattern/matches.
func (s *State) Start(c cursor.Position) {
	s.StartCursor = c
	s.Pattern = ""
	s.Matches = nil
	s.CurrentIndex = -1
}

// PushChar appends ch to the pattern.
func (s *State) PushChar(ch rune) {
	s.Pattern += string(ch)
}

// RemoveChar removes the last rune of the pattern, if any.
func (s *State) RemoveChar() {
	if s.Pattern == "" {
		return
	}
	r := []rune(s.Pattern)
	s.Pattern = string(r[:len(r)-1])
}

// Trigger recomputes Matches as every literal, row-major occurrence of
// Pattern within a single row of b. An empty pattern yields no matches.
func (s *State) Trigger(b *buffer.Buffer) {
	s.Matches = nil
	if s.Pattern == "" {
		return
	}
	for row := 0; row < b.Len(); row++ {
		text := b.Row(row)
		runes := []rune(text)
		patternLen := len([]rune(s.Pattern))
		for col := 0; col+patternLen <= len(runes); col++ {
			if string(runes[col:col+patternLen]) == s.Pattern {
				s.Matches = append(s.Matches, cursor.Position{Row: row, Col: col})
			}
		}
	}
}

// FindFirst selects the first match at-or-after StartCursor in row-major
// order, wrapping to the earliest match if none qualifies. Returns false
// if there are no matches.
func (s *State) FindFirst() (cursor.Position, bool) {
	if len(s.Matches) == 0 {
		s.CurrentIndex = -1
		return cursor.Position{}, false
	}
	for i, m := range s.Matches {
		if !m.Less(s.StartCursor) {
			s.CurrentIndex = i
			return m, true
		}
	}
	s.CurrentIndex = 0
	return s.Matches[0], true
}

// FindNext advances CurrentIndex by one, cyclically. Returns false if
// there are no matches.
func (s *State) FindNext() (cursor.Position, bool) {
	if len(s.Matches) == 0 {
		return cursor.Position{}, false
	}
	if s.CurrentIndex < 0 {
		return s.FindFirst()
	}
	s.CurrentIndex = (s.CurrentIndex + 1) % len(s.Matches)
	return s.Matches[s.CurrentIndex], true
}

// FindPrevious retreats CurrentIndex by one, cyclically.
func (s *State) FindPrevious() (cursor.Position, bool) {
	if len(s.Matches) == 0 {
		return cursor.Position{}, false
	}
	if s.CurrentIndex < 0 {
		return s.FindFirst()
	}
	s.CurrentIndex = (s.CurrentIndex - 1 + len(s.Matches)) % len(s.Matches)
	return s.Matches[s.CurrentIndex], true
}

// Clear empties the pattern and matches. Callers wanting search-cancel
// semantics (restore cursor = StartCursor) read StartCursor before
// calling Clear.
func (s *State) Clear() {
	s.Pattern = ""
	s.Matches = nil
	s.CurrentIndex = -1
}
