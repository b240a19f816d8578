// Package editor wires the buffer, cursor, mode, undo, clipboard, search,
// command-line, and highlighter components into one aggregate and
// exposes a single key-dispatch entry point, without the core ever
// importing a concrete UI host.
package editor

import (
	"github.com/google/uuid"

	"github.com/arjunvelu/vimcore/internal/action"
	"github.com/arjunvelu/vimcore/internal/buffer"
	"github.com/arjunvelu/vimcore/internal/clipboard"
	"github.com/arjunvelu/vimcore/internal/cmdline"
	"github.com/arjunvelu/vimcore/internal/cursor"
	"github.com/arjunvelu/vimcore/internal/highlight"
	"github.com/arjunvelu/vimcore/internal/keymap"
	"github.com/arjunvelu/vimcore/internal/mode"
	"github.com/arjunvelu/vimcore/internal/search"
	"github.com/arjunvelu/vimcore/internal/undo"
)

// State is one editor instance: every piece of state an Action needs to
// run, plus the registers that turn raw keys into Actions. ID lets a
// host that manages several instances (e.g. several open buffers)
// correlate log lines and trace spans back to a specific instance.
type State struct {
	ID uuid.UUID

	Buffer      *buffer.Buffer
	Cursor      cursor.Position
	Selection   action.SelectionBox
	Mode        mode.Mode
	Undo        *undo.Engine
	Clipboard   clipboard.Clipboard
	Search      *search.State
	Cmdline     *cmdline.State
	Highlighter highlight.Highlighter

	Keys    *keymap.Register
	Pending *keymap.PendingRegistry

	// PunctuationIsWord selects vim's word classification for the word
	// motions; see action.Context.PunctuationIsWord.
	PunctuationIsWord bool
}

// Option configures a new State at construction time.
type Option func(*State)

// WithClipboard overrides the default in-memory clipboard, e.g. with a
// SystemClipboard.
func WithClipboard(c clipboard.Clipboard) Option {
	return func(s *State) { s.Clipboard = c }
}

// WithHighlighter overrides the default no-op highlighter.
func WithHighlighter(h highlight.Highlighter) Option {
	return func(s *State) { s.Highlighter = h }
}

// WithUndoDepth bounds the undo stack (0 is unbounded).
func WithUndoDepth(depth int) Option {
	return func(s *State) { s.Undo = undo.New(depth) }
}

// WithMode overrides the mode a freshly constructed State starts in
// (almost always Normal; a host embedding the core as a plain text
// field may prefer an Insert-first experience).
func WithMode(m mode.Mode) Option {
	return func(s *State) { s.Mode = m }
}

// WithPunctuationAsWord sets whether word motions treat punctuation as its
// own word class (vim's default) rather than folding it into whatever
// non-whitespace run it sits in.
func WithPunctuationAsWord(enabled bool) Option {
	return func(s *State) { s.PunctuationIsWord = enabled }
}

// WithCommands installs a command-line registry (":w", ":q", etc, up to
// the host).
func WithCommands(commands []cmdline.Command) Option {
	return func(s *State) { s.Cmdline = cmdline.New(commands) }
}

// New constructs a State over the given initial text, in Normal mode,
// with the default key bindings installed.
func New(text string, opts ...Option) *State {
	s := &State{
		ID:                uuid.New(),
		Buffer:            buffer.New(text),
		Cursor:            cursor.Position{},
		Mode:              mode.Normal,
		Undo:              undo.New(0),
		Clipboard:         clipboard.New(),
		Search:            search.New(),
		Cmdline:           cmdline.New(nil),
		Highlighter:       highlight.Noop{},
		Keys:              keymap.New(),
		Pending:           keymap.NewPendingRegistry(),
		PunctuationIsWord: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	BindDefaults(s.Keys, s.Pending)
	return s
}

// context builds the action.Context view over this State's fields. Held
// as pointers so actions mutate the State in place.
func (s *State) context() *action.Context {
	return &action.Context{
		Buffer:            s.Buffer,
		Cursor:            &s.Cursor,
		Selection:         &s.Selection,
		Mode:              &s.Mode,
		Undo:              s.Undo,
		Clipboard:         s.Clipboard,
		Search:            s.Search,
		Cmdline:           s.Cmdline,
		Highlighter:       s.Highlighter,
		PunctuationIsWord: s.PunctuationIsWord,
	}
}
