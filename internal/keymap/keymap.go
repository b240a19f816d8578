// Package keymap implements the mode-scoped key-sequence register and its
// ambiguity-resolution algorithm: a mode-partitioned map from literal key
// sequences to actions, resolved incrementally against a lookup buffer so
// multi-key bindings like "dd" can coexist with single-key bindings like
// "x".
package keymap

import (
	"strings"

	"github.com/arjunvelu/vimcore/internal/action"
	"github.com/arjunvelu/vimcore/internal/mode"
)

// Key is one normalized input event: Char carries the rune for KindChar,
// the others are parameterless.
type Key struct {
	Kind KeyKind
	Ch   rune
}

type KeyKind int

const (
	KindChar KeyKind = iota
	KindEnter
	KindEsc
	KindBackspace
	KindLeft
	KindRight
	KindUp
	KindDown
	KindOther
)

// String renders k the same way the register does internally, for
// logging and tracing call sites outside this package.
func (k Key) String() string {
	return k.token()
}

// token renders a Key as the flat-map's sequence alphabet: a printable
// rune for Char, or a bracketed name for named keys, so "<Esc>" can never
// collide with a literal character binding.
func (k Key) token() string {
	switch k.Kind {
	case KindChar:
		return string(k.Ch)
	case KindEnter:
		return "<Enter>"
	case KindEsc:
		return "<Esc>"
	case KindBackspace:
		return "<BS>"
	case KindLeft:
		return "<Left>"
	case KindRight:
		return "<Right>"
	case KindUp:
		return "<Up>"
	case KindDown:
		return "<Down>"
	default:
		return "<Other>"
	}
}

type entry struct {
	mode mode.Mode
	seq  string
}

// Register is a flat map from (mode, key-sequence) to Action plus a
// prefix scan: acceptable at the key-count a terminal editor's bindings
// ever reach, where a trie would only add indirection.
type Register struct {
	bindings map[entry]action.Action
	buffer   strings.Builder
}

// New returns an empty register.
func New() *Register {
	return &Register{bindings: make(map[entry]action.Action)}
}

// Bind registers seq (already-rendered tokens, e.g. via Keys) for mode m.
// A later Bind for the same (mode, seq) overwrites the earlier one.
func (r *Register) Bind(m mode.Mode, seq []Key, a action.Action) {
	r.bindings[entry{m, renderSeq(seq)}] = a
}

func renderSeq(seq []Key) string {
	var b strings.Builder
	for _, k := range seq {
		b.WriteString(k.token())
	}
	return b.String()
}

// Resolve runs the five-step ambiguity-resolution algorithm for key k
// under mode m against the register's lookup buffer. It returns
// (action, true, cleared) when a binding resolved, or (zero, false,
// cleared) otherwise;
// cleared reports whether the lookup buffer was reset (steps 3 and 4) as
// opposed to retained for the next key (step 5).
func (r *Register) Resolve(m mode.Mode, k Key) (action.Action, bool, bool) {
	r.buffer.WriteString(k.token())
	lookup := r.buffer.String()

	var candidates []string
	for e := range r.bindings {
		if e.mode != m {
			continue
		}
		if strings.HasPrefix(e.seq, lookup) {
			candidates = append(candidates, e.seq)
		}
	}

	switch len(candidates) {
	case 0:
		r.clear()
		return action.Action{}, false, true
	case 1:
		if candidates[0] == lookup {
			a := r.bindings[entry{m, lookup}]
			r.clear()
			return a, true, true
		}
		return action.Action{}, false, false
	default:
		if a, ok := r.bindings[entry{m, lookup}]; ok {
			r.clear()
			return a, true, true
		}
		return action.Action{}, false, false
	}
}

func (r *Register) clear() {
	r.buffer.Reset()
}

// Pending reports whether the lookup buffer currently holds an
// incomplete sequence.
func (r *Register) Pending() bool {
	return r.buffer.Len() > 0
}

// Keys is a small builder helper: Keys('d','d') renders a Bind sequence
// of Char keys without the caller hand-building a []Key slice one key at
// a time. Named keys such as Esc are not accepted here; they are passed
// as a []Key literal.
func Keys(chars ...rune) []Key {
	seq := make([]Key, len(chars))
	for i, ch := range chars {
		seq[i] = Key{Kind: KindChar, Ch: ch}
	}
	return seq
}
