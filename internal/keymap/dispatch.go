package keymap

import (
	"github.com/arjunvelu/vimcore/internal/action"
	"github.com/arjunvelu/vimcore/internal/mode"
)

// Dispatch resolves one key under the current mode, combining the
// sequence Register, the operator+motion PendingRegistry, and the
// fallback-to-character-insertion routing that Insert/Search/Command
// modes need when no bound sequence matches a plain character: in
// Insert mode, a key that does not form part of any bound sequence is
// routed to InsertChar.
//
// While an operator is armed, the next key is consumed entirely by the
// pending combo (it names the motion completing the operator, not a
// standalone Normal-mode binding) — an armed "d" followed by "w" fires
// the composed delete-word combo rather than the plain word motion "w"
// is otherwise bound to. Esc cancels an armed operator without falling
// through to the Register.
//
// It returns the Action to execute and true, or (zero, false) when the
// key only updated pending state (an armed operator, or a
// still-ambiguous sequence) and produced nothing to run yet.
func Dispatch(reg *Register, pend *PendingRegistry, m mode.Mode, k Key) (action.Action, bool) {
	if pend.Armed() {
		if k.Kind == KindEsc {
			pend.Reset()
			return action.Action{}, false
		}
		if k.Kind == KindChar {
			a, ok := pend.Feed(k.Ch)
			return a, ok
		}
		pend.Reset()
		return action.Action{}, false
	}

	if a, ok, cleared := reg.Resolve(m, k); ok {
		return a, true
	} else if !cleared {
		// sequence still ambiguous, wait for the next key
		return action.Action{}, false
	}

	if m == mode.Normal && k.Kind == KindChar {
		if a, ok := pend.Feed(k.Ch); ok {
			return a, true
		}
		return action.Action{}, false
	}

	if k.Kind != KindChar {
		return action.Action{}, false
	}

	switch m {
	case mode.Insert:
		return action.Action{Kind: action.KindInsertChar, Ch: k.Ch}, true
	case mode.Replace:
		return action.Action{Kind: action.KindReplaceChar, Ch: k.Ch}, true
	case mode.Search:
		return action.Action{Kind: action.KindAppendCharToSearch, Ch: k.Ch}, true
	case mode.Command:
		return action.Action{Kind: action.KindAppendCharToCommand, Ch: k.Ch}, true
	default:
		return action.Action{}, false
	}
}
