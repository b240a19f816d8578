package editor

import (
	"github.com/arjunvelu/vimcore/internal/action"
	"github.com/arjunvelu/vimcore/internal/keymap"
	"github.com/arjunvelu/vimcore/internal/mode"
)

// BindDefaults installs the baseline modal key bindings shared by every
// State. A host that wants a different layout can start from a fresh
// Register/PendingRegistry pair and bind its own.
func BindDefaults(reg *keymap.Register, pend *keymap.PendingRegistry) {
	bindNormal(reg)
	bindInsertLike(reg)
	bindVisual(reg)
	bindSearch(reg)
	bindCommand(reg)
	bindOperators(pend)
}

func bindNormal(reg *keymap.Register) {
	n := mode.Normal
	reg.Bind(n, keymap.Keys('h'), action.Action{Kind: action.KindMoveBackward, Count: 1})
	reg.Bind(n, keymap.Keys('l'), action.Action{Kind: action.KindMoveForward, Count: 1})
	reg.Bind(n, keymap.Keys('k'), action.Action{Kind: action.KindMoveUp, Count: 1})
	reg.Bind(n, keymap.Keys('j'), action.Action{Kind: action.KindMoveDown, Count: 1})
	reg.Bind(n, keymap.Keys('w'), action.Action{Kind: action.KindMoveWordForwardStart, Count: 1})
	reg.Bind(n, keymap.Keys('e'), action.Action{Kind: action.KindMoveWordForwardEnd, Count: 1})
	reg.Bind(n, keymap.Keys('b'), action.Action{Kind: action.KindMoveWordBackward, Count: 1})
	reg.Bind(n, keymap.Keys('0'), action.Action{Kind: action.KindMoveToStart})
	reg.Bind(n, keymap.Keys('^'), action.Action{Kind: action.KindMoveToFirst})
	reg.Bind(n, keymap.Keys('$'), action.Action{Kind: action.KindMoveToEnd})
	reg.Bind(n, keymap.Keys('g', 'g'), action.Action{Kind: action.KindMoveToFirstLine})
	reg.Bind(n, keymap.Keys('G'), action.Action{Kind: action.KindMoveToLastLine})

	reg.Bind(n, keymap.Keys('i'), action.Action{Kind: action.KindSwitchMode, Mode: mode.Insert})
	reg.Bind(n, keymap.Keys('a'), action.Action{Kind: action.KindAppend})
	reg.Bind(n, keymap.Keys('o'), action.Action{Kind: action.KindAppendNewline, Count: 1})
	reg.Bind(n, keymap.Keys('O'), action.Action{Kind: action.KindInsertNewline, Count: 1})
	reg.Bind(n, keymap.Keys('R'), action.Action{Kind: action.KindSwitchMode, Mode: mode.Replace})
	reg.Bind(n, keymap.Keys('v'), action.Action{Kind: action.KindSwitchMode, Mode: mode.Visual})
	reg.Bind(n, keymap.Keys('V'), action.Action{Kind: action.KindSwitchMode, Mode: mode.VisualLine})

	reg.Bind(n, keymap.Keys('x'), action.Action{Kind: action.KindRemoveChar, Count: 1})
	reg.Bind(n, keymap.Keys('X'), action.Action{Kind: action.KindDeleteChar, Count: 1})
	reg.Bind(n, keymap.Keys('p'), action.Action{Kind: action.KindPaste})

	reg.Bind(n, keymap.Keys('u'), action.Action{Kind: action.KindUndo})
	// Key models plain chars and named keys, not modifier combinations, so
	// ctrl-r (vim's conventional redo) has no token here; bound to 'U'
	// instead.
	reg.Bind(n, keymap.Keys('U'), action.Action{Kind: action.KindRedo})

	reg.Bind(n, keymap.Keys('/'), action.Action{Kind: action.KindStartSearch})
	reg.Bind(n, keymap.Keys('n'), action.Action{Kind: action.KindFindNext})
	reg.Bind(n, keymap.Keys('N'), action.Action{Kind: action.KindFindPrevious})

	reg.Bind(n, keymap.Keys(':'), action.Action{Kind: action.KindStartCommand})
}

func bindInsertLike(reg *keymap.Register) {
	for _, m := range []mode.Mode{mode.Insert, mode.Replace} {
		reg.Bind(m, []keymap.Key{{Kind: keymap.KindEsc}}, action.Action{Kind: action.KindSwitchMode, Mode: mode.Normal})
		reg.Bind(m, []keymap.Key{{Kind: keymap.KindEnter}}, action.Action{Kind: action.KindInsertChar, Ch: '\n'})
		reg.Bind(m, []keymap.Key{{Kind: keymap.KindBackspace}}, action.Action{Kind: action.KindDeleteChar, Count: 1})
	}
}

func bindVisual(reg *keymap.Register) {
	for _, m := range []mode.Mode{mode.Visual, mode.VisualLine} {
		reg.Bind(m, []keymap.Key{{Kind: keymap.KindEsc}}, action.Action{Kind: action.KindSwitchMode, Mode: mode.Normal})
		reg.Bind(m, keymap.Keys('h'), action.Action{Kind: action.KindMoveBackward, Count: 1})
		reg.Bind(m, keymap.Keys('l'), action.Action{Kind: action.KindMoveForward, Count: 1})
		reg.Bind(m, keymap.Keys('k'), action.Action{Kind: action.KindMoveUp, Count: 1})
		reg.Bind(m, keymap.Keys('j'), action.Action{Kind: action.KindMoveDown, Count: 1})
		reg.Bind(m, keymap.Keys('w'), action.Action{Kind: action.KindMoveWordForwardStart, Count: 1})
		reg.Bind(m, keymap.Keys('b'), action.Action{Kind: action.KindMoveWordBackward, Count: 1})
		reg.Bind(m, keymap.Keys('d'), action.Action{Kind: action.KindDeleteSelection})
		reg.Bind(m, keymap.Keys('y'), action.Action{Kind: action.KindCopySelection})
	}
}

func bindSearch(reg *keymap.Register) {
	s := mode.Search
	reg.Bind(s, []keymap.Key{{Kind: keymap.KindEsc}}, action.Action{Kind: action.KindStopSearch})
	reg.Bind(s, []keymap.Key{{Kind: keymap.KindEnter}}, action.Action{Kind: action.KindTriggerSearch})
	reg.Bind(s, []keymap.Key{{Kind: keymap.KindBackspace}}, action.Action{Kind: action.KindRemoveCharFromSearch})
}

func bindCommand(reg *keymap.Register) {
	c := mode.Command
	reg.Bind(c, []keymap.Key{{Kind: keymap.KindEsc}}, action.Action{Kind: action.KindStopCommand})
	reg.Bind(c, []keymap.Key{{Kind: keymap.KindEnter}}, action.Action{Kind: action.KindExecuteCommand})
	reg.Bind(c, []keymap.Key{{Kind: keymap.KindBackspace}}, action.Action{Kind: action.KindRemoveCharFromCommand})
}

// bindOperators installs the operator+motion combos composed from the
// catalog's visual-selection primitives, since the catalog has no
// dedicated "delete/yank up to a motion's endpoint" action: each combo
// enters a visual mode, runs the motion (which extends the selection
// per the standard visual-mode rule), and finishes with the
// corresponding selection action. This makes "dw"/"yw" inclusive of the
// motion's landing character, unlike vim's exclusive word-motion
// deletion — a deliberate simplification given the closed catalog.
func bindOperators(pend *keymap.PendingRegistry) {
	wordMotion := action.Action{Kind: action.KindMoveWordForwardStart, Count: 1}

	pend.BindCombo('d', 'w', action.Action{Kind: action.KindComposed, Actions: []action.Action{
		{Kind: action.KindSwitchMode, Mode: mode.Visual},
		wordMotion,
		{Kind: action.KindDeleteSelection},
	}})
	pend.BindCombo('y', 'w', action.Action{Kind: action.KindComposed, Actions: []action.Action{
		{Kind: action.KindSwitchMode, Mode: mode.Visual},
		wordMotion,
		{Kind: action.KindCopySelection},
	}})
	pend.BindCombo('c', 'w', action.Action{Kind: action.KindComposed, Actions: []action.Action{
		{Kind: action.KindSwitchMode, Mode: mode.Visual},
		wordMotion,
		{Kind: action.KindDeleteSelection},
		{Kind: action.KindSwitchMode, Mode: mode.Insert},
	}})

	lineSelect := []action.Action{
		{Kind: action.KindMoveToStart},
		{Kind: action.KindSwitchMode, Mode: mode.VisualLine},
		{Kind: action.KindMoveToEnd},
	}
	pend.BindCombo('d', 'd', action.Action{Kind: action.KindComposed, Actions: append(append([]action.Action{}, lineSelect...),
		action.Action{Kind: action.KindDeleteSelection})})
	pend.BindCombo('y', 'y', action.Action{Kind: action.KindComposed, Actions: append(append([]action.Action{}, lineSelect...),
		action.Action{Kind: action.KindCopySelection})})
}
