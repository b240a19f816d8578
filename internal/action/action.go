package action

import (
	"github.com/arjunvelu/vimcore/internal/log"
	"github.com/arjunvelu/vimcore/internal/mode"
)

// Kind names one variant of the closed Action Catalog. Strings (rather
// than a plain int enum) so an Action serializes directly to a
// `{action: <name>, payload: <value>}` tagged union.
type Kind string

const (
	KindSwitchMode Kind = "switch_mode"
	KindAppend     Kind = "append"

	KindMoveForward          Kind = "move_forward"
	KindMoveBackward         Kind = "move_backward"
	KindMoveUp               Kind = "move_up"
	KindMoveDown             Kind = "move_down"
	KindMoveWordForwardStart Kind = "move_word_forward_start"
	KindMoveWordForwardEnd   Kind = "move_word_forward_end"
	KindMoveWordBackward     Kind = "move_word_backward"
	KindMoveToStart          Kind = "move_to_start"
	KindMoveToFirst          Kind = "move_to_first"
	KindMoveToEnd            Kind = "move_to_end"
	KindMoveToFirstLine      Kind = "move_to_first_line"
	KindMoveToLastLine       Kind = "move_to_last_line"

	KindInsertChar     Kind = "insert_char"
	KindLineBreak      Kind = "line_break"
	KindAppendNewline  Kind = "append_newline"
	KindInsertNewline  Kind = "insert_newline"
	KindReplaceChar    Kind = "replace_char" // Replace mode

	KindRemoveChar      Kind = "remove_char"
	KindDeleteChar      Kind = "delete_char"
	KindDeleteLine      Kind = "delete_line"
	KindDeleteSelection Kind = "delete_selection"

	KindCopySelection Kind = "copy_selection"
	KindPaste         Kind = "paste"

	KindSelectBetween    Kind = "select_between"
	KindSelectTextObject Kind = "select_text_object"

	KindUndo Kind = "undo"
	KindRedo Kind = "redo"

	KindStartSearch          Kind = "start_search"
	KindAppendCharToSearch   Kind = "append_char_to_search"
	KindRemoveCharFromSearch Kind = "remove_char_from_search"
	KindTriggerSearch        Kind = "trigger_search"
	KindFindNext             Kind = "find_next"
	KindFindPrevious         Kind = "find_previous"
	KindStopSearch           Kind = "stop_search"

	// Command-line lifecycle, mirroring Search's.
	KindStartCommand          Kind = "start_command"
	KindAppendCharToCommand   Kind = "append_char_to_command"
	KindRemoveCharFromCommand Kind = "remove_char_from_command"
	KindExecuteCommand        Kind = "execute_command"
	KindStopCommand           Kind = "stop_command"

	KindComposed Kind = "composed"
	KindCustom   Kind = "custom"
)

// Action is one tagged-union instance of the catalog. Only the fields
// relevant to Kind are read by Execute; the rest are zero.
type Action struct {
	Kind Kind

	Count int  // repetition n; <= 0 is treated as 1
	Ch    rune // InsertChar, ReplaceChar, AppendCharToSearch/Command
	Mode  mode.Mode

	Pairs  []DelimPair // SelectBetween
	Object TextObject  // SelectTextObject
	Inner  bool        // SelectTextObject: inner vs around

	Input string // ExecuteCommand's full command-line input

	Actions []Action // Composed
	Custom  any      // Custom
}

func (a Action) n() int {
	if a.Count <= 0 {
		return 1
	}
	return a.Count
}

// Execute runs the action against ctx: every action is of the form
// execute(state), and actions that mutate call capture() first. When
// debug logging is enabled it first logs the dispatch (kind, cursor
// position, mode) under log.CatAction. It returns a HostAction and true
// when the action produced one to surface to the caller (Custom,
// ExecuteCommand, or a Composed containing either); otherwise (nil,
// false).
func (a Action) Execute(ctx *Context) (any, bool) {
	if log.Enabled() {
		log.Debug(log.CatAction, "dispatch",
			"kind", a.Kind, "row", ctx.Cursor.Row, "col", ctx.Cursor.Col, "mode", *ctx.Mode)
	}
	switch a.Kind {
	case KindSwitchMode:
		execSwitchMode(ctx, a.Mode)
	case KindAppend:
		execAppend(ctx)

	case KindMoveForward:
		execMoveForward(ctx, a.n())
	case KindMoveBackward:
		execMoveBackward(ctx, a.n())
	case KindMoveUp:
		execMoveUp(ctx, a.n())
	case KindMoveDown:
		execMoveDown(ctx, a.n())
	case KindMoveWordForwardStart:
		execMoveWordForwardStart(ctx, a.n())
	case KindMoveWordForwardEnd:
		execMoveWordForwardEnd(ctx, a.n())
	case KindMoveWordBackward:
		execMoveWordBackward(ctx, a.n())
	case KindMoveToStart:
		execMoveToStart(ctx)
	case KindMoveToFirst:
		execMoveToFirst(ctx)
	case KindMoveToEnd:
		execMoveToEnd(ctx)
	case KindMoveToFirstLine:
		execMoveToFirstLine(ctx)
	case KindMoveToLastLine:
		execMoveToLastLine(ctx)

	case KindInsertChar:
		execInsertChar(ctx, a.Ch)
	case KindLineBreak:
		execLineBreak(ctx, a.n())
	case KindAppendNewline:
		execAppendNewline(ctx, a.n())
	case KindInsertNewline:
		execInsertNewline(ctx, a.n())
	case KindReplaceChar:
		execReplaceChar(ctx, a.Ch)

	case KindRemoveChar:
		execRemoveChar(ctx, a.n())
	case KindDeleteChar:
		execDeleteChar(ctx, a.n())
	case KindDeleteLine:
		execDeleteLine(ctx, a.n())
	case KindDeleteSelection:
		execDeleteSelection(ctx)

	case KindCopySelection:
		execCopySelection(ctx)
	case KindPaste:
		execPaste(ctx)

	case KindSelectBetween:
		execSelectBetween(ctx, a.Pairs)
	case KindSelectTextObject:
		execSelectTextObject(ctx, a.Object, a.Inner)

	case KindUndo:
		execUndo(ctx)
	case KindRedo:
		execRedo(ctx)

	case KindStartSearch:
		execStartSearch(ctx)
	case KindAppendCharToSearch:
		execAppendCharToSearch(ctx, a.Ch)
	case KindRemoveCharFromSearch:
		execRemoveCharFromSearch(ctx)
	case KindTriggerSearch:
		execTriggerSearch(ctx)
	case KindFindNext:
		execFindNext(ctx)
	case KindFindPrevious:
		execFindPrevious(ctx)
	case KindStopSearch:
		execStopSearch(ctx)

	case KindStartCommand:
		execStartCommand(ctx)
	case KindAppendCharToCommand:
		execAppendCharToCommand(ctx, a.Ch)
	case KindRemoveCharFromCommand:
		execRemoveCharFromCommand(ctx)
	case KindExecuteCommand:
		return execExecuteCommand(ctx)
	case KindStopCommand:
		execStopCommand(ctx)

	case KindComposed:
		return execComposed(ctx, a.Actions)
	case KindCustom:
		return a.Custom, true
	}
	return nil, false
}
