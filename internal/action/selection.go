package action

import (
	"unicode"

	"github.com/arjunvelu/vimcore/internal/cursor"
	"github.com/arjunvelu/vimcore/internal/mode"
)

// DelimPair is one (open, close) delimiter pair consulted by
// SelectBetween.
type DelimPair struct {
	Open  rune
	Close rune
}

func isOpenDelim(pairs []DelimPair, ch rune) bool {
	for _, p := range pairs {
		if p.Open == ch {
			return true
		}
	}
	return false
}

func isCloseDelim(pairs []DelimPair, ch rune) bool {
	for _, p := range pairs {
		if p.Close == ch {
			return true
		}
	}
	return false
}

// execSelectBetween implements SelectBetween(pairs): scans forward from
// the cursor for the first open delimiter, recording the
// position just before it as `end`; scans backward for the first close
// delimiter, recording the position just after it as `start`. If both
// are found, sets the selection and enters Visual.
func execSelectBetween(ctx *Context, pairs []DelimPair) {
	flat := flatten(ctx.Buffer)
	if len(flat) == 0 {
		return
	}
	idx := indexOf(flat, *ctx.Cursor)
	if idx >= len(flat) {
		idx = len(flat) - 1
	}

	openIdx := -1
	for i := idx; i < len(flat); i++ {
		if isOpenDelim(pairs, flat[i].ch) {
			openIdx = i
			break
		}
	}
	if openIdx < 0 {
		return
	}

	closeIdx := -1
	for i := idx; i >= 0; i-- {
		if isCloseDelim(pairs, flat[i].ch) {
			closeIdx = i
			break
		}
	}
	if closeIdx < 0 {
		return
	}

	var endPos, startPos cursor.Position
	if openIdx == 0 {
		endPos = flat[0].pos
	} else {
		endPos = flat[openIdx-1].pos
	}
	if closeIdx == len(flat)-1 {
		startPos = flat[len(flat)-1].pos
	} else {
		startPos = flat[closeIdx+1].pos
	}

	ctx.Selection.Value = &cursor.Selection{Start: startPos, End: endPos}
	*ctx.Mode = mode.Visual
}

// TextObject names a text-object kind: word, quoted string, or a
// bracket pair.
type TextObject string

const (
	ObjWord        TextObject = "word"
	ObjDoubleQuote TextObject = "dquote"
	ObjSingleQuote TextObject = "squote"
	ObjParen       TextObject = "paren"
	ObjBracket     TextObject = "bracket"
	ObjBrace       TextObject = "brace"
)

// execSelectTextObject implements SelectTextObject(object, inner), a
// Selection-family action generalizing SelectBetween to word and
// quoted-string objects. On a match it sets the selection and enters
// Visual; on no match it is a no-op.
func execSelectTextObject(ctx *Context, obj TextObject, inner bool) {
	var start, end cursor.Position
	var ok bool

	switch obj {
	case ObjWord:
		start, end, ok = wordObjectRange(ctx, inner)
	case ObjDoubleQuote:
		start, end, ok = quoteObjectRange(ctx, '"', inner)
	case ObjSingleQuote:
		start, end, ok = quoteObjectRange(ctx, '\'', inner)
	case ObjParen:
		start, end, ok = bracketObjectRange(ctx, '(', ')', inner)
	case ObjBracket:
		start, end, ok = bracketObjectRange(ctx, '[', ']', inner)
	case ObjBrace:
		start, end, ok = bracketObjectRange(ctx, '{', '}', inner)
	}
	if !ok {
		return
	}
	ctx.Selection.Value = &cursor.Selection{Start: start, End: end}
	*ctx.Mode = mode.Visual
}

// wordObjectRange finds the run of word (or whitespace) characters on
// the cursor's row containing the cursor column. `inner` (iw) selects
// only that run; `around` (aw) additionally includes trailing (or, if
// none, leading) whitespace.
func wordObjectRange(ctx *Context, inner bool) (cursor.Position, cursor.Position, bool) {
	row := ctx.Cursor.Row
	runes := []rune(ctx.Buffer.Row(row))
	col := ctx.Cursor.Col
	if col >= len(runes) {
		return cursor.Position{}, cursor.Position{}, false
	}
	isSpace := unicode.IsSpace(runes[col])

	left := col
	for left > 0 && unicode.IsSpace(runes[left-1]) == isSpace {
		left--
	}
	right := col
	for right+1 < len(runes) && unicode.IsSpace(runes[right+1]) == isSpace {
		right++
	}

	if inner {
		return cursor.Position{Row: row, Col: left}, cursor.Position{Row: row, Col: right}, true
	}

	if right+1 < len(runes) && unicode.IsSpace(runes[right+1]) {
		r2 := right
		for r2+1 < len(runes) && unicode.IsSpace(runes[r2+1]) {
			r2++
		}
		return cursor.Position{Row: row, Col: left}, cursor.Position{Row: row, Col: r2}, true
	}
	if left > 0 && unicode.IsSpace(runes[left-1]) {
		l2 := left
		for l2 > 0 && unicode.IsSpace(runes[l2-1]) {
			l2--
		}
		return cursor.Position{Row: row, Col: l2}, cursor.Position{Row: row, Col: right}, true
	}
	return cursor.Position{Row: row, Col: left}, cursor.Position{Row: row, Col: right}, true
}

// quoteObjectRange finds the nearest enclosing pair of an identical
// open/close quote rune on the cursor's row.
func quoteObjectRange(ctx *Context, quote rune, inner bool) (cursor.Position, cursor.Position, bool) {
	row := ctx.Cursor.Row
	runes := []rune(ctx.Buffer.Row(row))
	col := ctx.Cursor.Col

	left := -1
	for i := col; i >= 0 && i < len(runes); i-- {
		if runes[i] == quote {
			left = i
			break
		}
	}
	if left < 0 {
		return cursor.Position{}, cursor.Position{}, false
	}
	right := -1
	for i := left + 1; i < len(runes); i++ {
		if runes[i] == quote {
			right = i
			break
		}
	}
	if right < 0 {
		return cursor.Position{}, cursor.Position{}, false
	}

	if inner {
		if right == left+1 {
			return cursor.Position{Row: row, Col: left + 1}, cursor.Position{Row: row, Col: left}, true
		}
		return cursor.Position{Row: row, Col: left + 1}, cursor.Position{Row: row, Col: right - 1}, true
	}
	return cursor.Position{Row: row, Col: left}, cursor.Position{Row: row, Col: right}, true
}

// bracketObjectRange finds the nearest enclosing (open, close) pair
// around the cursor across the whole buffer, tracking nesting depth.
func bracketObjectRange(ctx *Context, open, close rune, inner bool) (cursor.Position, cursor.Position, bool) {
	flat := flatten(ctx.Buffer)
	if len(flat) == 0 {
		return cursor.Position{}, cursor.Position{}, false
	}
	idx := indexOf(flat, *ctx.Cursor)
	if idx >= len(flat) {
		idx = len(flat) - 1
	}

	depth := 0
	openIdx := -1
	for i := idx; i >= 0; i-- {
		switch flat[i].ch {
		case close:
			depth++
		case open:
			if depth == 0 {
				openIdx = i
			} else {
				depth--
			}
		}
		if openIdx >= 0 {
			break
		}
	}
	if openIdx < 0 {
		return cursor.Position{}, cursor.Position{}, false
	}

	depth = 0
	closeIdx := -1
	for i := openIdx + 1; i < len(flat); i++ {
		switch flat[i].ch {
		case open:
			depth++
		case close:
			if depth == 0 {
				closeIdx = i
			} else {
				depth--
			}
		}
		if closeIdx >= 0 {
			break
		}
	}
	if closeIdx < 0 {
		return cursor.Position{}, cursor.Position{}, false
	}

	if inner {
		if closeIdx == openIdx+1 {
			return flat[openIdx+1].pos, flat[openIdx].pos, true
		}
		return flat[openIdx+1].pos, flat[closeIdx-1].pos, true
	}
	return flat[openIdx].pos, flat[closeIdx].pos, true
}
