package main

import (
	"strings"

	"github.com/arjunvelu/vimcore/internal/keymap"
)

// parseScript turns a script string into the Key sequence it describes.
// Most characters map to a literal KindChar key; a bracketed name like
// "<Esc>" maps to its named Key instead, so a script can drive every
// control key the editor core understands without a binary key format.
func parseScript(script string) []keymap.Key {
	var keys []keymap.Key
	runes := []rune(script)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '<' {
			if end := indexRune(runes[i:], '>'); end > 0 {
				name := string(runes[i+1 : i+end])
				if k, ok := namedKey(name); ok {
					keys = append(keys, k)
					i += end
					continue
				}
			}
		}
		keys = append(keys, keymap.Key{Kind: keymap.KindChar, Ch: runes[i]})
	}
	return keys
}

func indexRune(rs []rune, target rune) int {
	for i, r := range rs {
		if r == target {
			return i
		}
	}
	return -1
}

func namedKey(name string) (keymap.Key, bool) {
	switch strings.ToLower(name) {
	case "esc", "escape":
		return keymap.Key{Kind: keymap.KindEsc}, true
	case "enter", "cr", "return":
		return keymap.Key{Kind: keymap.KindEnter}, true
	case "bs", "backspace":
		return keymap.Key{Kind: keymap.KindBackspace}, true
	case "left":
		return keymap.Key{Kind: keymap.KindLeft}, true
	case "right":
		return keymap.Key{Kind: keymap.KindRight}, true
	case "up":
		return keymap.Key{Kind: keymap.KindUp}, true
	case "down":
		return keymap.Key{Kind: keymap.KindDown}, true
	default:
		return keymap.Key{}, false
	}
}
