package buffer

import "github.com/rivo/uniseg"

// DisplayWidth returns the terminal column width of row, grouping combining
// marks and wide runes the way a host's viewport math needs. This is an
// opt-in rendering helper only — Buffer's own indexing stays rune-based;
// a host that wants grapheme-aware cursor rendering computes it from here
// rather than from Position.Col.
func DisplayWidth(row string) int {
	return uniseg.StringWidth(row)
}
