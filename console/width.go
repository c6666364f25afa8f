package console

import "github.com/mattn/go-runewidth"

// DisplayWidth returns the number of terminal columns a glyph occupies,
// always 1 or 2. Double-width covers the East Asian wide and fullwidth
// ranges (Hangul, CJK ideographs and radicals, compatibility and
// halfwidth/fullwidth forms). Zero-width input is treated as 1 so the
// grid never loses a column.
func DisplayWidth(r rune) int {
	if runewidth.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

// StringWidth returns the total display width of s in terminal columns
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += DisplayWidth(r)
	}
	return w
}
