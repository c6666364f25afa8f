package console

import (
	"strings"

	"github.com/lorekeep/termcanvas/terminal"
)

// WrapLine word-wraps a single line to the given display width. Words
// are separated by single spaces and accumulated greedily; a lone word
// wider than the target is hard-split glyph by glyph. Width counts
// terminal columns, not runes.
func WrapLine(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	if s == "" {
		return []string{""}
	}

	var out []string
	var line strings.Builder
	lineW := 0

	flush := func() {
		out = append(out, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range strings.Split(s, " ") {
		wordW := StringWidth(word)

		if wordW > width {
			// Hard-split: emit whatever fits, then chop the word
			if lineW > 0 {
				flush()
			}
			for _, r := range word {
				rw := DisplayWidth(r)
				if lineW+rw > width {
					flush()
				}
				line.WriteRune(r)
				lineW += rw
			}
			continue
		}

		sep := 0
		if lineW > 0 {
			sep = 1
		}
		if lineW+sep+wordW > width {
			flush()
			sep = 0
		}
		if sep == 1 {
			line.WriteByte(' ')
			lineW++
		}
		line.WriteString(word)
		lineW += wordW
	}

	if lineW > 0 || len(out) == 0 {
		flush()
	}
	return out
}

// WrapLines wraps every input line independently and concatenates the
// results in order.
func WrapLines(lines []string, width int) []string {
	var out []string
	for _, s := range lines {
		out = append(out, WrapLine(s, width)...)
	}
	return out
}

// DrawWrappedText renders lines into rect as a bottom-anchored log view:
// when the wrapped output exceeds the rectangle's height only the last
// height lines are shown. Every displayed line is right-padded with
// spaces to the full width so stale content cannot bleed through.
func DrawWrappedText(buf *Buffer, rect Rect, lines []string, color terminal.RGB) {
	if rect.Empty() {
		return
	}

	wrapped := WrapLines(lines, rect.Width)
	if len(wrapped) > rect.Height {
		wrapped = wrapped[len(wrapped)-rect.Height:]
	}

	for i, line := range wrapped {
		padded := line
		if pad := rect.Width - StringWidth(line); pad > 0 {
			padded = line + strings.Repeat(" ", pad)
		}
		buf.WriteString(rect.X, rect.Y+i, padded, color)
	}
}
