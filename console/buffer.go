package console

import (
	"strings"

	"github.com/lorekeep/termcanvas/terminal"
)

// WidePlaceholder occupies the second column of a double-width glyph.
// It is never written to the terminal; it exists so a later partial
// overwrite of the pair cannot shift the rest of the row.
const WidePlaceholder rune = 0

// invalidRune marks a shadow cell as never-matching, forcing a redraw
const invalidRune rune = -1

// Cell is one character-grid position: a glyph and its foreground color
type Cell struct {
	Rune  rune
	Color terminal.RGB
}

// Buffer is a width x height character grid with a shadow copy of the
// previously flushed frame. Flush diffs against the shadow and emits
// only changed cells, coalesced into same-color runs.
type Buffer struct {
	cells     []Cell
	prev      []Cell
	width     int
	height    int
	defaultFg terminal.RGB
}

// NewBuffer allocates a grid filled with spaces in the default color
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		cells:     make([]Cell, width*height),
		prev:      make([]Cell, width*height),
		width:     width,
		height:    height,
		defaultFg: terminal.RGBWhite,
	}
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Color: b.defaultFg}
		b.prev[i] = Cell{Rune: invalidRune}
	}
	return b
}

// Size returns grid dimensions
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// SetDefaultColor sets the color used by Clear for blank cells
func (b *Buffer) SetDefaultColor(c terminal.RGB) {
	b.defaultFg = c
}

// Clear resets every cell to a space in the default color without
// reallocating. Called once per repaint before regions draw.
func (b *Buffer) Clear() {
	blank := Cell{Rune: ' ', Color: b.defaultFg}
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Invalidate forgets the shadow frame so the next Flush redraws every
// cell. Needed after the physical terminal has been cleared or resized
// behind the buffer's back.
func (b *Buffer) Invalidate() {
	for i := range b.prev {
		b.prev[i] = Cell{Rune: invalidRune}
	}
}

// SetChar writes one glyph. Out-of-range coordinates are dropped.
// Overwriting either half of a double-width pair blanks the other half,
// keeping the grid's column accounting aligned with the terminal.
func (b *Buffer) SetChar(x, y int, r rune, color terminal.RGB) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	idx := y*b.width + x
	old := b.cells[idx].Rune

	if old == WidePlaceholder && x > 0 && DisplayWidth(b.cells[idx-1].Rune) == 2 {
		b.cells[idx-1].Rune = ' '
	} else if old != WidePlaceholder && DisplayWidth(old) == 2 &&
		x+1 < b.width && b.cells[idx+1].Rune == WidePlaceholder {
		b.cells[idx+1].Rune = ' '
	}

	b.cells[idx] = Cell{Rune: r, Color: color}
}

// GetChar reads one glyph, returning a space for out-of-range
// coordinates. Map renderers use this to avoid overdrawing occupied
// cells.
func (b *Buffer) GetChar(x, y int) rune {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return ' '
	}
	return b.cells[y*b.width+x].Rune
}

// WriteString writes glyphs left to right starting at (x, y). A
// double-width glyph advances two columns and leaves a placeholder in
// the second. Writing stops at the right edge; it never wraps.
func (b *Buffer) WriteString(x, y int, text string, color terminal.RGB) {
	col := x
	for _, r := range text {
		w := DisplayWidth(r)
		if col+w > b.width {
			return
		}
		b.SetChar(col, y, r, color)
		if w == 2 {
			b.SetChar(col+1, y, WidePlaceholder, color)
		}
		col += w
	}
}

// Resize reallocates the grid, preserving the overlapping top-left
// rectangle of existing content in both directions. The shadow frame is
// invalidated since the physical terminal no longer matches it.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.width && height == b.height {
		return
	}

	cells := make([]Cell, width*height)
	prev := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Color: b.defaultFg}
		prev[i] = Cell{Rune: invalidRune}
	}

	copyW := min(width, b.width)
	copyH := min(height, b.height)
	for y := 0; y < copyH; y++ {
		copy(cells[y*width:y*width+copyW], b.cells[y*b.width:y*b.width+copyW])
	}

	b.cells = cells
	b.prev = prev
	b.width = width
	b.height = height
}

// dirty reports whether the cell at idx differs from the shadow frame
func (b *Buffer) dirty(idx int) bool {
	return b.cells[idx] != b.prev[idx]
}

// Flush emits changed cells to the sink as same-color runs, tracking the
// terminal's current color so consecutive runs in one color cost a
// single SetColor. With useColor false no color calls are issued at all.
func (b *Buffer) Flush(sink terminal.Sink, useColor bool) {
	var run strings.Builder
	var lastColor terminal.RGB
	colorValid := false

	for y := 0; y < b.height; y++ {
		row := y * b.width

		// A dirty cell directly after an unchanged wide glyph forces
		// the glyph dirty too: the terminal cannot repaint half a pair
		for x := 1; x < b.width; x++ {
			idx := row + x
			if b.dirty(idx) && !b.dirty(idx-1) &&
				b.cells[idx-1].Rune != WidePlaceholder &&
				DisplayWidth(b.cells[idx-1].Rune) == 2 {
				b.prev[idx-1] = Cell{Rune: invalidRune}
			}
		}

		x := 0
		for x < b.width {
			if !b.dirty(row + x) {
				x++
				continue
			}

			sink.MoveCursor(x, y)
			for x < b.width && b.dirty(row+x) {
				runColor := b.cells[row+x].Color
				run.Reset()
				for x < b.width {
					idx := row + x
					c := b.cells[idx]
					if !b.dirty(idx) || !c.Color.Equal(runColor) {
						break
					}
					if c.Rune != WidePlaceholder {
						run.WriteRune(c.Rune)
					}
					b.prev[idx] = c
					x++
				}
				if useColor && (!colorValid || !runColor.Equal(lastColor)) {
					sink.SetColor(runColor)
					lastColor = runColor
					colorValid = true
				}
				sink.WriteRun(run.String())
			}
		}
	}

	if useColor && colorValid {
		sink.ResetColor()
	}
	sink.Flush()
}
