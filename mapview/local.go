package mapview

import (
	"github.com/lorekeep/termcanvas/console"
	"github.com/lorekeep/termcanvas/terminal"
)

// locationsPerRow fixes the local map grid at three columns
const locationsPerRow = 3

// locationGlyph is the fixed lookup table keyed by location type
var locationGlyphs = map[string]struct {
	Glyph rune
	Color terminal.RGB
}{
	"shop":    {'$', terminal.RGBYellow},
	"tavern":  {'&', terminal.RGBMagenta},
	"home":    {'H', terminal.RGBGreen},
	"temple":  {'†', terminal.RGBCyan},
	"dungeon": {'D', terminal.RGBRed},
	"wild":    {'*', terminal.RGBGreen},
}

var defaultLocationGlyph = struct {
	Glyph rune
	Color terminal.RGB
}{'•', terminal.RGBWhite}

// DrawLocalMap lays out an area's locations in a three-column grid,
// drawing a type-dependent glyph for each, a truncated name label
// beneath it when vertical space allows, and a connecting line between
// two locations when they share at least one NPC or item reference.
// Lines touch only blank cells, so they never overwrite a marker or
// label.
func DrawLocalMap(buf *console.Buffer, rect console.Rect, area *Area, lineColor terminal.RGB) {
	if rect.Empty() || area == nil || len(area.Locations) == 0 {
		return
	}

	n := len(area.Locations)
	rows := (n + locationsPerRow - 1) / locationsPerRow
	colW := rect.Width / locationsPerRow
	if colW < 1 {
		colW = 1
	}
	rowH := rect.Height / rows
	if rowH < 1 {
		rowH = 1
	}
	showLabels := rowH >= 2

	type placed struct {
		x, y int
	}
	positions := make([]placed, n)

	for i := range area.Locations {
		loc := &area.Locations[i]
		col := i % locationsPerRow
		row := i / locationsPerRow

		x := rect.X + col*colW + colW/2
		y := rect.Y + row*rowH
		positions[i] = placed{x, y}

		g, ok := locationGlyphs[loc.Type]
		if !ok {
			g = defaultLocationGlyph
		}
		buf.SetChar(x, y, g.Glyph, g.Color)

		if showLabels {
			label := truncateLabel(loc.Name, colW-1)
			lx := x - console.StringWidth(label)/2
			if lx < rect.X {
				lx = rect.X
			}
			buf.WriteString(lx, y+1, label, terminal.RGBGray)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !sharesReference(&area.Locations[i], &area.Locations[j]) {
				continue
			}
			a, b := positions[i], positions[j]
			drawLine(buf, a.x, a.y, b.x, b.y, '·', lineColor, true)
		}
	}
}

// sharesReference reports whether two locations mention a common NPC or
// item. It is the adjacency heuristic for local map connections.
func sharesReference(a, b *Location) bool {
	for _, n := range a.NPCs {
		for _, m := range b.NPCs {
			if n == m {
				return true
			}
		}
	}
	for _, it := range a.Items {
		for _, jt := range b.Items {
			if it == jt {
				return true
			}
		}
	}
	return false
}

// truncateLabel shortens a name to fit beneath its marker
func truncateLabel(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if console.StringWidth(s) <= maxW {
		return s
	}
	var out []rune
	w := 0
	for _, r := range s {
		rw := console.DisplayWidth(r)
		if w+rw > maxW-1 {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + "…"
}
