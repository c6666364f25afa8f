package mapview

import (
	"github.com/lorekeep/termcanvas/console"
	"github.com/lorekeep/termcanvas/terminal"
)

// Area is a read-only world record: a named position with connections
// to other areas and the locations inside it. How areas are loaded or
// persisted is not this package's concern.
type Area struct {
	Name        string
	Description string
	X, Y        int
	Connections []string
	Locations   []Location
}

// Location is one point of interest inside an area
type Location struct {
	Name  string
	Type  string
	NPCs  []string
	Items []string
}

// WorldStyle configures world map glyphs and colors
type WorldStyle struct {
	Marker        rune
	CurrentMarker rune
	LineGlyph     rune
	MarkerColor   terminal.RGB
	CurrentColor  terminal.RGB
	LineColor     terminal.RGB
}

// DefaultWorldStyle returns the standard world map appearance
func DefaultWorldStyle() WorldStyle {
	return WorldStyle{
		Marker:        'o',
		CurrentMarker: '@',
		LineGlyph:     '.',
		MarkerColor:   terminal.RGBWhite,
		CurrentColor:  terminal.RGBYellow,
		LineColor:     terminal.RGBGray,
	}
}

// worldMargin pads the bounding box so edge markers do not sit on the
// panel border
const worldMargin = 2

// DrawWorldMap projects every area position into rect with a uniform
// aspect-preserving scale (letterboxed on the shorter axis), draws a
// line for every connection, then the area markers on top so lines can
// never obscure them. The current area gets a distinct glyph and color.
func DrawWorldMap(buf *console.Buffer, rect console.Rect, areas []Area, current string, style WorldStyle) {
	if rect.Empty() || len(areas) == 0 {
		return
	}
	if style.Marker == 0 {
		style = DefaultWorldStyle()
	}

	minX, minY := areas[0].X, areas[0].Y
	maxX, maxY := minX, minY
	for _, a := range areas {
		minX = min(minX, a.X)
		minY = min(minY, a.Y)
		maxX = max(maxX, a.X)
		maxY = max(maxY, a.Y)
	}
	minX -= worldMargin
	minY -= worldMargin
	maxX += worldMargin
	maxY += worldMargin

	spanX := maxX - minX
	spanY := maxY - minY
	scale := min(
		float64(rect.Width-1)/float64(spanX),
		float64(rect.Height-1)/float64(spanY),
	)

	// Letterbox: center the unused span of the shorter axis
	offX := (rect.Width - 1 - int(float64(spanX)*scale)) / 2
	offY := (rect.Height - 1 - int(float64(spanY)*scale)) / 2

	project := func(a *Area) (int, int) {
		px := rect.X + offX + int(float64(a.X-minX)*scale+0.5)
		py := rect.Y + offY + int(float64(a.Y-minY)*scale+0.5)
		return px, py
	}

	index := make(map[string]*Area, len(areas))
	for i := range areas {
		index[areas[i].Name] = &areas[i]
	}

	// Connections first so markers paint over line endpoints
	drawn := make(map[[2]string]bool)
	for i := range areas {
		a := &areas[i]
		for _, name := range a.Connections {
			b, ok := index[name]
			if !ok {
				continue
			}
			key := [2]string{a.Name, b.Name}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if drawn[key] {
				continue
			}
			drawn[key] = true

			x0, y0 := project(a)
			x1, y1 := project(b)
			drawLine(buf, x0, y0, x1, y1, style.LineGlyph, style.LineColor, false)
		}
	}

	for i := range areas {
		a := &areas[i]
		x, y := project(a)
		if a.Name == current {
			buf.SetChar(x, y, style.CurrentMarker, style.CurrentColor)
		} else {
			buf.SetChar(x, y, style.Marker, style.MarkerColor)
		}
	}
}

// drawLine rasterizes a straight segment with Bresenham's algorithm.
// With blankOnly set, cells already holding a glyph are left alone.
func drawLine(buf *console.Buffer, x0, y0, x1, y1 int, glyph rune, color terminal.RGB, blankOnly bool) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		if !blankOnly || buf.GetChar(x0, y0) == ' ' {
			buf.SetChar(x0, y0, glyph, color)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}
