package mapview

import (
	"testing"

	"github.com/lorekeep/termcanvas/console"
	"github.com/lorekeep/termcanvas/terminal"
)

func testAreas() []Area {
	return []Area{
		{Name: "Hub", X: 0, Y: 0, Connections: []string{"East", "South"}},
		{Name: "East", X: 10, Y: 0, Connections: []string{"Hub"}},
		{Name: "South", X: 5, Y: 10},
	}
}

func countGlyph(buf *console.Buffer, rect console.Rect, glyph rune) int {
	n := 0
	for y := rect.Y; y < rect.Y+rect.Height; y++ {
		for x := rect.X; x < rect.X+rect.Width; x++ {
			if buf.GetChar(x, y) == glyph {
				n++
			}
		}
	}
	return n
}

func TestDrawWorldMapMarkersAndLines(t *testing.T) {
	buf := console.NewBuffer(21, 21)
	rect := console.NewRect(0, 0, 21, 21)
	style := DefaultWorldStyle()

	DrawWorldMap(buf, rect, testAreas(), "Hub", style)

	// World bbox with margin is (-2,-2)..(12,12), a 14x14 span scaled
	// by 20/14 with no letterbox offset
	if got := buf.GetChar(3, 3); got != '@' {
		t.Errorf("current marker = %q at (3,3), want '@'", got)
	}
	if got := buf.GetChar(17, 3); got != 'o' {
		t.Errorf("East marker = %q at (17,3), want 'o'", got)
	}
	if got := buf.GetChar(10, 17); got != 'o' {
		t.Errorf("South marker = %q at (10,17), want 'o'", got)
	}

	// The Hub-East segment is horizontal along row 3
	if got := buf.GetChar(10, 3); got != '.' {
		t.Errorf("connection cell = %q at (10,3), want '.'", got)
	}
	if countGlyph(buf, rect, '.') == 0 {
		t.Error("no connection line cells drawn")
	}
}

func TestDrawWorldMapMarkersPaintOverLines(t *testing.T) {
	buf := console.NewBuffer(21, 21)
	rect := console.NewRect(0, 0, 21, 21)

	DrawWorldMap(buf, rect, testAreas(), "Hub", DefaultWorldStyle())

	// Both connections terminate at Hub, yet its cell shows the marker
	if got := buf.GetChar(3, 3); got != '@' {
		t.Errorf("line endpoint obscured the marker: %q", got)
	}
}

func TestDrawWorldMapDuplicateConnections(t *testing.T) {
	// Hub and East both list each other; the segment must come out
	// identical to a single listing
	once := console.NewBuffer(21, 21)
	both := console.NewBuffer(21, 21)
	rect := console.NewRect(0, 0, 21, 21)

	oneSided := testAreas()
	oneSided[1].Connections = nil
	DrawWorldMap(once, rect, oneSided, "Hub", DefaultWorldStyle())
	DrawWorldMap(both, rect, testAreas(), "Hub", DefaultWorldStyle())

	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			if once.GetChar(x, y) != both.GetChar(x, y) {
				t.Fatalf("cell (%d,%d) differs: %q vs %q",
					x, y, once.GetChar(x, y), both.GetChar(x, y))
			}
		}
	}
}

func TestDrawWorldMapUnknownConnectionIgnored(t *testing.T) {
	buf := console.NewBuffer(21, 21)
	rect := console.NewRect(0, 0, 21, 21)

	areas := []Area{
		{Name: "Hub", X: 0, Y: 0, Connections: []string{"Atlantis"}},
		{Name: "East", X: 10, Y: 0},
	}
	DrawWorldMap(buf, rect, areas, "Hub", DefaultWorldStyle())

	if countGlyph(buf, rect, '.') != 0 {
		t.Error("dangling connection produced line cells")
	}
}

func TestDrawWorldMapNoAreasNoWrites(t *testing.T) {
	buf := console.NewBuffer(10, 10)
	DrawWorldMap(buf, console.NewRect(0, 0, 10, 10), nil, "", DefaultWorldStyle())
	DrawWorldMap(buf, console.NewRect(0, 0, 0, 0), testAreas(), "Hub", DefaultWorldStyle())

	if countGlyph(buf, console.NewRect(0, 0, 10, 10), 'o') != 0 {
		t.Error("degenerate input drew markers")
	}
}

func TestDrawLine(t *testing.T) {
	buf := console.NewBuffer(10, 5)
	drawLine(buf, 1, 1, 5, 1, '.', terminal.RGBGray, false)

	for x := 1; x <= 5; x++ {
		if got := buf.GetChar(x, 1); got != '.' {
			t.Errorf("cell (%d,1) = %q, want '.'", x, got)
		}
	}
	if got := buf.GetChar(6, 1); got != ' ' {
		t.Errorf("overshoot at (6,1): %q", got)
	}
}

func TestDrawLineDiagonalConnects(t *testing.T) {
	buf := console.NewBuffer(10, 10)
	drawLine(buf, 0, 0, 7, 4, '.', terminal.RGBGray, false)

	if buf.GetChar(0, 0) != '.' || buf.GetChar(7, 4) != '.' {
		t.Error("endpoints not drawn")
	}
	// Every column the segment crosses holds at least one cell
	for x := 0; x <= 7; x++ {
		found := false
		for y := 0; y <= 4; y++ {
			if buf.GetChar(x, y) == '.' {
				found = true
			}
		}
		if !found {
			t.Errorf("column %d has a gap", x)
		}
	}
}

func TestDrawLineBlankOnly(t *testing.T) {
	buf := console.NewBuffer(10, 5)
	buf.SetChar(3, 1, 'X', terminal.RGBWhite)

	drawLine(buf, 1, 1, 5, 1, '.', terminal.RGBGray, true)

	if got := buf.GetChar(3, 1); got != 'X' {
		t.Errorf("occupied cell overwritten: %q", got)
	}
	if got := buf.GetChar(2, 1); got != '.' {
		t.Errorf("blank cell skipped: %q", got)
	}
}
