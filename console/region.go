package console

import "github.com/lorekeep/termcanvas/terminal"

// InputRegionName marks the one region that also receives prompt and
// caret rendering on a second pass each frame.
const InputRegionName = "Input"

// RenderFunc draws a panel's content. It receives the buffer and the
// panel's content rectangle and must not block; it runs on the render
// goroutine while the manager lock is held. Panics are contained per
// callback so one bad panel cannot blank the frame.
type RenderFunc func(buf *Buffer, content Rect)

// Region is a bordered, optionally titled panel. Once registered it is
// owned by the window manager's region table; callers mutate it only
// through UpdateRegion.
type Region struct {
	X, Y    int
	Width   int
	Height  int
	Padding int
	ZIndex  int

	// Name is the lookup key and the displayed title. A non-empty name
	// reserves one extra content row for the centered title.
	Name string

	BorderColor terminal.RGB
	TitleColor  terminal.RGB
	Visible     bool

	Render RenderFunc
}

// Bounds returns the region's outer rectangle
func (r *Region) Bounds() Rect {
	return NewRect(r.X, r.Y, r.Width, r.Height)
}

// ContentBounds returns the inset rectangle renderers may draw into:
// one cell of border plus padding on every side, and one extra top row
// when a title is present.
func (r *Region) ContentBounds() Rect {
	top := 1 + r.Padding
	if r.Name != "" {
		top++
	}
	return NewRect(
		r.X+1+r.Padding,
		r.Y+top,
		r.Width-2-2*r.Padding,
		r.Height-top-1-r.Padding,
	)
}
