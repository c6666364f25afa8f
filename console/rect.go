package console

// Rect is an immutable axis-aligned box. Width and height are clamped to
// zero at construction and never go negative.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rectangle, clamping negative dimensions to zero
func NewRect(x, y, width, height int) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Intersects reports whether two rectangles overlap. Zero-area
// rectangles intersect nothing.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height &&
		other.Y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}
