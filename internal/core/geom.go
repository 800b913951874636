// Package core holds the small value types shared by the game and the
// terminal front ends: the glyph buffer boards are drawn into, its color
// roles, layout rectangles, input actions and runtime settings. It has no
// dependency on Bubble Tea.
package core

// Rect is an axis-aligned area of the screen. Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner returns r shrunk by one cell on every side, the area inside a
// frame drawn with Box. A rectangle too small to have an inside yields an
// empty one.
func (r Rect) Inner() Rect {
	return NewRect(r.X+1, r.Y+1, max(r.W-2, 0), max(r.H-2, 0))
}

// Centered returns a w by h rectangle centered inside r. It may stick out
// of r when r is smaller; the left and top edges never go below r's.
func (r Rect) Centered(w, h int) Rect {
	return NewRect(r.X+max((r.W-w)/2, 0), r.Y+max((r.H-h)/2, 0), w, h)
}
