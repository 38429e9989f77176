package math

// Rect is an axis-aligned rectangle in local space, defined by its
// bottom-left corner and size.
type Rect struct {
	X, Y, W, H float32
}

// NewRect returns a rect from position and size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{x, y, w, h}
}

// Position returns the bottom-left corner.
func (r Rect) Position() Vec2 {
	return Vec2{r.X, r.Y}
}

// Size returns the width and height.
func (r Rect) Size() Vec2 {
	return Vec2{r.W, r.H}
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vec2 {
	return Vec2{r.X, r.Y}
}

// Max returns the top-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{r.X + r.W, r.Y + r.H}
}

// Center returns the center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether p lies inside the rect (min inclusive, max exclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
