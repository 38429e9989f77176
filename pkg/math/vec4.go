package math

// Vec4 is a 4-component vector.
//
// For border thicknesses the convention is left, bottom, right, top,
// so that index i and i+2 are the two sides of axis i. For UV rects the
// convention is x0, y0, x1, y1.
type Vec4 [4]float32

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// IsZero reports whether all components are zero.
func (v Vec4) IsZero() bool {
	return v == Vec4{}
}

// XY returns the first two components as Vec2.
func (v Vec4) XY() Vec2 {
	return Vec2{v[0], v[1]}
}

// ZW returns the last two components as Vec2.
func (v Vec4) ZW() Vec2 {
	return Vec2{v[2], v[3]}
}
