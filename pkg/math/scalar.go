package math

import "github.com/chewxy/math32"

// Pi is the float32 circle constant.
const Pi = math32.Pi

// Lerp returns the linear interpolation between a and b at t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the range [0, 1].
func Clamp01(v float32) float32 {
	return Clamp(v, 0, 1)
}

// Abs returns the absolute value of v.
func Abs(v float32) float32 {
	return math32.Abs(v)
}

// Cos returns the cosine of the angle in radians.
func Cos(v float32) float32 {
	return math32.Cos(v)
}

// Sin returns the sine of the angle in radians.
func Sin(v float32) float32 {
	return math32.Sin(v)
}
