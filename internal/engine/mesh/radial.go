package mesh

import "github.com/Faultbox/uimesh/pkg/math"

const (
	// Below this fill the sub-quad is fully clipped.
	fillEpsilon = 0.0001
	// Above this fill (non-inverted) the sub-quad is left untouched.
	fillFull = 0.999
)

// radialCut clips one corner of a quad along the angle the fill fraction
// maps to, producing the clock-hand sweep of a radial fill. Positions and
// UVs are cut with the same factors. A fill below fillEpsilon collapses all
// four positions to the origin instead of dropping the quad, so per-method
// quad counts stay fixed.
func radialCut(xy, uv *[4]math.Vec2, fill float32, invert bool, corner int) {
	if fill < fillEpsilon {
		for i := range xy {
			xy[i] = math.Vec2{}
		}
		return
	}

	// Odd corners invert the fill direction: the quad winding mirrors
	// on alternating corners.
	if corner&1 == 1 {
		invert = !invert
	}

	if !invert && fill > fillFull {
		return
	}

	angle := math.Clamp01(fill)
	if invert {
		angle = 1 - angle
	}
	angle *= 0.5 * math.Pi // 0-1 fill covers a 90 degree sweep

	cos := math.Cos(angle)
	sin := math.Sin(angle)

	cutCorner(xy, cos, sin, invert, corner)
	cutCorner(uv, cos, sin, invert, corner)
}

// cutCorner applies the parity/invert case table to one coordinate array.
// Whichever of cos/sin is larger is normalized to 1 and the other becomes a
// linear ratio that pulls one or two corners toward the corner opposite the
// cut; the exact corner and axis depend on the corner parity and the invert
// flag. When cos and sin tie, both are treated as 1.
func cutCorner(pts *[4]math.Vec2, cos, sin float32, invert bool, corner int) {
	i0 := corner
	i1 := (corner + 1) % 4
	i2 := (corner + 2) % 4
	i3 := (corner + 3) % 4

	if corner&1 == 1 {
		if sin > cos {
			cos /= sin
			sin = 1
			if invert {
				pts[i1].X = math.Lerp(pts[i0].X, pts[i2].X, cos)
				pts[i2].X = pts[i1].X
			}
		} else if cos > sin {
			sin /= cos
			cos = 1
			if !invert {
				pts[i2].Y = math.Lerp(pts[i0].Y, pts[i2].Y, sin)
				pts[i3].Y = pts[i2].Y
			}
		} else {
			cos = 1
			sin = 1
		}

		if !invert {
			pts[i3].X = math.Lerp(pts[i0].X, pts[i2].X, cos)
		} else {
			pts[i1].Y = math.Lerp(pts[i0].Y, pts[i2].Y, sin)
		}
	} else {
		if cos > sin {
			sin /= cos
			cos = 1
			if !invert {
				pts[i1].Y = math.Lerp(pts[i0].Y, pts[i2].Y, sin)
				pts[i2].Y = pts[i1].Y
			}
		} else if sin > cos {
			cos /= sin
			sin = 1
			if invert {
				pts[i2].X = math.Lerp(pts[i0].X, pts[i2].X, cos)
				pts[i3].X = pts[i2].X
			}
		} else {
			cos = 1
			sin = 1
		}

		if invert {
			pts[i3].Y = math.Lerp(pts[i0].Y, pts[i2].Y, sin)
		} else {
			pts[i1].X = math.Lerp(pts[i0].X, pts[i2].X, cos)
		}
	}
}
