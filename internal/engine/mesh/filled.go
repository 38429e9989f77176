package mesh

import "github.com/Faultbox/uimesh/pkg/math"

// generateFilled emits partially visible geometry driven by the fill amount.
// Horizontal and vertical fills truncate a single quad; the radial methods
// emit one, two or four sub-quads and clip each against the fill angle.
// Quad counts are fixed per method so buffer sizes stay deterministic; a
// fully clipped sub-quad is emitted degenerate rather than skipped.
func generateFilled(buf *Buffer, rect math.Rect, spr *Sprite, color [4]float32, p Params) (int, int, error) {
	fill := math.Clamp01(p.FillAmount)
	origin := p.FillOrigin
	if origin < 0 || origin >= p.FillMethod.originLimit() {
		origin = 0
	}

	v := drawingDimensions(rect, spr, p.PreserveAspect, p.Pivot)
	t := spr.outerUV()

	switch p.FillMethod {
	case FillHorizontal:
		cut := (t[2] - t[0]) * fill
		if origin == 1 {
			v[0] = v[2] - (v[2]-v[0])*fill
			t[0] = t[2] - cut
		} else {
			v[2] = v[0] + (v[2]-v[0])*fill
			t[2] = t[0] + cut
		}
		return fillQuad(buf, v, t, color)

	case FillVertical:
		cut := (t[3] - t[1]) * fill
		if origin == 1 {
			v[1] = v[3] - (v[3]-v[1])*fill
			t[1] = t[3] - cut
		} else {
			v[3] = v[1] + (v[3]-v[1])*fill
			t[3] = t[1] + cut
		}
		return fillQuad(buf, v, t, color)

	case FillRadial90:
		verts, idx, err := buf.Reinitialize(4, 6)
		if err != nil {
			return 0, 0, err
		}
		var xy, uv [4]math.Vec2
		subQuad(&xy, &uv, v, t, 0, 0, 1, 1)
		radialCut(&xy, &uv, fill, p.FillClockwise, origin)
		setQuad4(verts, idx, 0, 0, &xy, &uv, color)
		return 4, 6, nil

	case FillRadial180:
		verts, idx, err := buf.Reinitialize(8, 12)
		if err != nil {
			return 0, 0, err
		}
		var xy, uv [4]math.Vec2
		for side := 0; side < 2; side++ {
			fx0, fy0, fx1, fy1 := halfRegion(side, origin)
			subQuad(&xy, &uv, v, t, fx0, fy0, fx1, fy1)

			var val float32
			if p.FillClockwise {
				val = fill*2 - float32(side)
			} else {
				val = fill*2 - float32(1-side)
			}
			radialCut(&xy, &uv, math.Clamp01(val), p.FillClockwise, (side+origin+3)%4)
			setQuad4(verts, idx, side*4, side*6, &xy, &uv, color)
		}
		return 8, 12, nil

	case FillRadial360:
		verts, idx, err := buf.Reinitialize(16, 24)
		if err != nil {
			return 0, 0, err
		}
		var xy, uv [4]math.Vec2
		for corner := 0; corner < 4; corner++ {
			fx0, fy0, fx1, fy1 := quarterRegion(corner)
			subQuad(&xy, &uv, v, t, fx0, fy0, fx1, fy1)

			var val float32
			if p.FillClockwise {
				val = fill*4 - float32((corner+origin)%4)
			} else {
				val = fill*4 - float32(3-(corner+origin)%4)
			}
			radialCut(&xy, &uv, math.Clamp01(val), p.FillClockwise, (corner+2)%4)
			setQuad4(verts, idx, corner*4, corner*6, &xy, &uv, color)
		}
		return 16, 24, nil
	}

	return fillQuad(buf, v, t, color)
}

// fillQuad emits a single quad for the linear fill methods.
func fillQuad(buf *Buffer, v, t math.Vec4, color [4]float32) (int, int, error) {
	verts, idx, err := buf.Reinitialize(4, 6)
	if err != nil {
		return 0, 0, err
	}
	setQuad(verts, idx, 0, 0, v.XY(), v.ZW(), t.XY(), t.ZW(), color)
	return 4, 6, nil
}

// subQuad loads the scratch corners with the sub-rect of the drawable area
// (and matching UVs) selected by the normalized fx/fy range. Corner order is
// bottom-left, top-left, top-right, bottom-right.
func subQuad(xy, uv *[4]math.Vec2, v, t math.Vec4, fx0, fy0, fx1, fy1 float32) {
	x0 := math.Lerp(v[0], v[2], fx0)
	x1 := math.Lerp(v[0], v[2], fx1)
	y0 := math.Lerp(v[1], v[3], fy0)
	y1 := math.Lerp(v[1], v[3], fy1)
	xy[0] = math.Vec2{X: x0, Y: y0}
	xy[1] = math.Vec2{X: x0, Y: y1}
	xy[2] = math.Vec2{X: x1, Y: y1}
	xy[3] = math.Vec2{X: x1, Y: y0}

	u0 := math.Lerp(t[0], t[2], fx0)
	u1 := math.Lerp(t[0], t[2], fx1)
	w0 := math.Lerp(t[1], t[3], fy0)
	w1 := math.Lerp(t[1], t[3], fy1)
	uv[0] = math.Vec2{X: u0, Y: w0}
	uv[1] = math.Vec2{X: u0, Y: w1}
	uv[2] = math.Vec2{X: u1, Y: w1}
	uv[3] = math.Vec2{X: u1, Y: w0}
}

// halfRegion returns the normalized sub-rect for one half of a radial-180
// fill. The origin edge decides whether the split is vertical or horizontal
// and which side comes first.
func halfRegion(side, origin int) (fx0, fy0, fx1, fy1 float32) {
	even := 0
	if origin > 1 {
		even = 1
	}

	if origin == 0 || origin == 2 {
		fy0, fy1 = 0, 1
		if side == even {
			fx0, fx1 = 0, 0.5
		} else {
			fx0, fx1 = 0.5, 1
		}
	} else {
		fx0, fx1 = 0, 1
		if side == even {
			fy0, fy1 = 0.5, 1
		} else {
			fy0, fy1 = 0, 0.5
		}
	}
	return fx0, fy0, fx1, fy1
}

// quarterRegion returns the normalized sub-rect for one quadrant of a
// radial-360 fill.
func quarterRegion(corner int) (fx0, fy0, fx1, fy1 float32) {
	if corner < 2 {
		fx0, fx1 = 0, 0.5
	} else {
		fx0, fx1 = 0.5, 1
	}
	if corner == 0 || corner == 3 {
		fy0, fy1 = 0, 0.5
	} else {
		fy0, fy1 = 0.5, 1
	}
	return fx0, fy0, fx1, fy1
}
