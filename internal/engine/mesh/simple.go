package mesh

import "github.com/Faultbox/uimesh/pkg/math"

// generateSimple emits one quad spanning the drawable area of the rect,
// textured with the sprite's outer UV rect (zero UVs without a sprite).
func generateSimple(buf *Buffer, rect math.Rect, spr *Sprite, color [4]float32, preserveAspect bool, pivot math.Vec2) (int, int, error) {
	v := drawingDimensions(rect, spr, preserveAspect, pivot)
	uv := spr.outerUV()

	verts, idx, err := buf.Reinitialize(4, 6)
	if err != nil {
		return 0, 0, err
	}
	setQuad(verts, idx, 0, 0, v.XY(), v.ZW(), uv.XY(), uv.ZW(), color)
	return 4, 6, nil
}

// drawingDimensions returns the drawable extents as x0, y0, x1, y1, with
// sprite padding applied as normalized insets and the optional aspect-ratio
// shrink anchored at pivot.
func drawingDimensions(rect math.Rect, spr *Sprite, preserveAspect bool, pivot math.Vec2) math.Vec4 {
	if spr == nil {
		return math.Vec4{rect.X, rect.Y, rect.X + rect.W, rect.Y + rect.H}
	}

	inset := math.Vec4{0, 0, 1, 1}
	size := spr.Size
	if size.X > 0 && size.Y > 0 {
		pad := spr.Padding
		inset = math.Vec4{
			pad[0] / size.X,
			pad[1] / size.Y,
			(size.X - pad[2]) / size.X,
			(size.Y - pad[3]) / size.Y,
		}
	}

	r := rect
	if preserveAspect && size.X > 0 && size.Y > 0 {
		r = preserveAspectRect(r, size, pivot)
	}

	return math.Vec4{
		r.X + r.W*inset[0],
		r.Y + r.H*inset[1],
		r.X + r.W*inset[2],
		r.Y + r.H*inset[3],
	}
}

// preserveAspectRect shrinks the rect on one axis to match the sprite aspect
// ratio, keeping the point indicated by the normalized pivot fixed.
func preserveAspectRect(r math.Rect, spriteSize, pivot math.Vec2) math.Rect {
	if r.W <= 0 || r.H <= 0 {
		return r
	}

	spriteRatio := spriteSize.X / spriteSize.Y
	rectRatio := r.W / r.H

	if spriteRatio > rectRatio {
		oldH := r.H
		r.H = r.W / spriteRatio
		r.Y += (oldH - r.H) * pivot.Y
	} else {
		oldW := r.W
		r.W = r.H * spriteRatio
		r.X += (oldW - r.W) * pivot.X
	}
	return r
}
