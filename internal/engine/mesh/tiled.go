package mesh

import (
	"go.uber.org/zap"

	"github.com/Faultbox/uimesh/internal/logger"
	"github.com/Faultbox/uimesh/pkg/math"
)

// generateTiled emits a single quad covering the tileable region (the rect
// minus adjusted borders) with the UV range scaled by region/tile size. The
// consuming sampler must use repeat addressing for the tiling to show; a
// sprite without the Repeat hint gets a warning and best-effort output,
// since that is a caller configuration issue, not a computation error.
func generateTiled(buf *Buffer, rect math.Rect, spr *Sprite, color [4]float32) (int, int, error) {
	var border, inner math.Vec4
	var size math.Vec2
	ppu := spr.pixelsPerUnit()

	if spr != nil {
		border = spr.Border
		inner = spr.InnerUV
		size = spr.Size

		if !spr.Repeat {
			logger.Warn("tiled sprite sampler is not in repeat mode, tiling will not wrap",
				zap.Float32("rectW", rect.W),
				zap.Float32("rectH", rect.H),
			)
		}
	}

	tileW := (size.X - border[0] - border[2]) / ppu
	tileH := (size.Y - border[1] - border[3]) / ppu

	adjusted := AdjustBorders(border.Scale(1/ppu), rect, rect)
	xMin := adjusted[0]
	xMax := rect.W - adjusted[2]
	yMin := adjusted[1]
	yMax := rect.H - adjusted[3]

	// A degenerate tile dimension means the whole region is one tile.
	if tileW <= 0 {
		tileW = xMax - xMin
	}
	if tileH <= 0 {
		tileH = yMax - yMin
	}

	uvMin := inner.XY()
	uvMax := inner.ZW()
	if tileW > 0 {
		scale := (xMax - xMin) / tileW
		uvMin.X *= scale
		uvMax.X *= scale
	}
	if tileH > 0 {
		scale := (yMax - yMin) / tileH
		uvMin.Y *= scale
		uvMax.Y *= scale
	}

	verts, idx, err := buf.Reinitialize(4, 6)
	if err != nil {
		return 0, 0, err
	}
	setQuad(verts, idx, 0, 0,
		math.Vec2{X: rect.X + xMin, Y: rect.Y + yMin},
		math.Vec2{X: rect.X + xMax, Y: rect.Y + yMax},
		uvMin, uvMax, color)
	return 4, 6, nil
}
