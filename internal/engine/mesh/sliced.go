package mesh

import "github.com/Faultbox/uimesh/pkg/math"

// slicedOrder fixes the output quad ordering over the 3x3 grid: the four
// corner cells first (bottom-left, top-left, top-right, bottom-right), then
// the edge cells (left, top, right, bottom), center last. Each quad is
// independently indexed, so the order only pins down output determinism.
var slicedOrder = [9][2]int{
	{0, 0}, {0, 2}, {2, 2}, {2, 0},
	{0, 1}, {1, 2}, {2, 1}, {1, 0},
	{1, 1},
}

// generateSliced emits the 9-patch grid: fixed-size corners, stretched edges
// and an optional stretched center. A sprite without borders falls back to
// the simple quad.
func generateSliced(buf *Buffer, rect math.Rect, spr *Sprite, color [4]float32, p Params) (int, int, error) {
	if !spr.HasBorder() {
		return generateSimple(buf, rect, spr, color, false, p.Pivot)
	}

	ppu := spr.pixelsPerUnit()
	border := AdjustBorders(spr.Border.Scale(1/ppu), rect, rect)
	pad := spr.Padding.Scale(1 / ppu)

	// 4x4 scratch coordinates: outer edge (after padding), inner border
	// line, in both rect-local and UV space.
	var vertScratch, uvScratch [4]math.Vec2

	vertScratch[0] = math.Vec2{X: pad[0], Y: pad[1]}
	vertScratch[3] = math.Vec2{X: rect.W - pad[2], Y: rect.H - pad[3]}
	vertScratch[1] = math.Vec2{X: border[0], Y: border[1]}
	vertScratch[2] = math.Vec2{X: rect.W - border[2], Y: rect.H - border[3]}

	for i := range vertScratch {
		vertScratch[i].X += rect.X
		vertScratch[i].Y += rect.Y
	}

	uvScratch[0] = spr.OuterUV.XY()
	uvScratch[1] = spr.InnerUV.XY()
	uvScratch[2] = spr.InnerUV.ZW()
	uvScratch[3] = spr.OuterUV.ZW()

	quads := 9
	if !p.FillCenter {
		quads = 8
	}
	verts, idx, err := buf.Reinitialize(quads*4, quads*6)
	if err != nil {
		return 0, 0, err
	}

	q := 0
	for _, cell := range slicedOrder {
		x, y := cell[0], cell[1]
		if !p.FillCenter && x == 1 && y == 1 {
			continue
		}
		setQuad(verts, idx, q*4, q*6,
			math.Vec2{X: vertScratch[x].X, Y: vertScratch[y].Y},
			math.Vec2{X: vertScratch[x+1].X, Y: vertScratch[y+1].Y},
			math.Vec2{X: uvScratch[x].X, Y: uvScratch[y].Y},
			math.Vec2{X: uvScratch[x+1].X, Y: uvScratch[y+1].Y},
			color)
		q++
	}
	return quads * 4, quads * 6, nil
}
