package mesh

import "github.com/Faultbox/uimesh/pkg/math"

// setQuad writes an axis-aligned quad at vertex offset vOff and index offset
// iOff. Vertex order is bottom-left, top-left, top-right, bottom-right; the
// two triangles wind 0-1-2, 2-3-0.
func setQuad(verts []Vertex, idx []uint16, vOff, iOff int, posMin, posMax, uvMin, uvMax math.Vec2, color [4]float32) {
	xy := [4]math.Vec2{
		{X: posMin.X, Y: posMin.Y},
		{X: posMin.X, Y: posMax.Y},
		{X: posMax.X, Y: posMax.Y},
		{X: posMax.X, Y: posMin.Y},
	}
	uv := [4]math.Vec2{
		{X: uvMin.X, Y: uvMin.Y},
		{X: uvMin.X, Y: uvMax.Y},
		{X: uvMax.X, Y: uvMax.Y},
		{X: uvMax.X, Y: uvMin.Y},
	}
	setQuad4(verts, idx, vOff, iOff, &xy, &uv, color)
}

// setQuad4 writes a quad from four explicit corners, as produced by the
// radial clipper. Corner order and winding match setQuad.
func setQuad4(verts []Vertex, idx []uint16, vOff, iOff int, xy, uv *[4]math.Vec2, color [4]float32) {
	for i := 0; i < 4; i++ {
		v := &verts[vOff+i]
		v.Position = [3]float32{xy[i].X, xy[i].Y, 0}
		v.Normal = quadNormal
		v.Tangent = quadTangent
		v.Color = color
		v.UV0 = [4]float32{uv[i].X, uv[i].Y, 0, 0}
		v.UV1 = [4]float32{}
		v.UV2 = [4]float32{}
		v.UV3 = [4]float32{}
	}

	base := uint16(vOff)
	idx[iOff+0] = base
	idx[iOff+1] = base + 1
	idx[iOff+2] = base + 2
	idx[iOff+3] = base + 2
	idx[iOff+4] = base + 3
	idx[iOff+5] = base
}
