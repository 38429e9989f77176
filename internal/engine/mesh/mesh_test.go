package mesh

import (
	"testing"

	"github.com/Faultbox/uimesh/pkg/math"
)

var (
	white = [4]float32{1, 1, 1, 1}
	red   = [4]float32{1, 0, 0, 1}
)

// testSprite returns a 100x100 sprite with a 20px border on all sides and a
// full-texture outer UV rect.
func testSprite() *Sprite {
	return &Sprite{
		OuterUV:       math.Vec4{0, 0, 1, 1},
		InnerUV:       math.Vec4{0.2, 0.2, 0.8, 0.8},
		Border:        math.Vec4{20, 20, 20, 20},
		Size:          math.Vec2{X: 100, Y: 100},
		PixelsPerUnit: 1,
		Repeat:        true,
	}
}

// plainSprite returns a borderless 100x100 sprite.
func plainSprite() *Sprite {
	return &Sprite{
		OuterUV:       math.Vec4{0, 0, 1, 1},
		InnerUV:       math.Vec4{0, 0, 1, 1},
		Size:          math.Vec2{X: 100, Y: 100},
		PixelsPerUnit: 1,
		Repeat:        true,
	}
}

// pos returns the position of vertex i as a Vec2.
func pos(verts []Vertex, i int) math.Vec2 {
	return math.Vec2{X: verts[i].Position[0], Y: verts[i].Position[1]}
}

// quadArea returns the area of the quad starting at vertex offset off,
// using the shoelace formula over its four corners.
func quadArea(verts []Vertex, off int) float32 {
	var sum float32
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		sum += verts[off+i].Position[0]*verts[off+j].Position[1] -
			verts[off+j].Position[0]*verts[off+i].Position[1]
	}
	return math.Abs(sum / 2)
}

// visibleArea sums the quad areas of the whole buffer.
func visibleArea(verts []Vertex) float32 {
	var sum float32
	for off := 0; off+4 <= len(verts); off += 4 {
		sum += quadArea(verts, off)
	}
	return sum
}

func TestGenerateDispatch(t *testing.T) {
	tests := []struct {
		mode    Mode
		spr     *Sprite
		nVtx    int
		nIdx    int
	}{
		{ModeSimple, nil, 4, 6},
		{ModeSliced, testSprite(), 36, 54},
		{ModeTiled, testSprite(), 4, 6},
		{ModeFilled, nil, 4, 6},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			var b Buffer
			p := DefaultParams()
			p.Mode = tt.mode

			nVtx, nIdx, err := Generate(&b, math.NewRect(0, 0, 100, 100), tt.spr, white, p)
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}
			if nVtx != tt.nVtx || nIdx != tt.nIdx {
				t.Errorf("counts = %d, %d, want %d, %d", nVtx, nIdx, tt.nVtx, tt.nIdx)
			}
			if b.VertexCount() != nVtx || b.IndexCount() != nIdx {
				t.Errorf("buffer counts %d, %d do not match returned %d, %d",
					b.VertexCount(), b.IndexCount(), nVtx, nIdx)
			}
		})
	}
}

func TestGenerateNegativeRect(t *testing.T) {
	for _, mode := range []Mode{ModeSimple, ModeSliced, ModeTiled, ModeFilled} {
		t.Run(mode.String(), func(t *testing.T) {
			var b Buffer
			p := DefaultParams()
			p.Mode = mode

			if _, _, err := Generate(&b, math.NewRect(0, 0, -1, 10), testSprite(), white, p); err == nil {
				t.Error("expected error for negative width")
			}
			if _, _, err := Generate(&b, math.NewRect(0, 0, 10, -1), testSprite(), white, p); err == nil {
				t.Error("expected error for negative height")
			}
		})
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeSimple, "simple"},
		{ModeSliced, "sliced"},
		{ModeTiled, "tiled"},
		{ModeFilled, "filled"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestFillMethodOriginLimit(t *testing.T) {
	tests := []struct {
		method FillMethod
		want   int
	}{
		{FillHorizontal, 2},
		{FillVertical, 2},
		{FillRadial90, 4},
		{FillRadial180, 4},
		{FillRadial360, 4},
	}
	for _, tt := range tests {
		if got := tt.method.originLimit(); got != tt.want {
			t.Errorf("%v.originLimit() = %d, want %d", tt.method, got, tt.want)
		}
	}
}
