package mesh

import (
	"testing"

	"github.com/Faultbox/uimesh/pkg/math"
)

func TestSimpleNoSprite(t *testing.T) {
	var b Buffer
	p := DefaultParams()

	nVtx, nIdx, err := Generate(&b, math.NewRect(0, 0, 100, 100), nil, red, p)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if nVtx != 4 || nIdx != 6 {
		t.Fatalf("counts = %d, %d, want 4, 6", nVtx, nIdx)
	}

	verts := b.Vertices()
	wantPos := [4]math.Vec2{{X: 0, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 0}}
	for i, want := range wantPos {
		if got := pos(verts, i); got != want {
			t.Errorf("vertex %d position = %v, want %v", i, got, want)
		}
		if verts[i].Position[2] != 0 {
			t.Errorf("vertex %d z = %v, want 0", i, verts[i].Position[2])
		}
		if verts[i].UV0 != ([4]float32{}) {
			t.Errorf("vertex %d UV0 = %v, want zero without sprite", i, verts[i].UV0)
		}
		if verts[i].Color != red {
			t.Errorf("vertex %d color = %v, want %v", i, verts[i].Color, red)
		}
		if verts[i].UV1 != ([4]float32{}) || verts[i].UV2 != ([4]float32{}) || verts[i].UV3 != ([4]float32{}) {
			t.Errorf("vertex %d reserved UV slots must stay zero", i)
		}
	}

	wantIdx := []uint16{0, 1, 2, 2, 3, 0}
	for i, want := range wantIdx {
		if b.Indices()[i] != want {
			t.Errorf("indices = %v, want %v", b.Indices(), wantIdx)
			break
		}
	}
}

func TestSimpleSpriteUV(t *testing.T) {
	var b Buffer
	spr := plainSprite()
	spr.OuterUV = math.Vec4{0.25, 0.5, 0.75, 1}

	_, _, err := Generate(&b, math.NewRect(0, 0, 100, 100), spr, white, DefaultParams())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	verts := b.Vertices()
	wantUV := [4][2]float32{{0.25, 0.5}, {0.25, 1}, {0.75, 1}, {0.75, 0.5}}
	for i, want := range wantUV {
		if verts[i].UV0[0] != want[0] || verts[i].UV0[1] != want[1] {
			t.Errorf("vertex %d UV = (%v, %v), want %v",
				i, verts[i].UV0[0], verts[i].UV0[1], want)
		}
	}
}

func TestSimplePreserveAspect(t *testing.T) {
	var b Buffer
	p := DefaultParams()
	p.PreserveAspect = true

	// Square sprite in a 200x100 rect: width shrinks to 100, centered.
	_, _, err := Generate(&b, math.NewRect(0, 0, 200, 100), plainSprite(), white, p)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	verts := b.Vertices()
	if got := pos(verts, 0); got != (math.Vec2{X: 50, Y: 0}) {
		t.Errorf("bottom-left = %v, want {50 0}", got)
	}
	if got := pos(verts, 2); got != (math.Vec2{X: 150, Y: 100}) {
		t.Errorf("top-right = %v, want {150 100}", got)
	}
}

func TestSimplePreserveAspectPivot(t *testing.T) {
	var b Buffer
	p := DefaultParams()
	p.PreserveAspect = true
	p.Pivot = math.Vec2{X: 0, Y: 0}

	// Anchored at the bottom-left pivot the shrink keeps x=0 fixed.
	_, _, err := Generate(&b, math.NewRect(0, 0, 200, 100), plainSprite(), white, p)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	verts := b.Vertices()
	if got := pos(verts, 0); got != (math.Vec2{X: 0, Y: 0}) {
		t.Errorf("bottom-left = %v, want {0 0}", got)
	}
	if got := pos(verts, 2); got != (math.Vec2{X: 100, Y: 100}) {
		t.Errorf("top-right = %v, want {100 100}", got)
	}
}

func TestSimplePadding(t *testing.T) {
	var b Buffer
	spr := plainSprite()
	spr.Padding = math.Vec4{10, 0, 0, 20}

	_, _, err := Generate(&b, math.NewRect(0, 0, 100, 100), spr, white, DefaultParams())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	verts := b.Vertices()
	// Left padding 10/100 of the sprite -> x0 at 10; top padding 20 -> y1 at 80.
	if got := pos(verts, 0); got != (math.Vec2{X: 10, Y: 0}) {
		t.Errorf("bottom-left = %v, want {10 0}", got)
	}
	if got := pos(verts, 2); got != (math.Vec2{X: 100, Y: 80}) {
		t.Errorf("top-right = %v, want {100 80}", got)
	}
}

func TestSimpleZeroRect(t *testing.T) {
	var b Buffer

	nVtx, nIdx, err := Generate(&b, math.NewRect(5, 5, 0, 0), nil, white, DefaultParams())
	if err != nil {
		t.Fatalf("Generate() error for zero-size rect: %v", err)
	}
	if nVtx != 4 || nIdx != 6 {
		t.Errorf("counts = %d, %d, want 4, 6", nVtx, nIdx)
	}
	if got := pos(b.Vertices(), 2); got != (math.Vec2{X: 5, Y: 5}) {
		t.Errorf("degenerate quad corner = %v, want {5 5}", got)
	}
}
