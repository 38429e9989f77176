package mesh

import (
	"testing"

	"github.com/Faultbox/uimesh/pkg/math"
)

func tiledParams() Params {
	p := DefaultParams()
	p.Mode = ModeTiled
	return p
}

func TestTiledScalesUVs(t *testing.T) {
	var b Buffer
	spr := plainSprite() // 100x100 sprite, ppu 1, inner UV (0,0,1,1)

	// A 400x200 rect holds 4x2 tiles, so the UV max scales past 1.
	nVtx, nIdx, err := Generate(&b, math.NewRect(0, 0, 400, 200), spr, white, tiledParams())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if nVtx != 4 || nIdx != 6 {
		t.Fatalf("counts = %d, %d, want 4, 6", nVtx, nIdx)
	}

	verts := b.Vertices()
	if got := pos(verts, 0); got != (math.Vec2{X: 0, Y: 0}) {
		t.Errorf("quad min = %v, want {0 0}", got)
	}
	if got := pos(verts, 2); got != (math.Vec2{X: 400, Y: 200}) {
		t.Errorf("quad max = %v, want {400 200}", got)
	}
	if verts[2].UV0[0] != 4 || verts[2].UV0[1] != 2 {
		t.Errorf("uv max = (%v, %v), want (4, 2)", verts[2].UV0[0], verts[2].UV0[1])
	}
}

func TestTiledBordersShrinkRegion(t *testing.T) {
	var b Buffer
	spr := testSprite() // 20px borders

	_, _, err := Generate(&b, math.NewRect(0, 0, 200, 200), spr, white, tiledParams())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	verts := b.Vertices()
	if got := pos(verts, 0); got != (math.Vec2{X: 20, Y: 20}) {
		t.Errorf("tileable min = %v, want {20 20}", got)
	}
	if got := pos(verts, 2); got != (math.Vec2{X: 180, Y: 180}) {
		t.Errorf("tileable max = %v, want {180 180}", got)
	}
}

func TestTiledDegenerateTileSize(t *testing.T) {
	var b Buffer
	spr := plainSprite()
	spr.Border = math.Vec4{50, 50, 50, 50} // borders consume the whole sprite

	// Tile dimensions come out zero; the whole region counts as one tile
	// and generation must not divide by zero.
	_, _, err := Generate(&b, math.NewRect(0, 0, 300, 300), spr, white, tiledParams())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	verts := b.Vertices()
	for i := range verts {
		for _, f := range verts[i].UV0 {
			if f != f { // NaN check
				t.Fatalf("vertex %d has NaN UV: %v", i, verts[i].UV0)
			}
		}
	}
	if verts[2].UV0[0] != 1 {
		t.Errorf("uv max x = %v, want 1 (single tile)", verts[2].UV0[0])
	}
}

func TestTiledNonRepeatSpriteWarnsButSucceeds(t *testing.T) {
	var b Buffer
	spr := plainSprite()
	spr.Repeat = false

	nVtx, nIdx, err := Generate(&b, math.NewRect(0, 0, 200, 100), spr, white, tiledParams())
	if err != nil {
		t.Fatalf("non-repeat sprite must warn, not fail: %v", err)
	}
	if nVtx != 4 || nIdx != 6 {
		t.Errorf("counts = %d, %d, want 4, 6", nVtx, nIdx)
	}
}

func TestTiledNoSprite(t *testing.T) {
	var b Buffer

	nVtx, nIdx, err := Generate(&b, math.NewRect(0, 0, 100, 50), nil, white, tiledParams())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if nVtx != 4 || nIdx != 6 {
		t.Fatalf("counts = %d, %d, want 4, 6", nVtx, nIdx)
	}
	verts := b.Vertices()
	if got := pos(verts, 2); got != (math.Vec2{X: 100, Y: 50}) {
		t.Errorf("quad max = %v, want {100 50}", got)
	}
}
