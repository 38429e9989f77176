package mesh

import "github.com/Faultbox/uimesh/pkg/math"

// Sprite is the read-only texture-space metadata for a drawable sprite.
// Border and Padding are defined in source-texture pixels and are converted
// to rect-local units via PixelsPerUnit before use.
type Sprite struct {
	// OuterUV is the full sprite rect in the atlas as x0, y0, x1, y1.
	OuterUV math.Vec4

	// InnerUV is the border-inset rect used by the 9-slice center cells.
	InnerUV math.Vec4

	// Border holds the 9-slice insets as left, bottom, right, top.
	Border math.Vec4

	// Padding holds the tight-mesh insets as left, bottom, right, top.
	Padding math.Vec4

	// Size is the sprite rect size in source-texture pixels.
	Size math.Vec2

	// PixelsPerUnit converts texture pixels to local units. Values <= 0
	// are treated as 1.
	PixelsPerUnit float32

	// Repeat indicates the sampler uses repeat addressing. Tiled mode
	// relies on it and warns when it is unset.
	Repeat bool
}

// HasBorder reports whether any 9-slice border side is non-zero.
func (s *Sprite) HasBorder() bool {
	return s != nil && !s.Border.IsZero()
}

// pixelsPerUnit returns the texture-to-local conversion factor.
func (s *Sprite) pixelsPerUnit() float32 {
	if s == nil || s.PixelsPerUnit <= 0 {
		return 1
	}
	return s.PixelsPerUnit
}

// outerUV returns the outer UV rect, or the zero rect for a nil sprite.
func (s *Sprite) outerUV() math.Vec4 {
	if s == nil {
		return math.Vec4{}
	}
	return s.OuterUV
}
