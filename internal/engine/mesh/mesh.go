// Package mesh generates triangulated quad geometry for 2D rectangular UI
// elements. Four render modes are supported: a simple stretched quad, a
// 9-sliced border grid, a tiled region with wrap-mode UVs, and a partially
// filled quad driven by a fill amount (progress-bar style, linear or radial).
//
// All generators compose geometry exclusively from quads and write into a
// caller-owned Buffer that is resized to the exact required capacity before
// each pass. Generation is synchronous and single-writer; a Buffer must not
// be written by two passes concurrently.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/uimesh/pkg/math"
)

// Mode selects the geometry generation routine.
type Mode int

const (
	// ModeSimple emits one quad spanning the full rect.
	ModeSimple Mode = iota
	// ModeSliced emits a 3x3 grid of quads using the sprite border insets.
	ModeSliced
	// ModeTiled emits one quad with UVs scaled for repeat-mode sampling.
	ModeTiled
	// ModeFilled emits a quad truncated or radially clipped by a fill amount.
	ModeFilled
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSimple:
		return "simple"
	case ModeSliced:
		return "sliced"
	case ModeTiled:
		return "tiled"
	case ModeFilled:
		return "filled"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// FillMethod selects how a filled element reveals its geometry.
type FillMethod int

const (
	// FillHorizontal truncates the quad along the x axis.
	FillHorizontal FillMethod = iota
	// FillVertical truncates the quad along the y axis.
	FillVertical
	// FillRadial90 sweeps a single quad around one corner.
	FillRadial90
	// FillRadial180 sweeps two half-quads around an edge midpoint.
	FillRadial180
	// FillRadial360 sweeps four quarter-quads around the center.
	FillRadial360
)

// String returns the fill method name.
func (f FillMethod) String() string {
	switch f {
	case FillHorizontal:
		return "horizontal"
	case FillVertical:
		return "vertical"
	case FillRadial90:
		return "radial90"
	case FillRadial180:
		return "radial180"
	case FillRadial360:
		return "radial360"
	default:
		return fmt.Sprintf("FillMethod(%d)", int(f))
	}
}

// originLimit returns the number of valid fill origins for the method.
// Linear fills start from one of two edges, radial fills from one of four
// corners or edge midpoints.
func (f FillMethod) originLimit() int {
	if f == FillHorizontal || f == FillVertical {
		return 2
	}
	return 4
}

// Params carries the per-mode generation parameters. A Params value is
// constructed fresh per generation call and carries no state across calls.
type Params struct {
	Mode Mode

	// PreserveAspect shrinks the rect on one axis to match the sprite
	// aspect ratio, anchored at Pivot. Simple and Filled modes only.
	PreserveAspect bool

	// Pivot is the normalized anchor for the preserve-aspect shrink.
	Pivot math.Vec2

	// FillCenter controls whether the Sliced center cell is emitted.
	FillCenter bool

	// Filled-mode parameters.
	FillMethod    FillMethod
	FillOrigin    int
	FillAmount    float32
	FillClockwise bool
}

// DefaultParams returns Params for a fully visible, center-anchored element.
func DefaultParams() Params {
	return Params{
		Pivot:      math.Vec2{X: 0.5, Y: 0.5},
		FillCenter: true,
		FillAmount: 1,
	}
}

// Generation errors. These are precondition violations: the caller passed
// input the generators cannot produce geometry for. The buffer is left in
// its prior, still-valid state.
var (
	ErrNegativeSize  = errors.New("rect has negative size")
	ErrNegativeCount = errors.New("negative vertex or index count")
	ErrVertexRange   = errors.New("vertex count exceeds index range")
)

// Generate fills buf with geometry for the given rect, sprite metadata,
// color and parameters, and returns the populated vertex and index counts.
// spr may be nil for an untextured element. On error the buffer keeps its
// previous contents.
func Generate(buf *Buffer, rect math.Rect, spr *Sprite, color [4]float32, p Params) (nVtx, nIdx int, err error) {
	if rect.W < 0 || rect.H < 0 {
		return 0, 0, fmt.Errorf("%w: %gx%g", ErrNegativeSize, rect.W, rect.H)
	}

	switch p.Mode {
	case ModeSliced:
		return generateSliced(buf, rect, spr, color, p)
	case ModeTiled:
		return generateTiled(buf, rect, spr, color)
	case ModeFilled:
		return generateFilled(buf, rect, spr, color, p)
	default:
		return generateSimple(buf, rect, spr, color, p.PreserveAspect, p.Pivot)
	}
}
