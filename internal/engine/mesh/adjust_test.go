package mesh

import (
	"testing"

	"github.com/Faultbox/uimesh/pkg/math"
)

func TestAdjustBordersNoChangeWhenFitting(t *testing.T) {
	border := math.Vec4{20, 20, 20, 20}
	r := math.NewRect(0, 0, 200, 200)

	got := AdjustBorders(border, r, r)
	if got != border {
		t.Errorf("AdjustBorders() = %v, want %v", got, border)
	}
}

func TestAdjustBordersScalesWithRect(t *testing.T) {
	border := math.Vec4{10, 10, 10, 10}
	original := math.NewRect(0, 0, 100, 100)
	adjusted := math.NewRect(0, 0, 200, 100)

	got := AdjustBorders(border, original, adjusted)
	want := math.Vec4{20, 10, 20, 10}
	if got != want {
		t.Errorf("AdjustBorders() = %v, want %v", got, want)
	}
}

func TestAdjustBordersRescalesOversized(t *testing.T) {
	// Sum of left+right (40) exceeds the 30-wide rect; both sides must be
	// rescaled proportionally to fill the extent exactly.
	border := math.Vec4{20, 20, 20, 20}
	r := math.NewRect(0, 0, 30, 30)

	got := AdjustBorders(border, r, r)
	if got[0]+got[2] != 30 {
		t.Errorf("left+right = %v, want exactly 30", got[0]+got[2])
	}
	if got[1]+got[3] != 30 {
		t.Errorf("bottom+top = %v, want exactly 30", got[1]+got[3])
	}
	if got[0] != 15 || got[2] != 15 {
		t.Errorf("AdjustBorders() = %v, want 15 per side", got)
	}
}

func TestAdjustBordersAsymmetricRescale(t *testing.T) {
	border := math.Vec4{30, 0, 10, 0}
	r := math.NewRect(0, 0, 20, 100)

	got := AdjustBorders(border, r, r)
	if got[0]+got[2] != 20 {
		t.Errorf("left+right = %v, want exactly 20", got[0]+got[2])
	}
	// Proportions preserved: 3:1 split of 20.
	if math.Abs(got[0]-15) > 1e-5 || math.Abs(got[2]-5) > 1e-5 {
		t.Errorf("AdjustBorders() = %v, want {15 0 5 0}", got)
	}
}

func TestAdjustBordersIdempotent(t *testing.T) {
	tests := []struct {
		name   string
		border math.Vec4
		rect   math.Rect
	}{
		{"fitting", math.Vec4{20, 20, 20, 20}, math.NewRect(0, 0, 200, 200)},
		{"oversized", math.Vec4{20, 20, 20, 20}, math.NewRect(0, 0, 30, 30)},
		{"asymmetric", math.Vec4{30, 5, 10, 45}, math.NewRect(0, 0, 20, 25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := AdjustBorders(tt.border, tt.rect, tt.rect)
			twice := AdjustBorders(once, tt.rect, tt.rect)
			for i := range once {
				if math.Abs(once[i]-twice[i]) > 1e-4 {
					t.Errorf("not idempotent: once %v, twice %v", once, twice)
					break
				}
			}
		})
	}
}

func TestAdjustBordersZeroOriginalSize(t *testing.T) {
	border := math.Vec4{10, 10, 10, 10}
	original := math.NewRect(0, 0, 0, 0)
	adjusted := math.NewRect(0, 0, 100, 100)

	// No ratio scaling when the original extent is zero; the fit step
	// still applies but 100 > 20, so the border passes through.
	got := AdjustBorders(border, original, adjusted)
	if got != border {
		t.Errorf("AdjustBorders() = %v, want %v", got, border)
	}
}
