package mesh

import "github.com/Faultbox/uimesh/pkg/math"

// AdjustBorders fits a 9-slice border (already converted to local units)
// to the rect actually being drawn. For each axis independently the border
// is first scaled by adjusted/original size, compensating for any
// pixel-rounding expansion of the drawing rect versus the logical rect.
// If the two scaled borders on an axis then sum to more than the adjusted
// extent, both are rescaled proportionally so they exactly fill the extent
// with zero remaining center. Pure function; idempotent once the border
// fits the rect.
func AdjustBorders(border math.Vec4, original, adjusted math.Rect) math.Vec4 {
	origSize := [2]float32{original.W, original.H}
	adjSize := [2]float32{adjusted.W, adjusted.H}

	for axis := 0; axis < 2; axis++ {
		if origSize[axis] != 0 {
			ratio := adjSize[axis] / origSize[axis]
			border[axis] *= ratio
			border[axis+2] *= ratio
		}

		combined := border[axis] + border[axis+2]
		if adjSize[axis] < combined && combined != 0 {
			ratio := adjSize[axis] / combined
			border[axis] *= ratio
			border[axis+2] *= ratio
		}
	}
	return border
}
