package split

import (
	"fmt"
	"image"
	"math"
)

// PixelRegion is a rectangle in pixel space. Offsets may be fractional; they are only
// rasterised when the region is rendered.
type PixelRegion struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// String implements fmt.Stringer.
func (r PixelRegion) String() string {
	return fmt.Sprintf("{%g,%g,%g,%g}", r.X, r.Y, r.Width, r.Height)
}

// Rect rasterises the region by rounding each edge to the nearest pixel. Two regions
// that share an edge therefore share the same pixel row and never gap or overlap.
func (r PixelRegion) Rect() image.Rectangle {
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	x1 := int(math.Round(r.X + r.Width))
	y1 := int(math.Round(r.Y + r.Height))
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return image.Rect(x0, y0, x1, y1)
}

// Empty reports whether the rasterised region covers no pixels.
func (r PixelRegion) Empty() bool {
	return r.Rect().Empty()
}

// ComputeRegions converts a selection into the top and bottom regions of an image shown
// at displayedWidth x displayedHeight. The split is computed in displayed space because
// that is what the user judged the line against; the natural size is accepted for callers
// that want to log or compare it but does not take part in the mapping.
//
// The split offset is not rounded. It is clamped to [0, displayedHeight], so a degenerate
// selection yields a zero-height half rather than a negative one.
func ComputeRegions(sel Selection, displayedWidth, displayedHeight, naturalWidth, naturalHeight float64) (top, bottom PixelRegion) {
	splitY := sel.Height / 100 * displayedHeight
	switch {
	case math.IsNaN(splitY) || splitY < 0:
		splitY = 0
	case splitY > displayedHeight:
		splitY = displayedHeight
	}

	top = PixelRegion{X: 0, Y: 0, Width: displayedWidth, Height: splitY}
	bottom = PixelRegion{X: 0, Y: top.Height, Width: displayedWidth, Height: displayedHeight - top.Height}
	return top, bottom
}
