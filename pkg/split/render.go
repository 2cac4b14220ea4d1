package split

import (
	"image"
	"image/draw"
)

// Surface is an offscreen drawing target holding the pixels of one half.
type Surface struct {
	img *image.NRGBA
}

// NewSurface returns an empty surface.
func NewSurface() *Surface {
	return &Surface{img: image.NewNRGBA(image.Rect(0, 0, 0, 0))}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.img.Bounds().Dy()
}

// Empty reports whether the surface holds no pixels.
func (s *Surface) Empty() bool {
	return s == nil || s.img.Bounds().Empty()
}

// Image returns the painted pixels. The image is replaced, never modified, by the next Render.
func (s *Surface) Image() image.Image {
	return s.img
}

// Reset discards the painted pixels.
func (s *Surface) Reset() {
	s.img = image.NewNRGBA(image.Rect(0, 0, 0, 0))
}

// Render resizes dst to the rasterised size of region and copies the matching pixels of
// src into it at (0,0), one to one. Parts of region that fall outside src are left
// transparent.
func Render(src image.Image, region PixelRegion, dst *Surface) {
	rect := region.Rect()
	canvas := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))

	if src != nil {
		// Region coordinates are relative to the source origin.
		sb := src.Bounds()
		from := rect.Add(sb.Min).Intersect(sb)
		if !from.Empty() {
			at := from.Min.Sub(sb.Min).Sub(rect.Min)
			draw.Draw(canvas, image.Rectangle{Min: at, Max: at.Add(from.Size())}, src, from.Min, draw.Src)
		}
	}

	dst.img = canvas
}
