package split

import (
	"image"
	"image/color"
)

// gradient returns an image whose pixel at (x, y) encodes its own coordinates, so a
// copied region can be checked pixel by pixel.
func gradient(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}
	return img
}
