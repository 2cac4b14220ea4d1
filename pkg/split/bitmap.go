package split

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP decoder; imaging already brings bmp, gif and tiff
)

// ErrEmptyImage is returned when no image bytes were supplied.
var ErrEmptyImage = errors.New("no image data")

// Bitmap is a decoded image with known natural dimensions. It is never mutated after Decode.
type Bitmap struct {
	img    image.Image
	format string
}

// NewBitmap wraps an already decoded image.
func NewBitmap(img image.Image) *Bitmap {
	return &Bitmap{img: img}
}

// Decode decodes raw file bytes into a Bitmap, honouring the EXIF orientation tag of JPEGs.
func Decode(ctx context.Context, data []byte) (*Bitmap, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading image header: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding %s image: %w", format, err)
	}

	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return &Bitmap{img: img, format: format}, nil
}

// Width returns the natural width in pixels.
func (b *Bitmap) Width() int {
	return b.img.Bounds().Dx()
}

// Height returns the natural height in pixels.
func (b *Bitmap) Height() int {
	return b.img.Bounds().Dy()
}

// Format returns the name of the format the bitmap was decoded from, empty when wrapped.
func (b *Bitmap) Format() string {
	return b.format
}

// Image returns the decoded pixels. Callers must not modify them.
func (b *Bitmap) Image() image.Image {
	return b.img
}

// Scaled returns the pixels resampled to width x height. The original pixels are returned
// when the size already matches.
func (b *Bitmap) Scaled(width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	if width == b.Width() && height == b.Height() {
		return b.img
	}
	return imaging.Resize(b.img, width, height, imaging.Lanczos)
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
