package split

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, gradient(width, height)))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	t.Run("PNG", func(t *testing.T) {
		bmp, err := Decode(context.Background(), encodePNG(t, 40, 30))
		require.NoError(t, err)
		assert.Equal(t, 40, bmp.Width())
		assert.Equal(t, 30, bmp.Height())
		assert.Equal(t, "png", bmp.Format())
	})

	t.Run("JPEG", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, imaging.Encode(&buf, gradient(16, 8), imaging.JPEG))
		bmp, err := Decode(context.Background(), buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, 16, bmp.Width())
		assert.Equal(t, "jpeg", bmp.Format())
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Decode(context.Background(), nil)
		assert.ErrorIs(t, err, ErrEmptyImage)
	})

	t.Run("Corrupt", func(t *testing.T) {
		_, err := Decode(context.Background(), []byte("definitely not an image"))
		assert.Error(t, err)
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Decode(ctx, encodePNG(t, 4, 4))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBitmapScaled(t *testing.T) {
	bmp := NewBitmap(gradient(100, 50))

	assert.Same(t, bmp.Image(), bmp.Scaled(100, 50), "same size should not resample")

	half := bmp.Scaled(50, 25)
	assert.Equal(t, 50, half.Bounds().Dx())
	assert.Equal(t, 25, half.Bounds().Dy())

	assert.True(t, bmp.Scaled(0, 10).Bounds().Empty())
}
