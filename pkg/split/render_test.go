package split

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	src := gradient(80, 60)

	t.Run("Copies one to one", func(t *testing.T) {
		top, bottom := ComputeRegions(NewSelection(50), 80, 60, 80, 60)
		topSurface, bottomSurface := NewSurface(), NewSurface()

		Render(src, top, topSurface)
		Render(src, bottom, bottomSurface)

		assert.Equal(t, 80, topSurface.Width())
		assert.Equal(t, 30, topSurface.Height())
		assert.Equal(t, 80, bottomSurface.Width())
		assert.Equal(t, 30, bottomSurface.Height())

		for y := 0; y < 30; y++ {
			for x := 0; x < 80; x += 7 {
				assert.Equal(t, src.At(x, y), topSurface.Image().At(x, y))
				assert.Equal(t, src.At(x, y+30), bottomSurface.Image().At(x, y))
			}
		}
	})

	t.Run("Surface matches region exactly", func(t *testing.T) {
		for pct := 0.0; pct <= 100; pct += 12.5 {
			top, bottom := ComputeRegions(NewSelection(pct), 80, 60, 80, 60)
			ts, bs := NewSurface(), NewSurface()
			Render(src, top, ts)
			Render(src, bottom, bs)
			assert.Equal(t, top.Rect().Dx(), ts.Width())
			assert.Equal(t, top.Rect().Dy(), ts.Height())
			assert.Equal(t, bottom.Rect().Dx(), bs.Width())
			assert.Equal(t, bottom.Rect().Dy(), bs.Height())
		}
	})

	t.Run("Replaces prior contents", func(t *testing.T) {
		s := NewSurface()
		Render(src, PixelRegion{0, 0, 80, 60}, s)
		Render(src, PixelRegion{0, 0, 10, 5}, s)
		assert.Equal(t, image.Rect(0, 0, 10, 5), s.Image().Bounds())
	})

	t.Run("Zero height region", func(t *testing.T) {
		s := NewSurface()
		Render(src, PixelRegion{0, 0, 80, 0}, s)
		assert.True(t, s.Empty())
	})

	t.Run("Region past the source is clamped", func(t *testing.T) {
		s := NewSurface()
		require.NotPanics(t, func() {
			Render(src, PixelRegion{0, 50, 80, 20}, s)
		})
		assert.Equal(t, 80, s.Width())
		assert.Equal(t, 20, s.Height())
		assert.Equal(t, src.At(3, 55), s.Image().At(3, 5))
		// Rows beyond the source stay transparent.
		assert.Equal(t, color.NRGBA{}, s.Image().At(3, 15))
	})

	t.Run("Non zero source origin", func(t *testing.T) {
		sub := src.SubImage(image.Rect(0, 20, 80, 60))
		s := NewSurface()
		Render(sub, PixelRegion{0, 0, 80, 10}, s)
		assert.Equal(t, src.At(5, 20), s.Image().At(5, 0))
		assert.Equal(t, src.At(5, 29), s.Image().At(5, 9))
	})

	t.Run("Nil source", func(t *testing.T) {
		s := NewSurface()
		require.NotPanics(t, func() { Render(nil, PixelRegion{0, 0, 4, 4}, s) })
		assert.Equal(t, 4, s.Width())
	})
}

func TestRenderIsIdempotent(t *testing.T) {
	src := gradient(64, 48)
	top, _ := ComputeRegions(NewSelection(37.5), 64, 48, 64, 48)

	a, b := NewSurface(), NewSurface()
	Render(src, top, a)
	Render(src, top, b)

	assert.Equal(t, a.Image().(*image.NRGBA).Pix, b.Image().(*image.NRGBA).Pix)
}
