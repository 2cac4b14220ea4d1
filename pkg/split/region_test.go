package split

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeRegions(t *testing.T) {
	tests := []struct {
		name         string
		height       float64
		w, h         float64
		expectTop    PixelRegion
		expectBottom PixelRegion
	}{
		{
			name:         "Even split",
			height:       50,
			w:            800,
			h:            600,
			expectTop:    PixelRegion{0, 0, 800, 300},
			expectBottom: PixelRegion{0, 300, 800, 300},
		},
		{
			name:         "Edge split at zero",
			height:       0,
			w:            800,
			h:            600,
			expectTop:    PixelRegion{0, 0, 800, 0},
			expectBottom: PixelRegion{0, 0, 800, 600},
		},
		{
			name:         "Edge split at full height",
			height:       100,
			w:            800,
			h:            600,
			expectTop:    PixelRegion{0, 0, 800, 600},
			expectBottom: PixelRegion{0, 600, 800, 0},
		},
		{
			name:         "Fractional split is kept",
			height:       33.3,
			w:            10,
			h:            10,
			expectTop:    PixelRegion{0, 0, 10, 3.33},
			expectBottom: PixelRegion{0, 3.33, 10, 10 - 3.33},
		},
		{
			name:         "Negative height clamps to zero",
			height:       -20,
			w:            100,
			h:            50,
			expectTop:    PixelRegion{0, 0, 100, 0},
			expectBottom: PixelRegion{0, 0, 100, 50},
		},
		{
			name:         "Overshoot clamps to full height",
			height:       150,
			w:            100,
			h:            50,
			expectTop:    PixelRegion{0, 0, 100, 50},
			expectBottom: PixelRegion{0, 50, 100, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, bottom := ComputeRegions(NewSelection(tt.height), tt.w, tt.h, tt.w*2, tt.h*2)
			assert.InDelta(t, tt.expectTop.Height, top.Height, 1e-9)
			assert.InDelta(t, tt.expectBottom.Y, bottom.Y, 1e-9)
			assert.InDelta(t, tt.expectBottom.Height, bottom.Height, 1e-9)
			assert.Equal(t, tt.expectTop.Width, top.Width)
			assert.Equal(t, tt.expectBottom.Width, bottom.Width)
			assert.Zero(t, top.X)
			assert.Zero(t, top.Y)
			assert.Zero(t, bottom.X)
		})
	}
}

func TestComputeRegionsPartition(t *testing.T) {
	sizes := [][2]float64{{800, 600}, {1, 1}, {333, 777}, {1920, 16383}}
	for _, size := range sizes {
		for pct := 0.0; pct <= 100; pct += 0.7 {
			top, bottom := ComputeRegions(NewSelection(pct), size[0], size[1], size[0], size[1])

			// Exact equality: bottom.Y is assigned from top.Height.
			assert.Equal(t, top.Height, bottom.Y)
			assert.InDelta(t, size[1], top.Height+bottom.Height, 1e-9)

			// Rasterised halves share their boundary row.
			tr, br := top.Rect(), bottom.Rect()
			assert.Equal(t, tr.Max.Y, br.Min.Y)
			assert.Equal(t, int(size[1]), tr.Dy()+br.Dy())
		}
	}
}

func TestComputeRegionsIsStable(t *testing.T) {
	sel := NewSelection(41.17)
	firstTop, firstBottom := ComputeRegions(sel, 1024, 768, 4096, 3072)
	for i := 0; i < 100; i++ {
		top, bottom := ComputeRegions(sel, 1024, 768, 4096, 3072)
		assert.Equal(t, firstTop, top)
		assert.Equal(t, firstBottom, bottom)
	}
}

func TestPixelRegionRect(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 800, 300), PixelRegion{0, 0, 800, 299.5}.Rect())
	assert.Equal(t, image.Rect(0, 300, 800, 600), PixelRegion{0, 299.5, 800, 300.5}.Rect())
	assert.True(t, PixelRegion{0, 10, 800, 0.2}.Empty())
	assert.True(t, PixelRegion{0, 0, 800, -5}.Empty())
	assert.False(t, PixelRegion{0, 0, 1, 1}.Empty())
	assert.Equal(t, "{0,300,800,300}", PixelRegion{0, 300, 800, 300}.String())
}

func TestSelection(t *testing.T) {
	t.Run("Pinned", func(t *testing.T) {
		s := Selection{X: 12, Y: 4, Width: 60, Height: 37}.Pinned()
		assert.Equal(t, NewSelection(37), s)
		assert.Equal(t, 100.0, s.Width)
	})

	t.Run("Clamped", func(t *testing.T) {
		assert.Equal(t, 10.0, NewSelection(2).Clamped(10).Height)
		assert.Equal(t, 100.0, NewSelection(140).Clamped(10).Height)
		assert.Equal(t, 55.0, Selection{X: 3, Width: 20, Height: 55}.Clamped(10).Height)
		assert.Equal(t, 0.0, Selection{X: 3, Width: 20, Height: 55}.Clamped(10).X)
	})
}
