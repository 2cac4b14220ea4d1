package suggest

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"
)

// SaliencyStrategy moves the split to an edge of the most interesting half-height band,
// so that band ends up whole in one of the two halves.
type SaliencyStrategy struct {
	resampler imaging.ResampleFilter
}

// NewSaliencyStrategy creates a smartcrop backed strategy.
func NewSaliencyStrategy() *SaliencyStrategy {
	return &SaliencyStrategy{resampler: imaging.Lanczos}
}

// Name implements Strategy.
func (s *SaliencyStrategy) Name() string { return "saliency" }

// Adjust implements Strategy.
func (s *SaliencyStrategy) Adjust(ctx context.Context, img image.Image, splitY float64) (float64, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h < 2 {
		return splitY, nil
	}

	analyzer := smartcrop.NewAnalyzer(&resizer{resampler: s.resampler})

	type cropResult struct {
		crop image.Rectangle
		err  error
	}
	resultChan := make(chan cropResult, 1)
	go func() {
		crop, err := analyzer.FindBestCrop(img, w, h/2)
		resultChan <- cropResult{crop: crop, err: err}
	}()

	var band image.Rectangle
	select {
	case <-ctx.Done():
		return splitY, ctx.Err()
	case result := <-resultChan:
		if result.err != nil {
			return splitY, fmt.Errorf("finding salient band: %w", result.err)
		}
		band = result.crop.Sub(img.Bounds().Min)
	}

	// Either band edge keeps the band in one piece; ignore edges on the image border,
	// which would leave one half empty.
	best, found := splitY, false
	for _, edge := range []int{band.Min.Y, band.Max.Y} {
		if edge <= 0 || edge >= h {
			continue
		}
		if !found || math.Abs(float64(edge)-splitY) < math.Abs(best-splitY) {
			best, found = float64(edge), true
		}
	}
	return best, nil
}

// resizer implements the smartcrop Resizer interface with imaging.
type resizer struct {
	resampler imaging.ResampleFilter
}

func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}
