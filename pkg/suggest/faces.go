package suggest

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"sort"

	"github.com/disintegration/imaging"
	pigo "github.com/esimov/pigo/core"

	"github.com/dixieflatline76/Splitter/util/log"
)

// ErrNoCascade is returned when face detection is requested without a cascade.
var ErrNoCascade = errors.New("face cascade not loaded")

// span is a vertical band [top, bottom) in image pixels.
type span struct {
	top, bottom float64
}

// FaceStrategy moves the split off any face the line would cut through.
type FaceStrategy struct {
	classifier *pigo.Pigo
	tuning     Tuning
}

// LoadCascade reads and unpacks a pigo cascade file.
func LoadCascade(path string) (*pigo.Pigo, error) {
	if path == "" {
		return nil, ErrNoCascade
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading face cascade: %w", err)
	}
	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("unpacking face cascade: %w", err)
	}
	return classifier, nil
}

// NewFaceStrategy creates a strategy for classifier. A nil classifier makes Adjust fail
// with ErrNoCascade.
func NewFaceStrategy(classifier *pigo.Pigo, tuning Tuning) *FaceStrategy {
	return &FaceStrategy{classifier: classifier, tuning: tuning}
}

// Name implements Strategy.
func (f *FaceStrategy) Name() string { return "faces" }

// Adjust implements Strategy.
func (f *FaceStrategy) Adjust(ctx context.Context, img image.Image, splitY float64) (float64, error) {
	if f.classifier == nil {
		return splitY, ErrNoCascade
	}
	faces, err := f.detect(ctx, img)
	if err != nil {
		return splitY, err
	}
	log.Debugf("face strategy: %d faces", len(faces))
	return avoidSpans(splitY, float64(img.Bounds().Dy()), faces), nil
}

// detect returns padded face bands in image coordinates.
func (f *FaceStrategy) detect(ctx context.Context, img image.Image) ([]span, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, nil
	}

	// Detect on a thumbnail; scale boxes back afterwards.
	thumb := imaging.Clone(img)
	scale := 1.0
	if longest := max(b.Dx(), b.Dy()); f.tuning.DetectThumbSize > 0 && longest > f.tuning.DetectThumbSize {
		thumb = imaging.Fit(img, f.tuning.DetectThumbSize, f.tuning.DetectThumbSize, imaging.Linear)
		scale = float64(longest) / float64(max(thumb.Bounds().Dx(), thumb.Bounds().Dy()))
	}

	cols, rows := thumb.Bounds().Dx(), thumb.Bounds().Dy()
	minSize := min(cols, rows) * f.tuning.FaceDetectMinSizePct / 100
	if minSize < 20 {
		minSize = 20
	}

	params := pigo.CascadeParams{
		MinSize:     minSize,
		MaxSize:     max(cols, rows),
		ShiftFactor: f.tuning.FaceDetectShift,
		ScaleFactor: f.tuning.FaceScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(thumb),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	type detectResult struct {
		dets []pigo.Detection
	}
	resultChan := make(chan detectResult, 1)
	go func() {
		dets := f.classifier.RunCascade(params, 0.0)
		resultChan <- detectResult{dets: f.classifier.ClusterDetections(dets, f.tuning.FaceIoUThreshold)}
	}()

	var dets []pigo.Detection
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-resultChan:
		dets = r.dets
	}

	var faces []span
	for _, d := range dets {
		if d.Q < f.tuning.FaceDetectConfidence {
			continue
		}
		half := float64(d.Scale) / 2 * (1 + f.tuning.FacePadding)
		faces = append(faces, span{
			top:    (float64(d.Row) - half) * scale,
			bottom: (float64(d.Row) + half) * scale,
		})
	}
	return faces, nil
}

// avoidSpans returns the position nearest to splitY that does not fall strictly inside any
// span. Overlapping spans are merged first. Positions on the image border are avoided when
// an interior one exists.
func avoidSpans(splitY, height float64, spans []span) float64 {
	if len(spans) == 0 {
		return splitY
	}

	sorted := append([]span(nil), spans...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].top < sorted[j].top })

	merged := []span{sorted[0]}
	for _, s := range sorted[1:] {
		last := &merged[len(merged)-1]
		if s.top <= last.bottom {
			last.bottom = math.Max(last.bottom, s.bottom)
			continue
		}
		merged = append(merged, s)
	}

	for _, s := range merged {
		if splitY <= s.top || splitY >= s.bottom {
			continue
		}
		var candidates []float64
		for _, edge := range []float64{s.top, s.bottom} {
			if edge > 0 && edge < height {
				candidates = append(candidates, edge)
			}
		}
		if len(candidates) == 0 {
			return splitY
		}
		best := candidates[0]
		for _, c := range candidates[1:] {
			if math.Abs(c-splitY) < math.Abs(best-splitY) {
				best = c
			}
		}
		return best
	}
	return splitY
}
