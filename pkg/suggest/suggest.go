package suggest

import (
	"context"
	"errors"
	"image"

	"github.com/dixieflatline76/Splitter/config"
	"github.com/dixieflatline76/Splitter/util/log"
)

// Strategy moves a split offset, in pixels of img, to a better position.
type Strategy interface {
	Name() string
	Adjust(ctx context.Context, img image.Image, splitY float64) (float64, error)
}

// Suggester chains strategies and converts between percentages and pixels.
type Suggester struct {
	strategies []Strategy
}

// NewSuggester creates a suggester running strategies in order.
func NewSuggester(strategies ...Strategy) *Suggester {
	return &Suggester{strategies: strategies}
}

// ForStrategy builds the chain selected in the preferences. Face detection is skipped,
// with a log line, when faces is nil.
func ForStrategy(choice config.SuggestStrategy, faces *FaceStrategy) *Suggester {
	var chain []Strategy
	switch choice {
	case config.SuggestFaces:
		if faces != nil {
			chain = append(chain, faces)
		}
	case config.SuggestBoth:
		chain = append(chain, NewSaliencyStrategy())
		if faces != nil {
			chain = append(chain, faces)
		}
	default:
		chain = append(chain, NewSaliencyStrategy())
	}
	if faces == nil && choice != config.SuggestSaliency {
		log.Print("Face detection unavailable; set a face cascade in preferences to enable it")
	}
	return NewSuggester(chain...)
}

// Suggest returns a split height percentage for img, starting from currentPercent.
// A strategy reporting ErrNoCascade is skipped; any other error stops the chain.
func (s *Suggester) Suggest(ctx context.Context, img image.Image, currentPercent float64) (float64, error) {
	h := float64(img.Bounds().Dy())
	if h == 0 {
		return currentPercent, nil
	}

	splitY := currentPercent / 100 * h
	for _, strategy := range s.strategies {
		next, err := strategy.Adjust(ctx, img, splitY)
		if errors.Is(err, ErrNoCascade) {
			continue
		}
		if err != nil {
			return currentPercent, err
		}
		log.Debugf("%s strategy moved split %.1f -> %.1f", strategy.Name(), splitY, next)
		splitY = next
	}
	return splitY / h * 100, nil
}
