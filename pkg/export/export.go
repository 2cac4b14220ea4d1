package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/dixieflatline76/Splitter/pkg/split"
	"github.com/dixieflatline76/Splitter/util/log"
)

// ErrEmptyRegion is returned when a half covers no pixels and so is not exported.
var ErrEmptyRegion = errors.New("region is empty")

// ErrEncodeFailed is returned when encoding produced no bytes.
var ErrEncodeFailed = errors.New("encoding produced no data")

// Sink receives encoded files. Implementations decide where the bytes end up.
type Sink interface {
	Save(data []byte, suggestedName string) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(data []byte, suggestedName string) error

// Save implements Sink.
func (f SinkFunc) Save(data []byte, suggestedName string) error {
	return f(data, suggestedName)
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyRegion
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	if buf.Len() == 0 {
		return nil, ErrEncodeFailed
	}
	return buf.Bytes(), nil
}

// Item is one surface to be saved under a suggested name.
type Item struct {
	Surface *split.Surface
	Name    string
}

// Exporter encodes surfaces and hands them to a Sink.
type Exporter struct {
	encode func(image.Image) ([]byte, error)
}

// NewExporter creates an Exporter that writes PNG files.
func NewExporter() *Exporter {
	return &Exporter{encode: EncodePNG}
}

// Export encodes surface and saves it. Empty surfaces and failed encodes never reach the sink.
func (e *Exporter) Export(sink Sink, surface *split.Surface, name string) error {
	if surface.Empty() {
		log.Printf("Skipping export of %s: nothing to save", name)
		return ErrEmptyRegion
	}
	data, err := e.encode(surface.Image())
	if err != nil {
		log.Printf("Skipping export of %s: %v", name, err)
		return err
	}
	if len(data) == 0 {
		return ErrEncodeFailed
	}
	if err := sink.Save(data, name); err != nil {
		return fmt.Errorf("saving %s: %w", name, err)
	}
	log.Printf("Exported %s (%dx%d, %d bytes)", name, surface.Width(), surface.Height(), len(data))
	return nil
}

// ExportAll encodes and saves every item concurrently. Each item is attempted even when
// another fails; the first error is returned.
func (e *Exporter) ExportAll(ctx context.Context, sink Sink, items ...Item) error {
	g, ctx := errgroup.WithContext(ctx)
	errs := make([]error, len(items))
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = e.Export(sink, item.Surface, item.Name)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
