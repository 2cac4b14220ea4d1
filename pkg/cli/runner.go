package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/Splitter/config"
	"github.com/dixieflatline76/Splitter/pkg/debounce"
	"github.com/dixieflatline76/Splitter/pkg/export"
	"github.com/dixieflatline76/Splitter/pkg/session"
	"github.com/dixieflatline76/Splitter/pkg/split"
	"github.com/dixieflatline76/Splitter/pkg/suggest"
	"github.com/dixieflatline76/Splitter/util/log"
)

// Report summarises a headless split.
type Report struct {
	Width, Height int
	SplitPct      float64
	Top, Bottom   split.PixelRegion
	Written       []string
	Skipped       []string
}

// renamingSink maps the default half names onto the configured ones.
type renamingSink struct {
	next  export.Sink
	names map[string]string
}

func (r renamingSink) Save(data []byte, suggestedName string) error {
	if name, ok := r.names[suggestedName]; ok {
		suggestedName = name
	}
	return r.next.Save(data, suggestedName)
}

// Run loads cfg.Input, splits it and writes the non-empty halves to cfg.OutputDir.
func Run(ctx context.Context, cfg RunnerConfig) (*Report, error) {
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.Input, err)
	}

	s := session.New(debounce.NewTimerScheduler(), session.WithResolutionMode(config.ResolutionNatural))
	defer s.Close()

	if err := s.Load(ctx, data); err != nil {
		return nil, fmt.Errorf("loading %s: %w", cfg.Input, err)
	}

	pct := cfg.SplitPct
	if cfg.Suggest {
		pct, err = suggestSplit(ctx, s, cfg)
		if err != nil {
			return nil, err
		}
	}

	if err := s.Commit(split.NewSelection(pct)); err != nil {
		return nil, err
	}
	s.Flush()

	st := s.State()
	result := s.Result()
	report := &Report{
		Width:    st.Bitmap.Width(),
		Height:   st.Bitmap.Height(),
		SplitPct: pct,
		Top:      result.Top,
		Bottom:   result.Bottom,
	}

	dirSink := export.NewDirSink(cfg.OutputDir)
	sink := renamingSink{next: dirSink, names: map[string]string{
		config.TopFileName:    cfg.TopName,
		config.BottomFileName: cfg.BottomName,
	}}

	err = s.ExportBoth(ctx, sink)
	if result.Top.Empty() {
		report.Skipped = append(report.Skipped, cfg.TopName)
	}
	if result.Bottom.Empty() {
		report.Skipped = append(report.Skipped, cfg.BottomName)
	}
	report.Written = dirSink.Written()

	// An empty half is reported, not treated as a failure.
	if err != nil && !onlyEmptyRegions(err) {
		return report, err
	}
	return report, nil
}

func suggestSplit(ctx context.Context, s *session.Session, cfg RunnerConfig) (float64, error) {
	var faces *suggest.FaceStrategy
	if cfg.Strategy != config.SuggestSaliency {
		classifier, err := suggest.LoadCascade(cfg.CascadePath)
		if err != nil {
			if !errors.Is(err, suggest.ErrNoCascade) {
				return 0, err
			}
			log.Print("No face cascade given; skipping face detection")
		} else {
			faces = suggest.NewFaceStrategy(classifier, suggest.DefaultTuning())
		}
	}

	s.Drag(split.NewSelection(cfg.SplitPct))
	pct, err := s.Suggest(ctx, suggest.ForStrategy(cfg.Strategy, faces))
	if err != nil {
		return 0, fmt.Errorf("suggesting split: %w", err)
	}
	return pct, nil
}

// onlyEmptyRegions reports whether every error joined in err is ErrEmptyRegion.
func onlyEmptyRegions(err error) bool {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return errors.Is(err, export.ErrEmptyRegion)
	}
	for _, e := range joined.Unwrap() {
		if !errors.Is(e, export.ErrEmptyRegion) {
			return false
		}
	}
	return true
}

// PrintReport writes a human readable summary.
func PrintReport(w io.Writer, r *Report, verbose bool) {
	fmt.Fprintf(w, "Split %dx%d image at %.2f%%\n", r.Width, r.Height, r.SplitPct)
	if verbose {
		fmt.Fprintf(w, "  top region:    %v\n", r.Top)
		fmt.Fprintf(w, "  bottom region: %v\n", r.Bottom)
	}
	for _, path := range r.Written {
		fmt.Fprintf(w, "  wrote %s\n", filepath.Clean(path))
	}
	for _, name := range r.Skipped {
		fmt.Fprintf(w, "  skipped %s (empty)\n", name)
	}
}
