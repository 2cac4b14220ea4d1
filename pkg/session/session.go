package session

import (
	"context"
	"errors"
	"image"
	"sync"
	"time"

	"github.com/dixieflatline76/Splitter/config"
	"github.com/dixieflatline76/Splitter/pkg/debounce"
	"github.com/dixieflatline76/Splitter/pkg/export"
	"github.com/dixieflatline76/Splitter/pkg/split"
	"github.com/dixieflatline76/Splitter/pkg/suggest"
	"github.com/dixieflatline76/Splitter/util"
	"github.com/dixieflatline76/Splitter/util/log"
)

// ErrNoImage is returned by operations that need a loaded image.
var ErrNoImage = errors.New("no image loaded")

// ErrNotReady is returned by exports before the first render finished.
var ErrNotReady = errors.New("halves have not been rendered yet")

// Option configures a Session.
type Option func(*Session)

// WithQuietPeriod overrides the debounce quiet period.
func WithQuietPeriod(d time.Duration) Option {
	return func(s *Session) { s.quiet = d }
}

// WithResolutionMode sets the initial resolution mode.
func WithResolutionMode(mode config.ResolutionMode) Option {
	return func(s *Session) { s.state.Mode = mode }
}

// OnRendered registers a callback run after every finished recompute.
func OnRendered(fn func(Result)) Option {
	return func(s *Session) { s.onRendered = fn }
}

// Session holds the state of one editing window and recomputes the two halves whenever
// the committed selection settles.
type Session struct {
	mu     sync.Mutex
	state  State
	top    *split.Surface
	bottom *split.Surface
	result Result
	seq    uint64 // bumped for every new snapshot and image

	// display-sized copy of the bitmap, reused while the size is unchanged
	scaledFor  *split.Bitmap
	scaledSize image.Point
	scaled     image.Image

	quiet      time.Duration
	trigger    *debounce.Trigger[Snapshot]
	exporter   *export.Exporter
	renders    *util.SafeCounter
	ready      *util.SafeFlag
	onRendered func(Result)
}

// New creates a Session that schedules recomputes on scheduler.
func New(scheduler debounce.Scheduler, opts ...Option) *Session {
	s := &Session{
		top:      split.NewSurface(),
		bottom:   split.NewSurface(),
		quiet:    config.DebounceDelay,
		exporter: export.NewExporter(),
		renders:  util.NewSafeCounter(),
		ready:    util.NewSafeFlag(false),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.trigger = debounce.NewTrigger(scheduler, s.quiet, s.recompute)
	return s
}

// Load decodes data and makes it the current image. On failure the previous image stays.
func (s *Session) Load(ctx context.Context, data []byte) error {
	bmp, err := split.Decode(ctx, data)
	if err != nil {
		return err
	}
	s.LoadBitmap(bmp)
	return nil
}

// LoadBitmap makes bmp the current image. Pending work for the previous image is cancelled
// and the selection is reset to its initial value, uncommitted.
func (s *Session) LoadBitmap(bmp *split.Bitmap) {
	s.trigger.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.state = State{
		Bitmap:    bmp,
		Selection: split.NewSelection(config.InitialSelectionPercent),
		DisplayW:  bmp.Width(),
		DisplayH:  bmp.Height(),
		Mode:      s.state.Mode,
	}
	s.top.Reset()
	s.bottom.Reset()
	s.result = Result{}
	s.scaledFor, s.scaled = nil, nil
	s.ready.Set(false)
	log.Printf("Loaded %dx%d %s image", bmp.Width(), bmp.Height(), bmp.Format())
}

// SetDisplaySize records the size the image is shown at.
func (s *Session) SetDisplaySize(width, height int) {
	s.mu.Lock()
	if s.state.DisplayW == width && s.state.DisplayH == height {
		s.mu.Unlock()
		return
	}
	s.state.DisplayW, s.state.DisplayH = width, height
	s.mu.Unlock()
	s.renotify()
}

// SetResolutionMode chooses the pixel space the halves are cut in.
func (s *Session) SetResolutionMode(mode config.ResolutionMode) {
	s.mu.Lock()
	if s.state.Mode == mode {
		s.mu.Unlock()
		return
	}
	s.state.Mode = mode
	s.mu.Unlock()
	s.renotify()
}

// Drag updates the live selection while a gesture is in progress. It never renders.
func (s *Session) Drag(sel split.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Bitmap == nil {
		return
	}
	s.state.Selection = sel.Pinned()
}

// Commit replaces the committed selection and schedules a recompute.
func (s *Session) Commit(sel split.Selection) error {
	s.mu.Lock()
	if s.state.Bitmap == nil {
		s.mu.Unlock()
		return ErrNoImage
	}
	pinned := sel.Pinned()
	s.state.Selection = pinned
	s.state.Committed = pinned
	s.state.HasCommitted = true
	snap := s.nextSnapshotLocked()
	s.mu.Unlock()

	s.trigger.Notify(snap)
	return nil
}

// renotify reschedules a recompute after a dependency other than the selection changed.
func (s *Session) renotify() {
	s.mu.Lock()
	if s.state.Bitmap == nil || !s.state.HasCommitted {
		s.mu.Unlock()
		return
	}
	snap := s.nextSnapshotLocked()
	s.mu.Unlock()
	s.trigger.Notify(snap)
}

// nextSnapshotLocked returns the committed dependencies under a new sequence number.
// s.mu must be held.
func (s *Session) nextSnapshotLocked() Snapshot {
	s.seq++
	snap := s.state.snapshot()
	snap.Seq = s.seq
	return snap
}

// recompute renders both halves for snap. It runs on the trigger's timer.
func (s *Session) recompute(snap Snapshot) {
	if snap.Bitmap == nil {
		return
	}

	var src image.Image
	var w, h int
	switch snap.Mode {
	case config.ResolutionNatural:
		src, w, h = snap.Bitmap.Image(), snap.Bitmap.Width(), snap.Bitmap.Height()
	default:
		w, h = snap.DisplayW, snap.DisplayH
		src = s.scaledSource(snap.Bitmap, w, h)
	}

	top, bottom := split.ComputeRegions(snap.Selection,
		float64(w), float64(h),
		float64(snap.Bitmap.Width()), float64(snap.Bitmap.Height()))

	topSurface, bottomSurface := split.NewSurface(), split.NewSurface()
	split.Render(src, top, topSurface)
	split.Render(src, bottom, bottomSurface)

	s.mu.Lock()
	if snap.Seq != s.seq || snap.Bitmap != s.state.Bitmap {
		// A newer commit or image arrived while rendering; its render wins.
		s.mu.Unlock()
		log.Debugf("dropping render of snapshot %d, latest is %d", snap.Seq, s.seq)
		return
	}
	s.top, s.bottom = topSurface, bottomSurface
	result := Result{Top: top, Bottom: bottom, Generation: s.renders.Increment()}
	s.result = result
	s.ready.Set(true)
	cb := s.onRendered
	s.mu.Unlock()

	log.Debugf("render #%d top=%v bottom=%v", result.Generation, top, bottom)
	if cb != nil {
		cb(result)
	}
}

func (s *Session) scaledSource(bmp *split.Bitmap, w, h int) image.Image {
	size := image.Pt(w, h)
	s.mu.Lock()
	if s.scaledFor == bmp && s.scaledSize == size && s.scaled != nil {
		img := s.scaled
		s.mu.Unlock()
		return img
	}
	s.mu.Unlock()

	img := bmp.Scaled(w, h)

	s.mu.Lock()
	if s.state.Bitmap == bmp {
		s.scaledFor, s.scaledSize, s.scaled = bmp, size, img
	}
	s.mu.Unlock()
	return img
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result returns the regions of the last finished recompute.
func (s *Session) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Pending reports whether a recompute is scheduled.
func (s *Session) Pending() bool {
	return s.trigger.Pending()
}

// CanExport reports whether both halves have been rendered at least once for this image.
func (s *Session) CanExport() bool {
	return s.ready.Value()
}

// TopImage returns the rendered upper half.
func (s *Session) TopImage() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.top.Image()
}

// BottomImage returns the rendered lower half.
func (s *Session) BottomImage() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bottom.Image()
}

func (s *Session) surfaces() (*split.Surface, *split.Surface, error) {
	if !s.ready.Value() {
		return nil, nil, ErrNotReady
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.top, s.bottom, nil
}

// ExportTop saves the upper half to sink as top-image.png.
func (s *Session) ExportTop(sink export.Sink) error {
	top, _, err := s.surfaces()
	if err != nil {
		return err
	}
	return s.exporter.Export(sink, top, config.TopFileName)
}

// ExportBottom saves the lower half to sink as bottom-image.png.
func (s *Session) ExportBottom(sink export.Sink) error {
	_, bottom, err := s.surfaces()
	if err != nil {
		return err
	}
	return s.exporter.Export(sink, bottom, config.BottomFileName)
}

// ExportBoth saves both halves to sink concurrently.
func (s *Session) ExportBoth(ctx context.Context, sink export.Sink) error {
	top, bottom, err := s.surfaces()
	if err != nil {
		return err
	}
	return s.exporter.ExportAll(ctx, sink,
		export.Item{Surface: top, Name: config.TopFileName},
		export.Item{Surface: bottom, Name: config.BottomFileName},
	)
}

// Suggest asks suggester for a split height for the current image. The selection is not
// changed; callers commit the returned percentage if they accept it.
func (s *Session) Suggest(ctx context.Context, suggester *suggest.Suggester) (float64, error) {
	st := s.State()
	if st.Bitmap == nil {
		return 0, ErrNoImage
	}
	return suggester.Suggest(ctx, st.Bitmap.Image(), st.Selection.Height)
}

// Flush runs a pending recompute immediately. Used by the command line, which has no
// user input to wait for.
func (s *Session) Flush() {
	s.mu.Lock()
	if s.state.Bitmap == nil || !s.state.HasCommitted {
		s.mu.Unlock()
		return
	}
	snap := s.nextSnapshotLocked()
	s.mu.Unlock()

	s.trigger.Cancel()
	s.recompute(snap)
}

// Close cancels pending work. The session must not be used afterwards.
func (s *Session) Close() {
	s.trigger.Close()
}
