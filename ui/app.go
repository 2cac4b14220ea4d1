package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Splitter/asset"
	"github.com/dixieflatline76/Splitter/config"
	"github.com/dixieflatline76/Splitter/pkg/debounce"
	"github.com/dixieflatline76/Splitter/pkg/export"
	"github.com/dixieflatline76/Splitter/pkg/session"
	"github.com/dixieflatline76/Splitter/pkg/split"
	"github.com/dixieflatline76/Splitter/pkg/suggest"
	"github.com/dixieflatline76/Splitter/util/log"
)

// SplitterApp is the desktop front end: one editing window around a session.
type SplitterApp struct {
	app      fyne.App
	window   fyne.Window
	assetMgr *asset.Manager
	cfg      *config.AppConfig
	session  *session.Session

	overlay     *SplitOverlay
	imageScroll *container.Scroll
	top         *previewPanel
	bottom      *previewPanel
	status      *widget.Label
	suggestBtn  *widget.Button
	saveBothBtn *widget.Button

	settingsWindow fyne.Window
}

// New creates the application with the platform driver.
func New() *SplitterApp {
	return NewSplitterApp(app.NewWithID(config.AppID), debounce.NewTimerScheduler())
}

// NewSplitterApp builds the main window on a. Recomputes are scheduled on scheduler.
func NewSplitterApp(a fyne.App, scheduler debounce.Scheduler) *SplitterApp {
	sa := &SplitterApp{
		app:      a,
		assetMgr: asset.NewManager(),
		cfg:      config.NewAppConfig(a.Preferences()),
	}
	sa.session = session.New(scheduler,
		session.WithResolutionMode(sa.cfg.GetResolutionMode()),
		session.OnRendered(sa.onRendered),
	)

	if icon, err := sa.assetMgr.GetIcon("splitter.svg"); err == nil {
		a.SetIcon(icon)
	}
	sa.buildMainWindow()
	return sa
}

// Window returns the editing window.
func (sa *SplitterApp) Window() fyne.Window {
	return sa.window
}

// Run shows the window and blocks until the application quits.
func (sa *SplitterApp) Run() {
	sa.window.ShowAndRun()
}

func (sa *SplitterApp) buildMainWindow() {
	sa.window = sa.app.NewWindow(config.AppName)
	sa.window.Resize(mainWindowSize)
	sa.window.SetMaster()
	sa.window.SetOnClosed(sa.session.Close)

	sa.overlay = NewSplitOverlay()
	sa.overlay.OnDragged = sa.onDragged
	sa.overlay.OnDragEnd = sa.commit

	sa.imageScroll = container.NewScroll(container.NewCenter(sa.overlay))
	sa.imageScroll.SetMinSize(fyne.NewSize(config.DisplayMaxWidth/2, config.ViewportMinHeight))

	sa.top = newPreviewPanel("Top", func() { sa.exportHalf(sa.session.ExportTop) })
	sa.bottom = newPreviewPanel("Bottom", func() { sa.exportHalf(sa.session.ExportBottom) })
	previews := container.NewVScroll(container.NewVBox(sa.top.box, widget.NewSeparator(), sa.bottom.box))
	previews.SetMinSize(fyne.NewSize(config.PreviewMaxWidth+theme.Padding()*4, 0))

	sa.status = widget.NewLabel("Open an image to start")
	sa.status.Importance = widget.LowImportance

	openBtn := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), sa.showOpenDialog)
	sa.suggestBtn = widget.NewButtonWithIcon("Suggest split", theme.SearchIcon(), sa.suggestSplit)
	sa.suggestBtn.Disable()
	sa.saveBothBtn = widget.NewButtonWithIcon("Save both", theme.DocumentSaveIcon(), sa.saveBoth)
	sa.saveBothBtn.Disable()
	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), sa.showSettings)
	aboutBtn := widget.NewButtonWithIcon("", theme.InfoIcon(), sa.showAbout)

	toolbar := container.NewHBox(openBtn, sa.suggestBtn, sa.saveBothBtn, layout.NewSpacer(), settingsBtn, aboutBtn)

	sa.window.SetContent(container.NewBorder(toolbar, sa.status, nil, previews, sa.imageScroll))
	sa.addShortcuts()
}

func (sa *SplitterApp) addShortcuts() {
	c := sa.window.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		sa.showOpenDialog()
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyT, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		if !sa.top.save.Disabled() {
			sa.exportHalf(sa.session.ExportTop)
		}
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyB, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		if !sa.bottom.save.Disabled() {
			sa.exportHalf(sa.session.ExportBottom)
		}
	})
}

func (sa *SplitterApp) showOpenDialog() {
	open := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sa.window)
			return
		}
		if r == nil {
			return // cancelled
		}
		defer r.Close()

		data, err := io.ReadAll(r)
		if err != nil {
			dialog.ShowError(fmt.Errorf("reading %s: %w", r.URI().Name(), err), sa.window)
			return
		}
		if parent, err := storage.Parent(r.URI()); err == nil {
			sa.cfg.SetLastOpenDir(parent.Path())
		}
		sa.openImage(data, r.URI().Name())
	}, sa.window)
	open.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	if loc := listableDir(sa.cfg.GetLastOpenDir()); loc != nil {
		open.SetLocation(loc)
	}
	open.Show()
}

// openImage loads data into the session and shows it. Decode failures are shown to the
// user and leave the previous image in place.
func (sa *SplitterApp) openImage(data []byte, name string) {
	if err := sa.loadImage(context.Background(), data, name); err != nil {
		log.Printf("Failed to open %s: %v", name, err)
		dialog.ShowError(fmt.Errorf("could not open %s: %w", name, err), sa.window)
	}
}

func (sa *SplitterApp) loadImage(ctx context.Context, data []byte, name string) error {
	if err := sa.session.Load(ctx, data); err != nil {
		return err
	}

	bmp := sa.session.State().Bitmap
	disp := displaySize(bmp.Width(), bmp.Height())
	sa.session.SetDisplaySize(int(disp.Width), int(disp.Height))

	sa.overlay.SetImage(bmp.Image(), disp)
	sa.top.update(nil, false)
	sa.bottom.update(nil, false)
	sa.saveBothBtn.Disable()
	sa.suggestBtn.Enable()

	sa.imageScroll.SetMinSize(viewportSize(disp))
	sa.window.Resize(windowSizeFor(disp, sa.window.Canvas().Size()))
	sa.imageScroll.Offset = fyne.NewPos(0, middleOffset(disp.Height))
	sa.imageScroll.Refresh()

	sa.window.SetTitle(fmt.Sprintf("%s - %s", config.AppName, name))
	sa.status.SetText(fmt.Sprintf("%s: %d × %d px. Drag the line to split.", name, bmp.Width(), bmp.Height()))
	return nil
}

func (sa *SplitterApp) onDragged(percent float64) {
	sa.session.Drag(split.NewSelection(percent))
	sa.status.SetText(fmt.Sprintf("Split at %.1f%%", percent))
}

// commit hands the settled selection to the session, which renders after the quiet period.
func (sa *SplitterApp) commit(percent float64) {
	if err := sa.session.Commit(split.NewSelection(percent)); err != nil {
		log.Printf("Ignoring split: %v", err)
		return
	}
	sa.status.SetText(fmt.Sprintf("Split at %.1f%%", percent))
}

// onRendered runs on the scheduler's goroutine.
func (sa *SplitterApp) onRendered(result session.Result) {
	fyne.Do(func() {
		sa.refreshPreviews(result)
	})
}

func (sa *SplitterApp) refreshPreviews(result session.Result) {
	ready := sa.session.CanExport()
	sa.top.update(sa.session.TopImage(), ready && !result.Top.Empty())
	sa.bottom.update(sa.session.BottomImage(), ready && !result.Bottom.Empty())
	if ready && (!result.Top.Empty() || !result.Bottom.Empty()) {
		sa.saveBothBtn.Enable()
	} else {
		sa.saveBothBtn.Disable()
	}
}

func (sa *SplitterApp) exportHalf(exportFn func(export.Sink) error) {
	sink := &fileSaveSink{
		window: sa.window,
		dir:    sa.cfg.GetExportDir(),
		onSaved: func(uri fyne.URI) {
			sa.status.SetText(fmt.Sprintf("Saved %s", uri.Name()))
		},
	}
	if err := exportFn(sink); err != nil {
		sa.showExportError(err)
	}
}

// saveBoth writes both halves into the export directory, asking for one first if none is set.
func (sa *SplitterApp) saveBoth() {
	dir := sa.cfg.GetExportDir()
	if dir != "" {
		sa.saveBothTo(dir)
		return
	}
	folder := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, sa.window)
			return
		}
		if uri == nil {
			return
		}
		sa.cfg.SetExportDir(uri.Path())
		sa.saveBothTo(uri.Path())
	}, sa.window)
	folder.Show()
}

func (sa *SplitterApp) saveBothTo(dir string) {
	sink := export.NewDirSink(dir)
	err := sa.session.ExportBoth(context.Background(), sink)
	if written := sink.Written(); len(written) > 0 {
		sa.status.SetText(fmt.Sprintf("Saved %d file(s) to %s", len(written), dir))
	}
	if err != nil {
		sa.showExportError(err)
	}
}

func (sa *SplitterApp) showExportError(err error) {
	log.Printf("Export failed: %v", err)
	switch {
	case errors.Is(err, session.ErrNotReady):
		err = errors.New("move the split line first")
	case errors.Is(err, export.ErrEmptyRegion):
		err = errors.New("one half is empty; move the split line away from the edge")
	}
	dialog.ShowError(err, sa.window)
}

// suggestSplit runs the configured strategy off the UI goroutine and commits the result.
func (sa *SplitterApp) suggestSplit() {
	suggester, err := sa.buildSuggester()
	if err != nil {
		dialog.ShowError(err, sa.window)
		return
	}
	sa.suggestBtn.Disable()
	sa.status.SetText("Looking for a good split…")

	go func() {
		pct, err := sa.session.Suggest(context.Background(), suggester)
		fyne.Do(func() {
			sa.suggestBtn.Enable()
			if err != nil {
				sa.status.SetText("")
				dialog.ShowError(fmt.Errorf("suggesting split: %w", err), sa.window)
				return
			}
			sa.overlay.SetPercent(pct)
			sa.commit(sa.overlay.Percent())
		})
	}()
}

func (sa *SplitterApp) buildSuggester() (*suggest.Suggester, error) {
	strategy := sa.cfg.GetSuggestStrategy()
	var faces *suggest.FaceStrategy
	if strategy != config.SuggestSaliency {
		classifier, err := suggest.LoadCascade(sa.cfg.GetFaceCascadePath())
		switch {
		case errors.Is(err, suggest.ErrNoCascade):
		case err != nil:
			return nil, err
		default:
			faces = suggest.NewFaceStrategy(classifier, suggest.DefaultTuning())
		}
	}
	return suggest.ForStrategy(strategy, faces), nil
}

// displaySize fits a width x height image into config.DisplayMaxWidth, keeping the aspect ratio.
func displaySize(width, height int) fyne.Size {
	if width <= 0 || height <= 0 {
		return fyne.NewSize(0, 0)
	}
	if width <= config.DisplayMaxWidth {
		return fyne.NewSize(float32(width), float32(height))
	}
	scale := float32(config.DisplayMaxWidth) / float32(width)
	return fyne.NewSize(config.DisplayMaxWidth, float32(int(float32(height)*scale+0.5)))
}

// viewportSize is the smallest editing viewport for an image shown at disp.
func viewportSize(disp fyne.Size) fyne.Size {
	return fyne.NewSize(disp.Width, fyne.Min(disp.Height, config.ViewportMinHeight))
}

// windowSizeFor grows current so the image fits, up to config.ViewportMaxHeight tall;
// taller images scroll.
func windowSizeFor(disp, current fyne.Size) fyne.Size {
	w := fyne.Max(current.Width, disp.Width+config.PreviewMaxWidth+windowChrome.Width)
	h := fyne.Max(current.Height, fyne.Min(disp.Height+windowChrome.Height, config.ViewportMaxHeight))
	return fyne.NewSize(w, h)
}

// middleOffset is the vertical scroll offset that brings the middle of a tall image into view.
func middleOffset(height float32) float32 {
	y := fyne.Min(height/2-config.ScrollCenterOffset, config.ScrollMaxOffset)
	return fyne.Max(y, 0)
}
