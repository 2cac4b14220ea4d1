package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Splitter/config"
	"github.com/dixieflatline76/Splitter/pkg/split"
)

const splitLineThickness float32 = 3

// SplitOverlay shows the image at its displayed size with a draggable horizontal split line.
// The selection is the region above the line; the region below is shaded.
type SplitOverlay struct {
	widget.BaseWidget

	// OnDragged is called for every drag step with the live split height in percent.
	OnDragged func(percent float64)
	// OnDragEnd is called once the gesture ends, or after a tap, with the final height.
	OnDragEnd func(percent float64)

	image       *canvas.Image
	displaySize fyne.Size
	percent     float64
}

var (
	_ fyne.Draggable = (*SplitOverlay)(nil)
	_ fyne.Tappable  = (*SplitOverlay)(nil)
)

// NewSplitOverlay creates an empty overlay.
func NewSplitOverlay() *SplitOverlay {
	o := &SplitOverlay{
		image:   canvas.NewImageFromImage(nil),
		percent: config.InitialSelectionPercent,
	}
	o.image.FillMode = canvas.ImageFillStretch
	o.image.ScaleMode = canvas.ImageScaleSmooth
	o.ExtendBaseWidget(o)
	return o
}

// SetImage shows img at displaySize and resets the split to its initial height.
func (o *SplitOverlay) SetImage(img image.Image, displaySize fyne.Size) {
	o.image.Image = img
	o.displaySize = displaySize
	o.percent = config.InitialSelectionPercent
	o.Refresh()
}

// HasImage reports whether an image is shown.
func (o *SplitOverlay) HasImage() bool {
	return o.image.Image != nil
}

// DisplaySize returns the size the image is drawn at.
func (o *SplitOverlay) DisplaySize() fyne.Size {
	return o.displaySize
}

// Percent returns the split height in percent.
func (o *SplitOverlay) Percent() float64 {
	return o.percent
}

// SetPercent moves the line without notifying the callbacks.
func (o *SplitOverlay) SetPercent(percent float64) {
	o.percent = split.NewSelection(percent).Clamped(config.MinSelectionPercent).Height
	o.Refresh()
}

// Dragged implements fyne.Draggable.
func (o *SplitOverlay) Dragged(e *fyne.DragEvent) {
	if !o.HasImage() {
		return
	}
	o.moveTo(e.Position.Y)
	if o.OnDragged != nil {
		o.OnDragged(o.percent)
	}
}

// DragEnd implements fyne.Draggable.
func (o *SplitOverlay) DragEnd() {
	if !o.HasImage() {
		return
	}
	if o.OnDragEnd != nil {
		o.OnDragEnd(o.percent)
	}
}

// Tapped moves the line to the tapped row and commits it.
func (o *SplitOverlay) Tapped(e *fyne.PointEvent) {
	if !o.HasImage() {
		return
	}
	o.moveTo(e.Position.Y)
	if o.OnDragEnd != nil {
		o.OnDragEnd(o.percent)
	}
}

func (o *SplitOverlay) moveTo(y float32) {
	if o.displaySize.Height <= 0 {
		return
	}
	pct := float64(y / o.displaySize.Height * 100)
	o.percent = split.NewSelection(pct).Clamped(config.MinSelectionPercent).Height
	o.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (o *SplitOverlay) CreateRenderer() fyne.WidgetRenderer {
	shade := canvas.NewRectangle(color.NRGBA{A: 0x60})
	line := canvas.NewRectangle(theme.Color(theme.ColorNamePrimary))
	r := &splitOverlayRenderer{overlay: o, shade: shade, line: line}
	r.objects = []fyne.CanvasObject{o.image, shade, line}
	return r
}

type splitOverlayRenderer struct {
	overlay *SplitOverlay
	shade   *canvas.Rectangle
	line    *canvas.Rectangle
	objects []fyne.CanvasObject
}

func (r *splitOverlayRenderer) Layout(size fyne.Size) {
	o := r.overlay
	o.image.Move(fyne.NewPos(0, 0))
	o.image.Resize(o.displaySize)

	visible := o.HasImage()
	r.shade.Hidden = !visible
	r.line.Hidden = !visible
	if !visible {
		return
	}

	y := float32(o.percent/100) * o.displaySize.Height
	r.shade.Move(fyne.NewPos(0, y))
	r.shade.Resize(fyne.NewSize(o.displaySize.Width, o.displaySize.Height-y))
	r.line.Move(fyne.NewPos(0, y-splitLineThickness/2))
	r.line.Resize(fyne.NewSize(o.displaySize.Width, splitLineThickness))
}

func (r *splitOverlayRenderer) MinSize() fyne.Size {
	return r.overlay.displaySize
}

func (r *splitOverlayRenderer) Refresh() {
	r.line.FillColor = theme.Color(theme.ColorNamePrimary)
	r.Layout(r.overlay.Size())
	for _, obj := range r.objects {
		obj.Refresh()
	}
}

func (r *splitOverlayRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *splitOverlayRenderer) Destroy() {}
