package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Alignment specifies the horizontal alignment.
type Alignment int

const (
	alignLeft Alignment = iota
	alignCenter
	alignRight
	alignOpposed
)

// SplitAlign is a namespace for the Alignment constants.
var SplitAlign = struct {
	Left    Alignment // both widgets packed to the left
	Center  Alignment // both widgets centred
	Right   Alignment // both widgets packed to the right
	Opposed Alignment // first widget left, second widget right
}{
	Left:    alignLeft,
	Center:  alignCenter,
	Right:   alignRight,
	Opposed: alignOpposed,
}

// FirstWidgetProportion is the share of the row given to the first widget.
type FirstWidgetProportion float32

// SplitProportion is a namespace for the common row splits.
var SplitProportion = struct {
	OneThird  FirstWidgetProportion
	OneFourth FirstWidgetProportion
	Half      FirstWidgetProportion
	TwoThirds FirstWidgetProportion
}{
	OneThird:  1.0 / 3,
	OneFourth: 1.0 / 4,
	Half:      1.0 / 2,
	TwoThirds: 2.0 / 3,
}

// splitLayout places two widgets side by side in a fixed proportion.
type splitLayout struct {
	proportion FirstWidgetProportion
	alignment  Alignment
}

// MinSize calculates the minimum size.
func (s *splitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	w1, w2 := objects[0].MinSize(), objects[1].MinSize()
	return fyne.NewSize(w1.Width+w2.Width, fyne.Max(w1.Height, w2.Height))
}

// Layout arranges the widgets.
func (s *splitLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if len(objects) < 2 {
		return
	}
	first, second := objects[0], objects[1]

	firstWidth := containerSize.Width * float32(s.proportion)
	secondWidth := containerSize.Width - firstWidth
	first.Resize(fyne.NewSize(firstWidth, first.MinSize().Height))
	second.Resize(fyne.NewSize(secondWidth, second.MinSize().Height))

	var firstX, secondX float32
	switch s.alignment {
	case alignRight:
		firstX = containerSize.Width - firstWidth - secondWidth
		secondX = containerSize.Width - secondWidth
	case alignCenter:
		firstX = (containerSize.Width - firstWidth - secondWidth) / 2
		secondX = firstX + firstWidth
	case alignOpposed:
		secondX = containerSize.Width - secondWidth
	default:
		secondX = firstWidth
	}

	first.Move(fyne.NewPos(firstX, 0))
	second.Move(fyne.NewPos(secondX, 0))
}

// NewSplitRowWithAlignment creates a split row with specified alignment and proportion.
func NewSplitRowWithAlignment(widget1, widget2 fyne.CanvasObject, proportion FirstWidgetProportion, alignment Alignment) *fyne.Container {
	return container.New(&splitLayout{proportion: proportion, alignment: alignment}, widget1, widget2)
}

// NewSplitRow creates a split row with default (left) alignment.
func NewSplitRow(widget1, widget2 fyne.CanvasObject, proportion FirstWidgetProportion) *fyne.Container {
	return NewSplitRowWithAlignment(widget1, widget2, proportion, alignLeft)
}
