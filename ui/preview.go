package ui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Splitter/config"
)

// previewPanel shows one rendered half with its size and a save button.
type previewPanel struct {
	image *canvas.Image
	info  *widget.Label
	save  *widget.Button
	box   *fyne.Container
}

func newPreviewPanel(title string, onSave func()) *previewPanel {
	p := &previewPanel{
		image: canvas.NewImageFromImage(nil),
		info:  widget.NewLabel("No image"),
		save:  widget.NewButtonWithIcon("Save "+title, theme.DocumentSaveIcon(), onSave),
	}
	p.image.FillMode = canvas.ImageFillContain
	p.image.ScaleMode = canvas.ImageScaleSmooth
	p.info.Importance = widget.LowImportance
	p.save.Disable()

	heading := widget.NewLabel(title)
	heading.TextStyle = fyne.TextStyle{Bold: true}
	p.box = container.NewVBox(heading, container.NewCenter(p.image), p.info, p.save)
	return p
}

// update replaces the preview. A nil or zero-sized image clears it.
func (p *previewPanel) update(img image.Image, canSave bool) {
	if img == nil || img.Bounds().Empty() {
		p.image.Image = nil
		p.image.SetMinSize(fyne.NewSize(0, 0))
		p.info.SetText("Empty")
	} else {
		b := img.Bounds()
		p.image.Image = img
		p.image.SetMinSize(previewSize(b.Dx(), b.Dy()))
		p.info.SetText(fmt.Sprintf("%d × %d px", b.Dx(), b.Dy()))
	}
	p.image.Refresh()

	if canSave {
		p.save.Enable()
	} else {
		p.save.Disable()
	}
}

// previewSize scales width x height down to at most config.PreviewMaxWidth wide.
func previewSize(width, height int) fyne.Size {
	if width <= 0 || height <= 0 {
		return fyne.NewSize(0, 0)
	}
	scale := float32(1)
	if width > config.PreviewMaxWidth {
		scale = float32(config.PreviewMaxWidth) / float32(width)
	}
	return fyne.NewSize(float32(width)*scale, float32(height)*scale)
}
