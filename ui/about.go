package ui

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dixieflatline76/Splitter/config"
	"github.com/dixieflatline76/Splitter/util/log"
)

var (
	bannerTop    = color.NRGBA{0x4a, 0x90, 0xd9, 0xff}
	bannerBottom = color.NRGBA{0x7f, 0xb3, 0x5a, 0xff}
	bannerLine   = color.NRGBA{0xd9, 0x4a, 0x4a, 0xff}
	bannerText   = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// drawString draws s with its baseline at (x, y).
func drawString(dst *image.NRGBA, s string, x, y int, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// aboutBanner draws the two halves and the split line with the application name.
func aboutBanner(size image.Point) *image.NRGBA {
	half := size.Y / 2
	banner := imaging.New(size.X, size.Y, bannerBottom)
	banner = imaging.Paste(banner, imaging.New(size.X, half, bannerTop), image.Pt(0, 0))
	for x := 0; x < size.X; x += 10 {
		dash := imaging.New(min(6, size.X-x), 3, bannerLine)
		banner = imaging.Paste(banner, dash, image.Pt(x, half-1))
	}
	drawString(banner, config.AppName, 12, half-12, bannerText)
	return banner
}

// addVersionWatermark adds a version watermark to the bottom right corner of img.
func addVersionWatermark(img image.Image) image.Image {
	version := config.AppVersion
	if version == "" {
		version = "dev"
	}
	versionString := fmt.Sprintf("Version: %s", version)

	b := img.Bounds()
	watermark := imaging.New(b.Dx(), b.Dy(), color.Transparent)

	bounds, _ := font.BoundString(basicfont.Face7x13, versionString)
	textWidth := bounds.Max.X.Ceil()
	drawString(watermark, versionString, b.Dx()-textWidth-10, b.Dy()-10, color.NRGBA{100, 50, 0, 200})

	return imaging.Overlay(img, watermark, image.Pt(0, 0), 1)
}

// showAbout shows the about dialog over the main window.
func (sa *SplitterApp) showAbout() {
	banner := canvas.NewImageFromImage(addVersionWatermark(aboutBanner(aboutBannerSize)))
	banner.FillMode = canvas.ImageFillOriginal

	content := container.NewVBox(banner)
	lines, err := sa.assetMgr.GetLines("about.txt")
	if err != nil {
		log.Printf("Failed to load about text: %v", err)
	}
	for _, line := range lines {
		label := widget.NewLabel(line)
		label.Wrapping = fyne.TextWrapWord
		content.Add(label)
	}

	d := dialog.NewCustom(fmt.Sprintf("About %s", config.AppName), "Close", content, sa.window)
	d.Resize(fyne.NewSize(float32(aboutBannerSize.X)+40, float32(aboutBannerSize.Y)+200))
	d.Show()
}
