package ui

import (
	"image"

	"fyne.io/fyne/v2"
)

// aboutBannerSize is the size of the generated banner in the about dialog
var aboutBannerSize = image.Pt(360, 140)

// mainWindowSize is the size of the editing window before an image is loaded
var mainWindowSize = fyne.NewSize(1100, 700)

// windowChrome is the room taken by the toolbar, status line and margins around the image
var windowChrome = fyne.NewSize(60, 120)

// settingsWindowSize is the size of the preferences window
var settingsWindowSize = fyne.NewSize(640, 520)

// imageExtensions are the files offered by the open dialog
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}
