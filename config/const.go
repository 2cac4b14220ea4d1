package config

import (
	"strings"
	"time"
)

// AppVersion is the version of the application.
var AppVersion string // Set with -ldflags during release builds

// AppName is the name of the application.
const AppName = "Splitter"

// AppID is the fyne application identifier.
const AppID = "com.dixieflatline76.splitter"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// TopFileName is the suggested file name for the upper half.
const TopFileName = "top-image.png"

// BottomFileName is the suggested file name for the lower half.
const BottomFileName = "bottom-image.png"

// DebounceDelay is the quiet period after the last selection change before the halves are re-rendered.
const DebounceDelay = 100 * time.Millisecond

// MinSelectionPercent is the smallest split height, in percent, the split handle can be dragged to.
const MinSelectionPercent = 10.0

// InitialSelectionPercent is the split height, in percent, applied to every freshly loaded image.
const InitialSelectionPercent = 50.0

// PreviewMaxWidth is the widest a half preview is drawn on screen.
const PreviewMaxWidth = 400

// DisplayMaxWidth is the widest the image is shown in the editing viewport; larger images are scaled down.
const DisplayMaxWidth = 800

// ViewportMinHeight and ViewportMaxHeight bound the image editing viewport; taller images scroll.
const (
	ViewportMinHeight = 360
	ViewportMaxHeight = 1200
)

// ScrollCenterOffset and ScrollMaxOffset place the viewport near the middle of a tall image on load.
const (
	ScrollCenterOffset = 600
	ScrollMaxOffset    = 16383
)
