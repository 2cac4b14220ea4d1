package config

import "fyne.io/fyne/v2"

// ResolutionMode selects the pixel space the halves are cut in.
type ResolutionMode int

const (
	// ResolutionDisplay cuts in the on-screen (displayed) pixel space.
	ResolutionDisplay ResolutionMode = iota
	// ResolutionNatural cuts in the source image's own pixel space.
	ResolutionNatural
)

// String returns the label shown in the preferences window.
func (m ResolutionMode) String() string {
	switch m {
	case ResolutionNatural:
		return "Source resolution"
	default:
		return "Displayed resolution"
	}
}

// ResolutionModes lists the available modes in display order.
var ResolutionModes = []ResolutionMode{ResolutionDisplay, ResolutionNatural}

// SuggestStrategy selects how the split line is suggested.
type SuggestStrategy int

const (
	// SuggestSaliency keeps the most interesting region of the image in one half.
	SuggestSaliency SuggestStrategy = iota
	// SuggestFaces keeps detected faces from being cut.
	SuggestFaces
	// SuggestBoth applies saliency first and then nudges the line off faces.
	SuggestBoth
)

// String returns the label shown in the preferences window.
func (s SuggestStrategy) String() string {
	switch s {
	case SuggestFaces:
		return "Avoid faces"
	case SuggestBoth:
		return "Salient region and faces"
	default:
		return "Salient region"
	}
}

// SuggestStrategies lists the available strategies in display order.
var SuggestStrategies = []SuggestStrategy{SuggestSaliency, SuggestFaces, SuggestBoth}

// ResolutionModeKey is the key for the resolution mode preference
const ResolutionModeKey = "resolution_mode"

// SuggestStrategyKey is the key for the split suggestion strategy preference
const SuggestStrategyKey = "suggest_strategy"

// FaceCascadePathKey is the key for the pigo face cascade file preference
const FaceCascadePathKey = "face_cascade_path"

// ExportDirKey is the key for the "save both" directory preference
const ExportDirKey = "export_dir"

// LastOpenDirKey is the key for the last directory an image was opened from
const LastOpenDirKey = "last_open_dir"

// AppConfig holds the application-wide configuration
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// GetResolutionMode returns the pixel space the halves are cut in
func (c *AppConfig) GetResolutionMode() ResolutionMode {
	mode := ResolutionMode(c.prefs.IntWithFallback(ResolutionModeKey, int(ResolutionDisplay)))
	if mode < ResolutionDisplay || mode > ResolutionNatural {
		return ResolutionDisplay
	}
	return mode
}

// SetResolutionMode sets the pixel space the halves are cut in
func (c *AppConfig) SetResolutionMode(mode ResolutionMode) {
	c.prefs.SetInt(ResolutionModeKey, int(mode))
}

// GetSuggestStrategy returns the split suggestion strategy
func (c *AppConfig) GetSuggestStrategy() SuggestStrategy {
	s := SuggestStrategy(c.prefs.IntWithFallback(SuggestStrategyKey, int(SuggestSaliency)))
	if s < SuggestSaliency || s > SuggestBoth {
		return SuggestSaliency
	}
	return s
}

// SetSuggestStrategy sets the split suggestion strategy
func (c *AppConfig) SetSuggestStrategy(s SuggestStrategy) {
	c.prefs.SetInt(SuggestStrategyKey, int(s))
}

// GetFaceCascadePath returns the path of the pigo face cascade, empty when face detection is off
func (c *AppConfig) GetFaceCascadePath() string {
	return c.prefs.StringWithFallback(FaceCascadePathKey, "")
}

// SetFaceCascadePath sets the path of the pigo face cascade
func (c *AppConfig) SetFaceCascadePath(path string) {
	c.prefs.SetString(FaceCascadePathKey, path)
}

// GetExportDir returns the directory "save both" writes into
func (c *AppConfig) GetExportDir() string {
	return c.prefs.StringWithFallback(ExportDirKey, "")
}

// SetExportDir sets the directory "save both" writes into
func (c *AppConfig) SetExportDir(dir string) {
	c.prefs.SetString(ExportDirKey, dir)
}

// GetLastOpenDir returns the directory the last image was opened from
func (c *AppConfig) GetLastOpenDir() string {
	return c.prefs.StringWithFallback(LastOpenDirKey, "")
}

// SetLastOpenDir records the directory the last image was opened from
func (c *AppConfig) SetLastOpenDir(dir string) {
	c.prefs.SetString(LastOpenDirKey, dir)
}

// Reset removes every stored preference so the defaults apply again
func (c *AppConfig) Reset() {
	for _, key := range []string{ResolutionModeKey, SuggestStrategyKey, FaceCascadePathKey, ExportDirKey, LastOpenDirKey} {
		c.prefs.RemoveValue(key)
	}
}
