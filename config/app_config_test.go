package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestAppConfig(t *testing.T) {
	prefs := test.NewApp().Preferences()
	cfg := NewAppConfig(prefs)

	t.Run("ResolutionMode", func(t *testing.T) {
		// Default follows what the user sees on screen
		assert.Equal(t, ResolutionDisplay, cfg.GetResolutionMode())

		cfg.SetResolutionMode(ResolutionNatural)
		assert.Equal(t, ResolutionNatural, cfg.GetResolutionMode())

		// Garbage in the store falls back to the default
		prefs.SetInt(ResolutionModeKey, 42)
		assert.Equal(t, ResolutionDisplay, cfg.GetResolutionMode())
	})

	t.Run("SuggestStrategy", func(t *testing.T) {
		assert.Equal(t, SuggestSaliency, cfg.GetSuggestStrategy())

		cfg.SetSuggestStrategy(SuggestBoth)
		assert.Equal(t, SuggestBoth, cfg.GetSuggestStrategy())

		prefs.SetInt(SuggestStrategyKey, -1)
		assert.Equal(t, SuggestSaliency, cfg.GetSuggestStrategy())
	})

	t.Run("Paths", func(t *testing.T) {
		assert.Empty(t, cfg.GetFaceCascadePath())
		assert.Empty(t, cfg.GetExportDir())
		assert.Empty(t, cfg.GetLastOpenDir())

		cfg.SetFaceCascadePath("/opt/cascade/facefinder")
		cfg.SetExportDir("/tmp/halves")
		cfg.SetLastOpenDir("/home/me/Pictures")

		assert.Equal(t, "/opt/cascade/facefinder", cfg.GetFaceCascadePath())
		assert.Equal(t, "/tmp/halves", cfg.GetExportDir())
		assert.Equal(t, "/home/me/Pictures", cfg.GetLastOpenDir())
	})
}

func TestModeLabels(t *testing.T) {
	assert.Equal(t, "Displayed resolution", ResolutionDisplay.String())
	assert.Equal(t, "Source resolution", ResolutionNatural.String())
	assert.Equal(t, "Avoid faces", SuggestFaces.String())
	assert.Len(t, ResolutionModes, 2)
	assert.Len(t, SuggestStrategies, 3)
}

func TestAppConfigReset(t *testing.T) {
	cfg := NewAppConfig(test.NewApp().Preferences())
	cfg.SetResolutionMode(ResolutionNatural)
	cfg.SetSuggestStrategy(SuggestFaces)
	cfg.SetExportDir("/tmp/halves")

	cfg.Reset()

	assert.Equal(t, ResolutionDisplay, cfg.GetResolutionMode())
	assert.Equal(t, SuggestSaliency, cfg.GetSuggestStrategy())
	assert.Empty(t, cfg.GetExportDir())
	assert.Empty(t, cfg.GetFaceCascadePath())
}
