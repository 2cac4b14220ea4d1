package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Splitter/config"
	"github.com/dixieflatline76/Splitter/pkg/suggest"
	"github.com/dixieflatline76/Splitter/pkg/ui/setting"
	"github.com/dixieflatline76/Splitter/util"
)

// showSettings opens the preferences window, or focuses it when already open.
func (sa *SplitterApp) showSettings() {
	if sa.settingsWindow != nil {
		sa.settingsWindow.RequestFocus()
		return
	}

	w := sa.app.NewWindow(fmt.Sprintf("%s Preferences", config.AppName))
	w.Resize(settingsWindowSize)
	w.SetOnClosed(func() { sa.settingsWindow = nil })
	sa.settingsWindow = w

	sm := NewSettingsManager(w)
	w.SetContent(sa.createPreferencesPanel(sm))
	w.CenterOnScreen()
	w.Show()
}

func (sa *SplitterApp) createPreferencesPanel(sm setting.SettingsManager) fyne.CanvasObject {
	header := container.NewVBox()

	header.Add(sm.CreateSectionTitleLabel("Splitting"))
	sm.CreateSelectSetting(&setting.SelectConfig{
		Name:         "Resolution",
		Options:      setting.StringOptions(util.Stringers(config.ResolutionModes)),
		InitialValue: int(sa.cfg.GetResolutionMode()),
		Label:        sm.CreateSettingTitleLabel("Cut at:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Displayed resolution saves the halves at the size you see them. Source resolution keeps every pixel of the original."),
		ApplyFunc: func(index int) {
			sa.cfg.SetResolutionMode(config.ResolutionModes[index])
		},
	}, header)
	sm.RegisterRefreshFunc(sa.applyPreferences)

	header.Add(widget.NewSeparator())
	header.Add(sm.CreateSectionTitleLabel("Split suggestions"))
	sm.CreateSelectSetting(&setting.SelectConfig{
		Name:         "Strategy",
		Options:      setting.StringOptions(util.Stringers(config.SuggestStrategies)),
		InitialValue: int(sa.cfg.GetSuggestStrategy()),
		Label:        sm.CreateSettingTitleLabel("Suggest by:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Salient region keeps the most detailed part of the image in one half. Avoid faces needs a face cascade."),
		ApplyFunc: func(index int) {
			sa.cfg.SetSuggestStrategy(config.SuggestStrategies[index])
		},
	}, header)
	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:              "Face cascade",
		InitialValue:      sa.cfg.GetFaceCascadePath(),
		PlaceHolder:       "Path to a pigo facefinder cascade",
		Label:             sm.CreateSettingTitleLabel("Face cascade:"),
		HelpContent:       sm.CreateSettingDescriptionLabel("Leave empty to turn face detection off."),
		PostValidateCheck: checkCascadePath,
		ApplyFunc:         sa.cfg.SetFaceCascadePath,
	}, header)

	header.Add(widget.NewSeparator())
	header.Add(sm.CreateSectionTitleLabel("Saving"))
	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:              "Folder",
		InitialValue:      sa.cfg.GetExportDir(),
		PlaceHolder:       "Ask when saving both halves",
		Label:             sm.CreateSettingTitleLabel("Save both into:"),
		HelpContent:       sm.CreateSettingDescriptionLabel("Existing top and bottom images in this folder are replaced."),
		PostValidateCheck: checkExportDir,
		ApplyFunc:         sa.cfg.SetExportDir,
	}, header)

	header.Add(widget.NewSeparator())
	sm.CreateButtonWithConfirmationSetting(&setting.ButtonWithConfirmationConfig{
		Name:           "Reset",
		Label:          sm.CreateSettingTitleLabel("Defaults:"),
		ButtonText:     "Restore defaults",
		ConfirmTitle:   "Please Confirm",
		ConfirmMessage: "Restore all preferences to their defaults?",
		OnPressed:      sa.resetPreferences,
	}, header)

	closeButton := widget.NewButton("Close", func() {
		sm.GetSettingsWindow().Close()
	})
	footer := container.NewHBox(layout.NewSpacer(), sm.GetApplySettingsButton(), closeButton)

	return container.NewBorder(nil, footer, nil, nil, container.NewVScroll(header))
}

// applyPreferences pushes stored preferences the open image depends on into the session.
func (sa *SplitterApp) applyPreferences() {
	mode := sa.cfg.GetResolutionMode()
	sa.session.SetResolutionMode(mode)
	sa.status.SetText(fmt.Sprintf("Preferences applied. Cutting at %s.", strings.ToLower(mode.String())))
}

// resetPreferences clears the stored preferences and closes the window so it reopens with defaults.
func (sa *SplitterApp) resetPreferences() {
	sa.cfg.Reset()
	sa.session.SetResolutionMode(sa.cfg.GetResolutionMode())
	if sa.settingsWindow != nil {
		sa.settingsWindow.Close()
	}
}

func checkCascadePath(path string) error {
	if path == "" {
		return nil
	}
	if _, err := suggest.LoadCascade(path); err != nil {
		return errors.New("not a readable face cascade")
	}
	return nil
}

func checkExportDir(dir string) error {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil // created on first save
	case err != nil:
		return err
	case !info.IsDir():
		return errors.New("not a folder")
	}
	return nil
}
