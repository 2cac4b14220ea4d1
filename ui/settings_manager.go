package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Splitter/pkg/ui/setting"
)

// SettingsManager handles UI elements for settings.
type SettingsManager struct {
	chgPrefsCallbacks map[string]func()
	refreshFuncs      []func()
	applyButton       *widget.Button
	prefsWindow       fyne.Window
}

// NewSettingsManager creates a new SettingsManager.
func NewSettingsManager(window fyne.Window) *SettingsManager {
	sm := &SettingsManager{
		chgPrefsCallbacks: make(map[string]func()),
		prefsWindow:       window,
	}
	sm.applyButton = widget.NewButton("Apply Changes", sm.apply)
	sm.applyButton.Importance = widget.HighImportance
	sm.applyButton.Disable()
	return sm
}

var _ setting.SettingsManager = (*SettingsManager)(nil)

func (sm *SettingsManager) apply() {
	sm.applyButton.Disable()
	callbacks := sm.chgPrefsCallbacks
	sm.chgPrefsCallbacks = make(map[string]func())
	for _, callback := range callbacks {
		callback()
	}
	if len(callbacks) > 0 {
		for _, rf := range sm.refreshFuncs {
			rf()
		}
	}
	sm.checkAndEnableApply()
}

func (sm *SettingsManager) checkAndEnableApply() {
	if sm.HasPendingChanges() {
		sm.applyButton.Enable()
	} else {
		sm.applyButton.Disable()
	}
}

// GetApplySettingsButton returns the Apply Changes button.
func (sm *SettingsManager) GetApplySettingsButton() *widget.Button {
	return sm.applyButton
}

// CreateSelectSetting creates a select row. The change is applied when the user presses Apply.
func (sm *SettingsManager) CreateSelectSetting(cfg *setting.SelectConfig, header *fyne.Container) *widget.Select {
	selectWidget := widget.NewSelect(cfg.Options, nil)
	selectWidget.SetSelectedIndex(cfg.InitialValue)

	header.Add(NewSplitRow(cfg.Label, selectWidget, SplitProportion.OneThird))
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}

	selectWidget.OnChanged = func(s string) {
		selectedIndex := selectWidget.SelectedIndex()
		if selectedIndex != cfg.InitialValue {
			sm.SetSettingChangedCallback(cfg.Name, func() {
				cfg.ApplyFunc(selectedIndex)
				cfg.InitialValue = selectedIndex
			})
		} else {
			sm.RemoveSettingChangedCallback(cfg.Name)
		}
		if cfg.OnChanged != nil {
			cfg.OnChanged(s, selectedIndex)
		}
		sm.checkAndEnableApply()
	}
	return selectWidget
}

// CreateTextEntrySetting creates a validated text entry row with a status label underneath.
func (sm *SettingsManager) CreateTextEntrySetting(cfg *setting.TextEntrySettingConfig, header *fyne.Container) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(cfg.PlaceHolder)
	entry.SetText(cfg.InitialValue)
	if cfg.Validator != nil {
		entry.Validator = cfg.Validator
	}

	statusLabel := widget.NewLabel("")

	header.Add(NewSplitRow(cfg.Label, entry, SplitProportion.OneThird))
	if cfg.HelpContent != nil {
		header.Add(NewSplitRowWithAlignment(cfg.HelpContent, statusLabel, SplitProportion.TwoThirds, SplitAlign.Opposed))
	} else {
		header.Add(NewSplitRow(widget.NewLabel(""), statusLabel, SplitProportion.TwoThirds))
	}

	entry.OnChanged = func(s string) {
		err := sm.validateEntry(cfg, entry, s)
		switch {
		case err != nil:
			statusLabel.SetText(err.Error())
			statusLabel.Importance = widget.DangerImportance
			sm.RemoveSettingChangedCallback(cfg.Name)
		case s == cfg.InitialValue:
			statusLabel.SetText("")
			sm.RemoveSettingChangedCallback(cfg.Name)
		default:
			statusLabel.SetText(fmt.Sprintf("%s OK", cfg.Name))
			statusLabel.Importance = widget.SuccessImportance
			sm.SetSettingChangedCallback(cfg.Name, func() {
				cfg.ApplyFunc(entry.Text)
				cfg.InitialValue = entry.Text
			})
		}
		statusLabel.Refresh()
		sm.checkAndEnableApply()
	}
	return entry
}

func (sm *SettingsManager) validateEntry(cfg *setting.TextEntrySettingConfig, entry *widget.Entry, s string) error {
	if cfg.Validator != nil {
		if err := entry.Validate(); err != nil {
			return err
		}
	}
	if cfg.PostValidateCheck != nil {
		return cfg.PostValidateCheck(s)
	}
	return nil
}

// CreateButtonWithConfirmationSetting creates a button that asks for confirmation when a
// title and message are given.
func (sm *SettingsManager) CreateButtonWithConfirmationSetting(cfg *setting.ButtonWithConfirmationConfig, header *fyne.Container) *widget.Button {
	button := widget.NewButton(cfg.ButtonText, func() {
		if cfg.ConfirmTitle == "" || cfg.ConfirmMessage == "" {
			cfg.OnPressed()
			return
		}
		dialog.ShowConfirm(cfg.ConfirmTitle, cfg.ConfirmMessage, func(ok bool) {
			if ok {
				cfg.OnPressed()
			}
		}, sm.prefsWindow)
	})

	if cfg.Label != nil {
		header.Add(NewSplitRow(cfg.Label, button, SplitProportion.OneThird))
	} else {
		header.Add(button)
	}
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}
	return button
}

// SetSettingChangedCallback sets a callback function to be called when a setting changes.
func (sm *SettingsManager) SetSettingChangedCallback(settingName string, callback func()) {
	sm.chgPrefsCallbacks[settingName] = callback
}

// RemoveSettingChangedCallback removes a callback function associated with a specific setting.
func (sm *SettingsManager) RemoveSettingChangedCallback(settingName string) {
	delete(sm.chgPrefsCallbacks, settingName)
}

// HasPendingChanges reports whether any setting waits to be applied.
func (sm *SettingsManager) HasPendingChanges() bool {
	return len(sm.chgPrefsCallbacks) > 0
}

// RegisterRefreshFunc registers a function to be called after changes are applied.
func (sm *SettingsManager) RegisterRefreshFunc(refreshFunc func()) {
	sm.refreshFuncs = append(sm.refreshFuncs, refreshFunc)
}

// GetSettingsWindow returns the window associated with the SettingsManager.
func (sm *SettingsManager) GetSettingsWindow() fyne.Window {
	return sm.prefsWindow
}
