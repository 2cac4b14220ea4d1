package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Splitter/config"
	"github.com/dixieflatline76/Splitter/pkg/ui/setting"
)

// MockSettingsManager records the settings a panel creates.
type MockSettingsManager struct {
	selects map[string]*setting.SelectConfig
	entries map[string]*setting.TextEntrySettingConfig
	buttons map[string]*setting.ButtonWithConfirmationConfig
	refresh []func()
}

func NewMockSettingsManager() *MockSettingsManager {
	return &MockSettingsManager{
		selects: make(map[string]*setting.SelectConfig),
		entries: make(map[string]*setting.TextEntrySettingConfig),
		buttons: make(map[string]*setting.ButtonWithConfirmationConfig),
	}
}

func (m *MockSettingsManager) CreateSectionTitleLabel(desc string) *widget.Label {
	return widget.NewLabel(desc)
}

func (m *MockSettingsManager) CreateSettingTitleLabel(desc string) *widget.Label {
	return widget.NewLabel(desc)
}

func (m *MockSettingsManager) CreateSettingDescriptionLabel(desc string) fyne.CanvasObject {
	return widget.NewLabel(desc)
}

func (m *MockSettingsManager) CreateSelectSetting(cfg *setting.SelectConfig, header *fyne.Container) *widget.Select {
	m.selects[cfg.Name] = cfg
	return widget.NewSelect(cfg.Options, nil)
}

func (m *MockSettingsManager) CreateTextEntrySetting(cfg *setting.TextEntrySettingConfig, header *fyne.Container) *widget.Entry {
	m.entries[cfg.Name] = cfg
	return widget.NewEntry()
}

func (m *MockSettingsManager) CreateButtonWithConfirmationSetting(cfg *setting.ButtonWithConfirmationConfig, header *fyne.Container) *widget.Button {
	m.buttons[cfg.Name] = cfg
	return widget.NewButton(cfg.ButtonText, cfg.OnPressed)
}

func (m *MockSettingsManager) GetApplySettingsButton() *widget.Button {
	return widget.NewButton("Apply", nil)
}

func (m *MockSettingsManager) SetSettingChangedCallback(string, func()) {}

func (m *MockSettingsManager) RemoveSettingChangedCallback(string) {}

func (m *MockSettingsManager) HasPendingChanges() bool { return false }

func (m *MockSettingsManager) RegisterRefreshFunc(fn func()) {
	m.refresh = append(m.refresh, fn)
}

// Apply runs the registered refresh funcs the way the Apply button does.
func (m *MockSettingsManager) Apply() {
	for _, fn := range m.refresh {
		fn()
	}
}

func (m *MockSettingsManager) GetSettingsWindow() fyne.Window { return nil }

func TestPreferencesPanelAppliesSettings(t *testing.T) {
	sa, _ := newTestApp(t)
	sm := NewMockSettingsManager()
	sa.createPreferencesPanel(sm)

	resolution := sm.selects["Resolution"]
	require.NotNil(t, resolution)
	assert.Equal(t, []string{"Displayed resolution", "Source resolution"}, resolution.Options)
	assert.Equal(t, int(config.ResolutionDisplay), resolution.InitialValue)

	resolution.ApplyFunc(int(config.ResolutionNatural))
	assert.Equal(t, config.ResolutionNatural, sa.cfg.GetResolutionMode())
	assert.Equal(t, config.ResolutionDisplay, sa.session.State().Mode, "session follows only after apply")
	require.Len(t, sm.refresh, 1)
	sm.Apply()
	assert.Equal(t, config.ResolutionNatural, sa.session.State().Mode)
	assert.Contains(t, sa.status.Text, "Preferences applied")

	strategy := sm.selects["Strategy"]
	require.NotNil(t, strategy)
	strategy.ApplyFunc(int(config.SuggestBoth))
	assert.Equal(t, config.SuggestBoth, sa.cfg.GetSuggestStrategy())

	folder := sm.entries["Folder"]
	require.NotNil(t, folder)
	folder.ApplyFunc("/tmp/halves")
	assert.Equal(t, "/tmp/halves", sa.cfg.GetExportDir())

	cascade := sm.entries["Face cascade"]
	require.NotNil(t, cascade)
	assert.NoError(t, cascade.PostValidateCheck(""))
	assert.Error(t, cascade.PostValidateCheck(filepath.Join(t.TempDir(), "missing")))

	reset := sm.buttons["Reset"]
	require.NotNil(t, reset)
	reset.OnPressed()
	assert.Equal(t, config.ResolutionDisplay, sa.cfg.GetResolutionMode())
	assert.Equal(t, config.ResolutionDisplay, sa.session.State().Mode)
	assert.Empty(t, sa.cfg.GetExportDir())
}

func TestCheckExportDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.NoError(t, checkExportDir(""))
	assert.NoError(t, checkExportDir(dir))
	assert.NoError(t, checkExportDir(filepath.Join(dir, "new")), "missing folders are created on save")
	assert.Error(t, checkExportDir(file))
}

func TestSettingsManagerSelect(t *testing.T) {
	test.NewTempApp(t)
	sm := NewSettingsManager(test.NewWindow(nil))
	header := container.NewVBox()

	applied := -1
	sel := sm.CreateSelectSetting(&setting.SelectConfig{
		Name:         "mode",
		Options:      []string{"a", "b"},
		InitialValue: 0,
		Label:        widget.NewLabel("Mode"),
		ApplyFunc:    func(i int) { applied = i },
	}, header)

	assert.Len(t, header.Objects, 1)
	assert.True(t, sm.GetApplySettingsButton().Disabled())

	sel.SetSelectedIndex(1)
	assert.True(t, sm.HasPendingChanges())
	assert.False(t, sm.GetApplySettingsButton().Disabled())

	sel.SetSelectedIndex(0)
	assert.False(t, sm.HasPendingChanges(), "back to the initial value")

	sel.SetSelectedIndex(1)
	refreshed := false
	sm.RegisterRefreshFunc(func() { refreshed = true })
	test.Tap(sm.GetApplySettingsButton())

	assert.Equal(t, 1, applied)
	assert.True(t, refreshed)
	assert.False(t, sm.HasPendingChanges())
	assert.True(t, sm.GetApplySettingsButton().Disabled())
}

func TestSettingsManagerTextEntry(t *testing.T) {
	test.NewTempApp(t)
	sm := NewSettingsManager(test.NewWindow(nil))
	header := container.NewVBox()

	var applied string
	entry := sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:  "Folder",
		Label: widget.NewLabel("Folder"),
		PostValidateCheck: func(s string) error {
			return checkExportDir(s)
		},
		ApplyFunc: func(s string) { applied = s },
	}, header)

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	entry.SetText(file)
	assert.False(t, sm.HasPendingChanges(), "invalid values are never applied")

	dir := t.TempDir()
	entry.SetText(dir)
	assert.True(t, sm.HasPendingChanges())

	test.Tap(sm.GetApplySettingsButton())
	assert.Equal(t, dir, applied)
}

func TestSplitLayout(t *testing.T) {
	left := widget.NewLabel("left")
	right := widget.NewLabel("right")
	row := NewSplitRowWithAlignment(left, right, SplitProportion.OneFourth, SplitAlign.Opposed)
	row.Resize(fyne.NewSize(400, 40))

	assert.Equal(t, float32(100), left.Size().Width)
	assert.Equal(t, float32(300), right.Size().Width)
	assert.Equal(t, float32(0), left.Position().X)
	assert.Equal(t, float32(100), right.Position().X)
}
