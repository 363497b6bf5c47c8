package ui

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/logger"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	endpointEntry  *widget.Entry
	timeoutEntry   *widget.Entry
	outputDirEntry *widget.Entry
	autoRevealChk  *widget.Check
	languageSelect *widget.Select
	languageCodes  map[string]string // display name -> code
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after
// settings were stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.Validator = func(s string) error {
		if s == "" {
			return nil
		}
		return config.ValidateEndpoint(s)
	}

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinRequestTimeoutSec, config.MaxRequestTimeoutSec))

	sd.outputDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	sd.autoRevealChk = widget.NewCheck(t(KeyAutoReveal), nil)

	sd.languageCodes = make(map[string]string)
	var languageNames []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyEndpoint)+":"),
		sd.endpointEntry,

		widget.NewLabel(t(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(t(KeyOutputDirectory)+":"),
		outputDirRow,
		sd.autoRevealChk,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.endpointEntry.SetPlaceHolder(sd.settings.GetConfiguredEndpoint())
	sd.endpointEntry.SetText(sd.settings.GetEndpointOverride())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout() / time.Second)))
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.autoRevealChk.SetChecked(sd.settings.GetAutoRevealOnSave())

	lang := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == lang {
			sd.languageSelect.SetSelected(name)
		}
	}
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	if err := sd.apply(); err != nil {
		logger.WithError(err).Warn("Settings not saved")
		dialog.ShowError(err, sd.window)
		return
	}
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply validates the entries and stores them. Nothing is stored when the
// endpoint is invalid.
func (sd *SettingsDialog) apply() error {
	if err := sd.settings.SetEndpoint(sd.endpointEntry.Text); err != nil {
		return fmt.Errorf("%s: %w", sd.localization.GetText(KeyInvalidEndpoint), err)
	}

	if text := sd.timeoutEntry.Text; text != "" {
		if seconds, err := strconv.Atoi(text); err == nil {
			sd.settings.SetRequestTimeout(time.Duration(seconds) * time.Second)
		}
	}

	if dir := sd.outputDirEntry.Text; dir != "" {
		sd.settings.SetOutputDirectory(dir)
	}

	sd.settings.SetAutoRevealOnSave(sd.autoRevealChk.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	logger.WithField("endpoint", sd.settings.GetEndpoint()).Info("Settings saved")
	return nil
}
