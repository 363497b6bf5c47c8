package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	// Decoders for results the standard library cannot display
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/convert"
	"github.com/ytget/image-converter/internal/form"
	"github.com/ytget/image-converter/internal/logger"
	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
)

// ImageExtensions constrains the file picker; anything else can still be dropped
var ImageExtensions = []string{
	".bmp", ".gif", ".ico", ".jpg", ".jpeg", ".pam", ".pbm", ".pgm",
	".png", ".ppm", ".pnm", ".tga", ".tif", ".tiff", ".webp",
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	form         *form.Form

	ctx    context.Context
	cancel context.CancelFunc

	fileBtn      *widget.Button
	fileLabel    *widget.Label
	formatLabel  *widget.Label
	formatSelect *widget.Select
	convertBtn   *widget.Button

	statusContainer *fyne.Container
	statusLabel     *widget.Label
	spinner         *widget.ProgressBarInfinite
	errorLabel      *widget.Label

	preview     *canvas.Image
	placeholder *widget.Label
	shown       *form.Result

	saveBtn     *widget.Button
	openBtn     *widget.Button
	copyBtn     *widget.Button
	noticeLabel *widget.Label
	lastSaved   string

	// async runs blocking work off the UI thread, do hops back onto it
	async func(func())
	do    func(func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, converter convert.Converter) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		ctx:          ctx,
		cancel:       cancel,
		async:        func(f func()) { go f() },
		do:           fyne.Do,
	}
	ui.form = form.New(converter, ui, settings.GetOutputFormat())

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.form.SetOnChange(ui.onFormChange)
	window.SetOnClosed(ui.Close)
	window.SetOnDropped(ui.onDropped)

	ui.applyView(ui.form.View())

	logger.WithField("endpoint", settings.GetEndpoint()).Info("UI initialized")
	return ui
}

// Form returns the conversion form behind the window
func (ui *RootUI) Form() *form.Form {
	return ui.form
}

// Close cancels in-flight requests and releases the displayed result
func (ui *RootUI) Close() {
	ui.cancel()
	ui.form.Close()
}

// Alert shows a blocking message; it implements form.Alerter
func (ui *RootUI) Alert(message string) {
	text := message
	if message == form.MsgNoFile {
		text = ui.localization.GetText(KeyPleaseSelectFile)
	}
	ui.do(func() {
		dialog.ShowInformation(ui.localization.GetText(KeyNotice), text, ui.window)
	})
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.fileBtn = widget.NewButton(ui.localization.GetText(KeySelectFile), ui.onSelectFileClick)
	ui.fileLabel = widget.NewLabel("")
	ui.fileLabel.Truncation = fyne.TextTruncateEllipsis

	ui.formatLabel = widget.NewLabel(ui.localization.GetText(KeyOutputFormat))
	ui.formatSelect = widget.NewSelect(model.FormatNames(), ui.onFormatChanged)
	ui.formatSelect.SetSelected(ui.form.Format().String())

	ui.convertBtn = widget.NewButton(ui.localization.GetText(KeyConvert), ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var left []fyne.CanvasObject
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = append(left, logoImage)
	}
	left = append(left, settingsBtn, ui.fileBtn)

	fileRow := container.NewBorder(nil, nil, container.NewHBox(left...), nil, ui.fileLabel)
	formatRow := container.NewBorder(nil, nil, ui.formatLabel, ui.convertBtn, ui.formatSelect)

	// Loading panel under the form (hidden by default)
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyConverting))
	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Stop()
	ui.statusContainer = container.NewBorder(nil, nil, nil, ui.statusLabel, ui.spinner)
	ui.statusContainer.Hide()

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Hide()

	top := container.NewVBox(fileRow, formatRow, ui.statusContainer, ui.errorLabel)

	ui.preview = canvas.NewImageFromResource(nil)
	ui.preview.FillMode = canvas.ImageFillContain
	ui.preview.SetMinSize(fyne.NewSize(PreviewMinWidth, PreviewMinHeight))
	ui.preview.Hide()

	ui.placeholder = widget.NewLabel(ui.localization.GetText(KeyNoResult))
	ui.placeholder.Alignment = fyne.TextAlignCenter

	center := container.NewStack(container.NewCenter(ui.placeholder), ui.preview)

	ui.saveBtn = widget.NewButton(ui.localization.GetText(KeySave), ui.onSaveClick)
	ui.openBtn = widget.NewButton(ui.localization.GetText(KeyOpen), ui.onOpenClick)
	ui.copyBtn = widget.NewButton(IconCopy, ui.onCopyPathClick)
	ui.noticeLabel = widget.NewLabel("")
	ui.noticeLabel.Truncation = fyne.TextTruncateEllipsis

	bottom := container.NewBorder(nil, nil, nil, container.NewHBox(ui.saveBtn, ui.openBtn, ui.copyBtn), ui.noticeLabel)

	content := container.NewBorder(
		top,    // top
		bottom, // bottom
		nil,    // left
		nil,    // right
		center, // center - converted image
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeySelectFile), ui.onSelectFileClick)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.fileBtn.SetText(ui.localization.GetText(KeySelectFile))
	ui.formatLabel.SetText(ui.localization.GetText(KeyOutputFormat))
	ui.convertBtn.SetText(ui.localization.GetText(KeyConvert))
	ui.statusLabel.SetText(ui.localization.GetText(KeyConverting))
	ui.placeholder.SetText(ui.localization.GetText(KeyNoResult))
	ui.saveBtn.SetText(ui.localization.GetText(KeySave))
	ui.openBtn.SetText(ui.localization.GetText(KeyOpen))

	ui.applyView(ui.form.View())
}

// onSelectFileClick opens the file picker
func (ui *RootUI) onSelectFileClick() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			logger.WithError(err).Error("File dialog failed")
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			// Cancelled: nothing selected, nothing changes
			return
		}
		defer reader.Close()
		ui.loadFile(reader, reader.URI())
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(ImageExtensions))
	fd.Show()
}

// onDropped takes the first file dropped onto the window
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	reader, err := storage.Reader(uris[0])
	if err != nil {
		ui.showReadError(uris[0], err)
		return
	}
	defer reader.Close()
	ui.loadFile(reader, uris[0])
}

func (ui *RootUI) loadFile(r io.Reader, uri fyne.URI) {
	file, err := ReadSelectedFile(r, uri.Name(), uri.MimeType(), ui.settings.GetMaxUploadSize())
	if err != nil {
		ui.showReadError(uri, err)
		return
	}
	ui.form.SelectFile(file)
}

func (ui *RootUI) showReadError(uri fyne.URI, err error) {
	logger.WithFields(logrus.Fields{
		"uri":   uri.String(),
		"error": err,
	}).Error("Failed to read selected file")
	dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorReadingFile), err), ui.window)
}

// ReadSelectedFile reads a picked file into memory. At most limit+1 bytes are
// read so an oversize file is still rejected by the upload size check
// without being loaded whole.
func ReadSelectedFile(r io.Reader, name, mimeType string, limit int64) (*model.SelectedFile, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &model.SelectedFile{
		Name:     name,
		MimeType: mimeType,
		Data:     data,
	}, nil
}

// onFormatChanged applies and remembers the chosen output format
func (ui *RootUI) onFormatChanged(name string) {
	format, err := model.ParseFormat(name)
	if err != nil {
		logger.WithError(err).Warn("Unknown format selected")
		return
	}
	ui.form.SelectFormat(format)
	ui.settings.SetOutputFormat(format)
}

// onConvertClick submits the form off the UI thread. The button is disabled
// right away so a second click cannot slip in before the form reports loading.
func (ui *RootUI) onConvertClick() {
	ui.convertBtn.Disable()
	ui.async(func() {
		err := ui.form.Submit(ui.ctx)
		if err != nil && !errors.Is(err, form.ErrSuperseded) {
			logger.WithError(err).Debug("Submission finished with error")
		}
	})
}

// onFormChange is called by the form from any goroutine
func (ui *RootUI) onFormChange(form.View) {
	// Re-read the form so views delivered out of order never regress the UI
	ui.do(func() {
		ui.applyView(ui.form.View())
	})
}

// applyView renders a form snapshot; must run on the UI thread
func (ui *RootUI) applyView(v form.View) {
	if v.FileName != "" {
		ui.fileLabel.SetText(v.FileName)
	} else {
		ui.fileLabel.SetText(ui.localization.GetText(KeyNoFileSelected))
	}

	if ui.formatSelect.Selected != v.Format.String() {
		ui.formatSelect.SetSelected(v.Format.String())
	}

	if v.CanSubmit {
		ui.convertBtn.Enable()
	} else {
		ui.convertBtn.Disable()
	}

	if v.Loading {
		ui.spinner.Start()
		ui.statusContainer.Show()
	} else {
		ui.spinner.Stop()
		ui.statusContainer.Hide()
	}

	if v.Reason != "" {
		ui.errorLabel.SetText(IconError + " " + ui.localization.GetText(KeyConversionFailed) + ": " + v.Reason)
		ui.errorLabel.Show()
	} else {
		ui.errorLabel.Hide()
	}

	switch v.Kind {
	case form.RenderImage:
		ui.showResult(v.Result)
	case form.RenderLoading:
		ui.clearResult()
		ui.placeholder.Hide()
	case form.RenderFailed:
		ui.clearResult()
		ui.placeholder.SetText(ui.localization.GetText(KeyConversionFailed))
		ui.placeholder.Show()
	default:
		ui.clearResult()
		ui.placeholder.SetText(ui.localization.GetText(KeyNoResult))
		ui.placeholder.Show()
	}

	if v.Result != nil {
		ui.saveBtn.Enable()
	} else {
		ui.saveBtn.Disable()
	}
	if ui.lastSaved != "" {
		ui.openBtn.Enable()
		ui.copyBtn.Enable()
	} else {
		ui.openBtn.Disable()
		ui.copyBtn.Disable()
	}
}

func (ui *RootUI) showResult(result *form.Result) {
	if result == ui.shown {
		return
	}
	data := result.Data()
	if data == nil {
		// Released between snapshot and render; a newer view is queued
		return
	}

	// Each result has a unique name so Fyne's image cache never shows a stale one
	ui.preview.Resource = fyne.NewStaticResource(result.Name, data)
	ui.preview.Image = nil
	ui.preview.Show()
	ui.preview.Refresh()
	ui.placeholder.Hide()

	ui.shown = result
	ui.lastSaved = ""
	ui.noticeLabel.SetText(fmt.Sprintf("%s%s%s%s"+SizeLabelFormat,
		ui.localization.GetText(KeyConversionSuccess), MiddleDotSeparator,
		result.Format.String(), MiddleDotSeparator, float64(result.Size())/1024))
}

func (ui *RootUI) clearResult() {
	if ui.shown == nil {
		return
	}
	ui.preview.Resource = nil
	ui.preview.Image = nil
	ui.preview.Hide()
	ui.shown = nil
	ui.lastSaved = ""
	ui.noticeLabel.SetText("")
}

// onSaveClick writes the displayed result into the output directory
func (ui *RootUI) onSaveClick() {
	result := ui.form.Result()
	data := result.Data()
	if data == nil {
		return
	}

	dir := ui.settings.GetOutputDirectory()
	path, err := platform.SaveResult(dir, result.Source, result.Format.Extension(), data)
	if err != nil {
		logger.WithError(err).WithField("dir", dir).Error("Failed to save result")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorSaving), err), ui.window)
		return
	}

	logger.WithFields(logrus.Fields{
		"path":   path,
		"result": result.Name,
	}).Info("Result saved")

	ui.lastSaved = path
	ui.noticeLabel.SetText(ui.localization.GetText(KeySavedTo) + " " + path)
	ui.applyView(ui.form.View())

	if ui.settings.GetAutoRevealOnSave() {
		ui.onRevealFile(path)
	}
}

// onRevealFile reveals a saved result in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	ui.async(func() {
		if err := platform.OpenFileInManager(filePath); err != nil {
			logger.WithError(err).WithField("path", filePath).Warn("Failed to reveal file")
		}
	})
}

// onOpenClick opens the last saved result with the default viewer
func (ui *RootUI) onOpenClick() {
	path := ui.lastSaved
	if path == "" {
		return
	}
	ui.async(func() {
		if err := platform.OpenFileWithDefaultApp(path); err != nil {
			logger.WithError(err).WithField("path", path).Error("Failed to open file")
			ui.do(func() {
				dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
			})
		}
	})
}

// onCopyPathClick copies the last saved path to the clipboard
func (ui *RootUI) onCopyPathClick() {
	if ui.lastSaved == "" {
		return
	}
	fyne.CurrentApp().Clipboard().SetContent(ui.lastSaved)
	ui.noticeLabel.SetText(ui.localization.GetText(KeyPathCopied))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
		ui.noticeLabel.SetText(ui.localization.GetText(KeySettingsSaved))
	}).Show()
}
