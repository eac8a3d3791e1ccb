package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/mediadl/media-downloader/internal/config"
	"github.com/mediadl/media-downloader/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry *widget.Entry
	formatSelect     *widget.Select
	languageSelect   *widget.Select

	formatOrder   []model.FormatSelector
	languageOrder []string
}

// NewSettingsDialog creates a new settings dialog
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

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder(sd.localization.GetText(KeySelectFolder))

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	// Format selection
	sd.formatOrder = model.FormatSelectors()
	formatOptions := make([]string, 0, len(sd.formatOrder))
	for _, fs := range sd.formatOrder {
		formatOptions = append(formatOptions, sd.formatLabel(fs))
	}
	sd.formatSelect = widget.NewSelect(formatOptions, nil)

	// Language selection
	languageLabels := sd.localization.GetAvailableLanguages()
	sd.languageOrder = sd.languageOrder[:0]
	languageOptions := []string{}
	for code, name := range languageLabels {
		sd.languageOrder = append(sd.languageOrder, code)
		languageOptions = append(languageOptions, name)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDownloadOptions)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeySelectFolder)),
		downloadDirRow,

		widget.NewLabel(sd.localization.GetText(KeyQuality)),
		sd.formatSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.formatSelect.SetSelected(sd.formatLabel(sd.settings.GetFormat()))
	for i, code := range sd.languageOrder {
		if code == sd.settings.GetLanguage() {
			sd.languageSelect.SetSelectedIndex(i)
			break
		}
	}
}

// formatLabel returns the localized label for a format selector
func (sd *SettingsDialog) formatLabel(fs model.FormatSelector) string {
	switch fs {
	case model.FormatAudioLow:
		return sd.localization.GetText(KeyFormatAudioLow)
	case model.FormatAudioHigh:
		return sd.localization.GetText(KeyFormatAudioHigh)
	case model.FormatVideo720p:
		return sd.localization.GetText(KeyFormatVideo720p)
	case model.FormatVideo1080p:
		return sd.localization.GetText(KeyFormatVideo1080p)
	default:
		return sd.localization.GetText(KeyFormatVideoBest)
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	if index := sd.formatSelect.SelectedIndex(); index >= 0 && index < len(sd.formatOrder) {
		sd.settings.SetFormat(sd.formatOrder[index])
	}

	if index := sd.languageSelect.SelectedIndex(); index >= 0 && index < len(sd.languageOrder) {
		sd.settings.SetLanguage(sd.languageOrder[index])
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
