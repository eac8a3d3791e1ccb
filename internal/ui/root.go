package ui

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/mediadl/media-downloader/internal/config"
	"github.com/mediadl/media-downloader/internal/download"
	"github.com/mediadl/media-downloader/internal/ffmpeg"
	"github.com/mediadl/media-downloader/internal/model"
	"github.com/mediadl/media-downloader/internal/platform"
)

// Status line markers, matching the log coloring phases
const (
	MarkerSucceeded = "✔ "
	MarkerFailed    = "❌ "
)

// Log panel limits
const (
	MaxLogLines = 500
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization

	downloadSvc download.BatchDownloader
	acquisition *ffmpeg.Acquisition

	urlEntry     *widget.Entry
	formatSelect *widget.Select
	folderLabel  *widget.Label
	folderBtn    *widget.Button
	downloadBtn  *widget.Button
	cancelBtn    *widget.Button
	themeBtn     *widget.Button
	showLogCheck *widget.Check
	progressBar  *widget.ProgressBar
	statusLabel  *widget.Label

	logContainer *fyne.Container
	logLabel     *widget.Label
	logMutex     sync.Mutex
	logLines     []string

	// formatOrder maps the select widget's option index to a selector
	formatOrder []model.FormatSelector

	batchMutex   sync.Mutex
	activeBatch  string
	runtimeReady bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.BatchDownloader, acquisition *ffmpeg.Acquisition) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		downloadSvc:  downloadSvc,
		acquisition:  acquisition,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	downloadSvc.SetProgressCallback(ui.onProgressEvent)
	downloadSvc.SetCompletionCallback(ui.onBatchComplete)
	acquisition.SetStateCallback(ui.onRuntimeState)
	acquisition.SetProgressCallback(ui.onRuntimeProgress)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// URL input
	ui.urlEntry = widget.NewMultiLineEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURLs))
	ui.urlEntry.SetMinRowsVisible(5)

	// Format selection
	ui.formatOrder = model.FormatSelectors()
	options := make([]string, 0, len(ui.formatOrder))
	for _, fs := range ui.formatOrder {
		options = append(options, ui.formatLabel(fs))
	}
	ui.formatSelect = widget.NewSelect(options, func(string) {
		ui.settings.SetFormat(ui.selectedFormat())
	})
	ui.formatSelect.SetSelectedIndex(ui.formatIndex(ui.settings.GetFormat()))

	// Download location
	ui.folderLabel = widget.NewLabel(fmt.Sprintf(
		ui.localization.GetText(KeySaveLocation), ui.settings.GetDownloadDirectory()))
	ui.folderLabel.Truncation = fyne.TextTruncateEllipsis
	ui.folderBtn = widget.NewButton(ui.localization.GetText(KeySelectFolder), ui.onSelectFolder)
	openFolderBtn := widget.NewButtonWithIcon("", theme.FolderOpenIcon(), ui.onOpenFolder)

	// Progress display
	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyRuntimeChecking))
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	// Action buttons
	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.downloadBtn.Disable() // enabled once the runtime check reports installed
	ui.cancelBtn = widget.NewButton(ui.localization.GetText(KeyCancel), ui.onCancelClick)
	ui.cancelBtn.Disable()

	// Header controls
	ui.themeBtn = widget.NewButton(ui.themeButtonLabel(), ui.onToggleTheme)
	ui.showLogCheck = widget.NewCheck(ui.localization.GetText(KeyShowLog), ui.onToggleLog)
	ui.showLogCheck.SetChecked(ui.settings.GetShowLog())

	// Status log
	ui.logLabel = widget.NewLabel("")
	ui.logLabel.Wrapping = fyne.TextWrapWord
	logScroll := container.NewVScroll(ui.logLabel)
	logScroll.SetMinSize(fyne.NewSize(0, 140))
	ui.logContainer = container.NewStack(logScroll)
	if !ui.settings.GetShowLog() {
		ui.logContainer.Hide()
	}

	header := container.NewBorder(nil, nil,
		widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.themeBtn)

	folderRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(ui.folderBtn, openFolderBtn), ui.folderLabel)
	optionsBox := container.NewVBox(
		widget.NewLabel(ui.localization.GetText(KeyQuality)),
		ui.formatSelect,
		folderRow,
	)

	buttonRow := container.NewGridWithColumns(2, ui.downloadBtn, ui.cancelBtn)

	content := container.NewVBox(
		header,
		widget.NewLabel(ui.localization.GetText(KeyMediaURLs)),
		ui.urlEntry,
		widget.NewCard("", ui.localization.GetText(KeyDownloadOptions), optionsBox),
		ui.progressBar,
		ui.statusLabel,
		buttonRow,
		ui.showLogCheck,
		ui.logContainer,
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	helpMenu := fyne.NewMenu(ui.localization.GetText(KeyHelp),
		fyne.NewMenuItem(ui.localization.GetText(KeyAbout), ui.onShowAbout),
		fyne.NewMenuItem(ui.localization.GetText(KeyLicense), ui.onShowLicense),
	)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
		helpMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange switches the UI language and rebuilds translated texts
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.createMenu()
	ui.refreshUITexts()
}

// refreshUITexts updates all visible texts after a language change
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURLs))
	ui.folderBtn.SetText(ui.localization.GetText(KeySelectFolder))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.cancelBtn.SetText(ui.localization.GetText(KeyCancel))
	ui.themeBtn.SetText(ui.themeButtonLabel())
	ui.showLogCheck.Text = ui.localization.GetText(KeyShowLog)
	ui.showLogCheck.Refresh()
	ui.folderLabel.SetText(fmt.Sprintf(
		ui.localization.GetText(KeySaveLocation), ui.settings.GetDownloadDirectory()))

	selected := ui.selectedFormat()
	options := make([]string, 0, len(ui.formatOrder))
	for _, fs := range ui.formatOrder {
		options = append(options, ui.formatLabel(fs))
	}
	ui.formatSelect.Options = options
	ui.formatSelect.SetSelectedIndex(ui.formatIndex(selected))
}

// formatLabel returns the localized label for a format selector
func (ui *RootUI) formatLabel(fs model.FormatSelector) string {
	switch fs {
	case model.FormatAudioLow:
		return ui.localization.GetText(KeyFormatAudioLow)
	case model.FormatAudioHigh:
		return ui.localization.GetText(KeyFormatAudioHigh)
	case model.FormatVideo720p:
		return ui.localization.GetText(KeyFormatVideo720p)
	case model.FormatVideo1080p:
		return ui.localization.GetText(KeyFormatVideo1080p)
	default:
		return ui.localization.GetText(KeyFormatVideoBest)
	}
}

// formatIndex returns the select option index for a selector
func (ui *RootUI) formatIndex(fs model.FormatSelector) int {
	for i, candidate := range ui.formatOrder {
		if candidate == fs {
			return i
		}
	}
	return 0
}

// selectedFormat returns the selector for the current select option
func (ui *RootUI) selectedFormat() model.FormatSelector {
	index := ui.formatSelect.SelectedIndex()
	if index < 0 || index >= len(ui.formatOrder) {
		return config.DefaultFormat
	}
	return ui.formatOrder[index]
}

// onSelectFolder opens the folder chooser and stores the selection
func (ui *RootUI) onSelectFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}

		folder := uri.Path()
		ui.settings.SetDownloadDirectory(folder)
		ui.folderLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeySaveLocation), folder))
		ui.appendLog("→ " + folder)
	}, ui.window)
}

// onOpenFolder opens the download directory in the system file manager
func (ui *RootUI) onOpenFolder() {
	if err := platform.OpenFolderInManager(ui.settings.GetDownloadDirectory()); err != nil {
		log.Printf("Failed to open download folder: %v", err)
	}
}

// onDownloadClick validates input and starts a batch
func (ui *RootUI) onDownloadClick() {
	folder := ui.settings.GetDownloadDirectory()

	req, err := model.NewDownloadRequest(
		strings.Split(ui.urlEntry.Text, "\n"), folder, ui.selectedFormat())
	if err != nil {
		dialog.ShowInformation(ui.localization.GetText(KeyAppTitle),
			ui.localization.GetText(KeyNoURLs), ui.window)
		return
	}

	if err := platform.CreateDirectoryIfNotExists(folder); err != nil {
		dialog.ShowError(fmt.Errorf(ui.localization.GetText(KeyFolderError), err), ui.window)
		return
	}

	handle, err := ui.downloadSvc.StartBatch(req)
	if err != nil {
		log.Printf("StartBatch rejected: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}

	ui.batchMutex.Lock()
	ui.activeBatch = handle
	ui.batchMutex.Unlock()

	ui.downloadBtn.Disable()
	ui.cancelBtn.Enable()
	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText(ui.localization.GetText(KeyDownloadStarted))
	ui.appendLog(ui.localization.GetText(KeyDownloadStarted))
}

// onCancelClick requests cooperative cancellation of the active batch
func (ui *RootUI) onCancelClick() {
	ui.batchMutex.Lock()
	handle := ui.activeBatch
	ui.batchMutex.Unlock()

	if handle == "" {
		return
	}

	ui.cancelBtn.Disable()

	// Cancel blocks for a bounded interval; keep it off the UI thread.
	go func() {
		if err := ui.downloadSvc.Cancel(handle); err != nil {
			log.Printf("Cancel failed: %v", err)
			return
		}
		fyne.Do(func() {
			ui.statusLabel.SetText(ui.localization.GetText(KeyDownloadCancelled))
			ui.appendLog(ui.localization.GetText(KeyDownloadCancelled))
		})
	}()
}

// onProgressEvent relays worker progress into the bar, status line, and log
func (ui *RootUI) onProgressEvent(event model.ProgressEvent) {
	fyne.Do(func() {
		ui.progressBar.SetValue(float64(event.Percent) / 100)

		text := event.Text
		switch event.Phase {
		case model.PhaseSucceeded:
			text = MarkerSucceeded + text
		case model.PhaseFailed:
			text = MarkerFailed + text
		}
		ui.statusLabel.SetText(text)

		// The per-tick downloading events would flood the log.
		if event.Phase != model.PhaseDownloading {
			ui.appendLog(text)
		}
	})
}

// onBatchComplete resets the action buttons once the worker signals done
func (ui *RootUI) onBatchComplete(batchID string) {
	log.Printf("Batch %s finished", batchID)

	ui.batchMutex.Lock()
	if ui.activeBatch == batchID {
		ui.activeBatch = ""
	}
	ui.batchMutex.Unlock()

	fyne.Do(func() {
		ui.cancelBtn.Disable()
		if ui.runtimeReady {
			ui.downloadBtn.Enable()
		}
		ui.statusLabel.SetText(ui.localization.GetText(KeyDownloadCompleted))
	})
}

// onRuntimeState gates the download action on the transcoding binary state
func (ui *RootUI) onRuntimeState(state model.RuntimeState) {
	log.Printf("Runtime state: %s (path=%s message=%s)", state.Status, state.BinaryPath, state.Message)

	fyne.Do(func() {
		switch state.Status {
		case model.RuntimeChecking:
			ui.statusLabel.SetText(ui.localization.GetText(KeyRuntimeChecking))
		case model.RuntimeDownloading:
			ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyRuntimeDownload), 0))
		case model.RuntimeInstalled:
			ui.runtimeReady = true
			ui.downloadBtn.Enable()
			ui.progressBar.SetValue(0)
			ui.statusLabel.SetText(ui.localization.GetText(KeyRuntimeReady))
			ui.appendLog(ui.localization.GetText(KeyRuntimeReady))
		case model.RuntimeMissing:
			ui.runtimeReady = false
			ui.downloadBtn.Disable()
			text := fmt.Sprintf(ui.localization.GetText(KeyRuntimeMissing), state.Message)
			ui.statusLabel.SetText(text)
			ui.appendLog(MarkerFailed + text)
		}
	})
}

// onRuntimeProgress shows archive download percentages during acquisition
func (ui *RootUI) onRuntimeProgress(percent int) {
	fyne.Do(func() {
		ui.progressBar.SetValue(float64(percent) / 100)
		ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyRuntimeDownload), percent))
	})
}

// onToggleTheme switches between the light and dark variants
func (ui *RootUI) onToggleTheme() {
	dark := !ui.settings.GetDarkMode()
	ui.settings.SetDarkMode(dark)
	ui.app.Settings().SetTheme(NewAppTheme(dark))
	ui.themeBtn.SetText(ui.themeButtonLabel())
}

// themeButtonLabel names the variant the toggle switches to
func (ui *RootUI) themeButtonLabel() string {
	if ui.settings.GetDarkMode() {
		return ui.localization.GetText(KeyLightMode)
	}
	return ui.localization.GetText(KeyDarkMode)
}

// onToggleLog shows or hides the status log panel
func (ui *RootUI) onToggleLog(show bool) {
	ui.settings.SetShowLog(show)
	if show {
		ui.logContainer.Show()
	} else {
		ui.logContainer.Hide()
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.createMenu()
		ui.refreshUITexts()
	}).Show()
}

// appendLog adds a line to the status log panel
func (ui *RootUI) appendLog(line string) {
	ui.logMutex.Lock()
	ui.logLines = append(ui.logLines, line)
	if len(ui.logLines) > MaxLogLines {
		ui.logLines = ui.logLines[len(ui.logLines)-MaxLogLines:]
	}
	text := strings.Join(ui.logLines, "\n")
	ui.logMutex.Unlock()

	ui.logLabel.SetText(text)
}
