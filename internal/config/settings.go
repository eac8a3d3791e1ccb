package config

import (
	"fyne.io/fyne/v2"

	"github.com/mediadl/media-downloader/internal/model"
	"github.com/mediadl/media-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir = "download_directory"
	KeyFormat      = "format_selector"
	KeyLanguage    = "app_language"
	KeyDarkMode    = "dark_mode"
	KeyShowLog     = "show_log"
)

// Default values
const (
	DefaultFormat   = model.FormatAudioLow
	DefaultLanguage = "en"
	DefaultDarkMode = false
	DefaultShowLog  = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetFormat returns the configured format selector
func (s *Settings) GetFormat() model.FormatSelector {
	format := model.FormatSelector(s.app.Preferences().String(KeyFormat))
	if !format.IsValid() {
		s.SetFormat(DefaultFormat)
		return DefaultFormat
	}
	return format
}

// SetFormat sets the format selector
func (s *Settings) SetFormat(format model.FormatSelector) {
	if !format.IsValid() {
		format = DefaultFormat
	}
	s.app.Preferences().SetString(KeyFormat, format.String())
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDarkMode returns whether the dark theme is enabled
func (s *Settings) GetDarkMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyDarkMode, DefaultDarkMode)
}

// SetDarkMode sets the dark theme preference
func (s *Settings) SetDarkMode(dark bool) {
	s.app.Preferences().SetBool(KeyDarkMode, dark)
}

// GetShowLog returns whether the status log panel is visible
func (s *Settings) GetShowLog() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowLog, DefaultShowLog)
}

// SetShowLog sets the status log visibility
func (s *Settings) SetShowLog(show bool) {
	s.app.Preferences().SetBool(KeyShowLog, show)
}
