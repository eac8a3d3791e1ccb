package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyMediaURLs         = "media_urls"
	KeyEnterURLs         = "enter_urls"
	KeyDownloadOptions   = "download_options"
	KeyQuality           = "quality"
	KeySaveLocation      = "save_location"
	KeySelectFolder      = "select_folder"
	KeyDownload          = "download"
	KeyCancel            = "cancel"
	KeyProgress          = "progress"
	KeyShowLog           = "show_log"
	KeyDarkMode          = "dark_mode"
	KeyLightMode         = "light_mode"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyHelp              = "help"
	KeyAbout             = "about"
	KeyLicense           = "license"
	KeySave              = "save"
	KeyBrowse            = "browse"
	KeyNoURLs            = "no_urls"
	KeyFolderError       = "folder_error"
	KeyDownloadStarted   = "download_started"
	KeyDownloadCompleted = "download_completed"
	KeyDownloadCancelled = "download_cancelled"
	KeyBatchRunning      = "batch_running"
	KeyRuntimeChecking   = "runtime_checking"
	KeyRuntimeDownload   = "runtime_download"
	KeyRuntimeReady      = "runtime_ready"
	KeyRuntimeMissing    = "runtime_missing"

	KeyFormatAudioLow   = "format_audio_low"
	KeyFormatAudioHigh  = "format_audio_high"
	KeyFormatVideo720p  = "format_video_720p"
	KeyFormatVideo1080p = "format_video_1080p"
	KeyFormatVideoBest  = "format_video_best"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"de": "Deutsch",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Media Downloader Pro",
		KeyMediaURLs:         "Media URLs",
		KeyEnterURLs:         "Paste URLs here, one per line",
		KeyDownloadOptions:   "Download Options",
		KeyQuality:           "Quality:",
		KeySaveLocation:      "Save location: %s",
		KeySelectFolder:      "Select folder",
		KeyDownload:          "Download",
		KeyCancel:            "Cancel",
		KeyProgress:          "Progress",
		KeyShowLog:           "Show log",
		KeyDarkMode:          "Dark mode",
		KeyLightMode:         "Light mode",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyHelp:              "Help",
		KeyAbout:             "About",
		KeyLicense:           "License",
		KeySave:              "Save",
		KeyBrowse:            "Browse",
		KeyNoURLs:            "No URLs entered!",
		KeyFolderError:       "Could not create folder: %s",
		KeyDownloadStarted:   "Download started",
		KeyDownloadCompleted: "Download completed",
		KeyDownloadCancelled: "Download cancelled",
		KeyBatchRunning:      "A download is still active",
		KeyRuntimeChecking:   "Checking for FFmpeg...",
		KeyRuntimeDownload:   "Downloading FFmpeg: %d%%",
		KeyRuntimeReady:      "FFmpeg found, downloads enabled",
		KeyRuntimeMissing:    "FFmpeg not available: %s",

		KeyFormatAudioLow:   "MP3 (192 kbps)",
		KeyFormatAudioHigh:  "MP3 (320 kbps)",
		KeyFormatVideo720p:  "MP4 (720p)",
		KeyFormatVideo1080p: "MP4 (1080p)",
		KeyFormatVideoBest:  "MP4 (Best quality)",
	}

	l.texts["de"] = map[string]string{
		KeyAppTitle:          "Media Downloader Pro",
		KeyMediaURLs:         "Medien-URLs",
		KeyEnterURLs:         "URLs hier einfügen, eine pro Zeile",
		KeyDownloadOptions:   "Download-Optionen",
		KeyQuality:           "Qualität:",
		KeySaveLocation:      "Speicherort: %s",
		KeySelectFolder:      "Ordner auswählen",
		KeyDownload:          "Herunterladen",
		KeyCancel:            "Abbrechen",
		KeyProgress:          "Fortschritt",
		KeyShowLog:           "Protokoll anzeigen",
		KeyDarkMode:          "Dunkler Modus",
		KeyLightMode:         "Heller Modus",
		KeySettings:          "Einstellungen",
		KeyFile:              "Datei",
		KeyLanguage:          "Sprache",
		KeyHelp:              "Hilfe",
		KeyAbout:             "Über",
		KeyLicense:           "Lizenz",
		KeySave:              "Speichern",
		KeyBrowse:            "Durchsuchen",
		KeyNoURLs:            "Keine URLs eingegeben!",
		KeyFolderError:       "Ordner konnte nicht erstellt werden: %s",
		KeyDownloadStarted:   "Download gestartet",
		KeyDownloadCompleted: "Download abgeschlossen",
		KeyDownloadCancelled: "Download abgebrochen",
		KeyBatchRunning:      "Ein Download läuft noch",
		KeyRuntimeChecking:   "Suche nach FFmpeg...",
		KeyRuntimeDownload:   "FFmpeg wird heruntergeladen: %d%%",
		KeyRuntimeReady:      "FFmpeg gefunden, Downloads aktiviert",
		KeyRuntimeMissing:    "FFmpeg nicht verfügbar: %s",

		KeyFormatAudioLow:   "MP3 (192 kbit/s)",
		KeyFormatAudioHigh:  "MP3 (320 kbit/s)",
		KeyFormatVideo720p:  "MP4 (720p)",
		KeyFormatVideo1080p: "MP4 (1080p)",
		KeyFormatVideoBest:  "MP4 (Beste Qualität)",
	}
}
