package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/mediadl/media-downloader/internal/config"
	"github.com/mediadl/media-downloader/internal/download"
	"github.com/mediadl/media-downloader/internal/extract"
	"github.com/mediadl/media-downloader/internal/ffmpeg"
	"github.com/mediadl/media-downloader/internal/platform"
	"github.com/mediadl/media-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.mediadl.media-downloader"
	AppName = "Media Downloader"

	WindowWidth  = 560
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply theme variant from saved preferences
	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewAppTheme(settings.GetDarkMode()))

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}

	acquisition := ffmpeg.NewAcquisition(runtimeWorkDir())
	extractor := extract.NewYTDLPExtractor()
	downloadSvc := download.NewService(extractor, acquisition)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, downloadSvc, acquisition)

	// Resolve the transcoding binary off the UI thread
	go acquisition.Locate()

	// Show and run
	myWindow.ShowAndRun()
}

// runtimeWorkDir is where a downloaded FFmpeg build is unpacked.
func runtimeWorkDir() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "media-downloader")
	}
	return filepath.Join(cacheDir, "media-downloader")
}
