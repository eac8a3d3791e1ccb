package ffmpeg

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/mediadl/media-downloader/internal/model"
)

// Binary and acquisition constants
const (
	BinaryName        = "ffmpeg"
	WindowsBinaryName = "ffmpeg.exe"

	// ArchiveURL is the fixed source for the Windows build archive
	ArchiveURL = "https://www.gyan.dev/ffmpeg/builds/ffmpeg-release-essentials.zip"

	ArchiveFileName = "ffmpeg.zip"
	ExtractDirName  = "ffmpeg"

	DownloadTimeout = 10 * time.Minute
)

// Operating system constants
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
)

// Acquisition resolves the transcoding binary once at startup. It owns the
// process-wide RuntimeState; all other components read snapshots through
// State() or the state callback.
type Acquisition struct {
	goos       string
	workDir    string
	archiveURL string
	client     *http.Client

	// lookPath and probeDirs are swappable for tests
	lookPath  func(file string) (string, error)
	probeDirs []string

	onState    func(model.RuntimeState)
	onProgress func(percent int)

	mu    sync.Mutex
	state model.RuntimeState
}

// NewAcquisition creates an acquisition check rooted at workDir, which is
// used as the download and extraction scratch space on Windows.
func NewAcquisition(workDir string) *Acquisition {
	return &Acquisition{
		goos:       runtime.GOOS,
		workDir:    workDir,
		archiveURL: ArchiveURL,
		client:     &http.Client{Timeout: DownloadTimeout},
		lookPath:   exec.LookPath,
		probeDirs:  wellKnownDirs(runtime.GOOS),
		state:      model.RuntimeState{Status: model.RuntimeChecking},
	}
}

// SetStateCallback sets the callback for state transitions. The callback may
// be invoked from a background goroutine.
func (a *Acquisition) SetStateCallback(callback func(model.RuntimeState)) {
	a.onState = callback
}

// SetProgressCallback sets the callback for archive download percentages
func (a *Acquisition) SetProgressCallback(callback func(percent int)) {
	a.onProgress = callback
}

// State returns a snapshot of the current runtime state
func (a *Acquisition) State() model.RuntimeState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Locate resolves the binary: search path first, then well-known install
// directories, then automated acquisition where supported. It performs
// blocking network and filesystem I/O and must run off the UI thread.
func (a *Acquisition) Locate() {
	a.setState(model.RuntimeState{Status: model.RuntimeChecking})

	name := binaryName(a.goos)

	if path, err := a.lookPath(name); err == nil {
		log.Printf("Transcoding binary found on search path: %s", path)
		a.setState(model.RuntimeState{Status: model.RuntimeInstalled, BinaryPath: path})
		return
	}

	for _, dir := range a.probeDirs {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			log.Printf("Transcoding binary found in well-known directory: %s", candidate)
			a.setState(model.RuntimeState{Status: model.RuntimeInstalled, BinaryPath: candidate})
			return
		}
	}

	if a.goos != OSWindows {
		a.setState(model.RuntimeState{
			Status:  model.RuntimeMissing,
			Message: "ffmpeg was not found; please install it with your package manager",
		})
		return
	}

	a.setState(model.RuntimeState{Status: model.RuntimeDownloading})

	path, err := a.acquire()
	if err != nil {
		log.Printf("Automated ffmpeg acquisition failed: %v", err)
		a.setState(model.RuntimeState{
			Status:  model.RuntimeMissing,
			Message: err.Error(),
		})
		return
	}

	prependSearchPath(filepath.Dir(path))
	a.setState(model.RuntimeState{Status: model.RuntimeInstalled, BinaryPath: path})
}

// acquire fetches the archive, unpacks it, and searches the extracted tree
// for the binary. Failures are returned to the caller; nothing is retried.
func (a *Acquisition) acquire() (string, error) {
	if err := os.MkdirAll(a.workDir, 0755); err != nil {
		return "", fmt.Errorf("create work directory: %w", err)
	}

	archivePath := filepath.Join(a.workDir, ArchiveFileName)
	if err := a.fetchArchive(archivePath); err != nil {
		return "", fmt.Errorf("fetch archive: %w", err)
	}
	defer os.Remove(archivePath)

	extractDir := filepath.Join(a.workDir, ExtractDirName)
	if err := extractArchive(archivePath, extractDir); err != nil {
		return "", fmt.Errorf("extract archive: %w", err)
	}

	path, err := findBinary(extractDir, binaryName(a.goos))
	if err != nil {
		return "", err
	}

	return path, nil
}

// setState publishes a new state under the lock, then notifies the callback
func (a *Acquisition) setState(state model.RuntimeState) {
	a.mu.Lock()
	a.state = state
	a.mu.Unlock()

	if a.onState != nil {
		a.onState(state)
	}
}

// reportProgress forwards a download percentage if a callback is set
func (a *Acquisition) reportProgress(percent int) {
	if a.onProgress != nil {
		a.onProgress(percent)
	}
}

// binaryName returns the platform-specific binary file name
func binaryName(goos string) string {
	if goos == OSWindows {
		return WindowsBinaryName
	}
	return BinaryName
}

// wellKnownDirs returns the short, platform-specific list of install
// directories probed after the search-path lookup fails
func wellKnownDirs(goos string) []string {
	if goos == OSWindows {
		return []string{
			`C:\ffmpeg\bin`,
			`C:\Program Files\ffmpeg\bin`,
			`C:\Program Files (x86)\ffmpeg\bin`,
		}
	}

	return []string{
		"/usr/bin",
		"/usr/local/bin",
		"/opt/homebrew/bin",
		"/opt/local/bin",
		"/snap/bin",
	}
}

// prependSearchPath puts dir in front of the process search path. The change
// is session-scoped and not persisted.
func prependSearchPath(dir string) {
	current := os.Getenv("PATH")
	if err := os.Setenv("PATH", dir+string(os.PathListSeparator)+current); err != nil {
		log.Printf("Failed to prepend %s to PATH: %v", dir, err)
	}
}
