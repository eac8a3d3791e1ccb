package ffmpeg

import (
	"archive/zip"
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/mediadl/media-downloader/internal/model"
)

// buildArchive produces a zip archive holding the given file names
func buildArchive(t *testing.T, names ...string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range names {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to add %s to archive: %v", name, err)
		}
		if _, err := f.Write([]byte("binary payload")); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish archive: %v", err)
	}

	return buf.Bytes()
}

// stateRecorder collects state transitions from the callback
type stateRecorder struct {
	mu     sync.Mutex
	states []string
}

func (r *stateRecorder) attach(a *Acquisition) {
	a.SetStateCallback(func(state model.RuntimeState) {
		r.mu.Lock()
		r.states = append(r.states, state.Status.String())
		r.mu.Unlock()
	})
}

func newTestAcquisition(t *testing.T, goos string) *Acquisition {
	t.Helper()

	a := NewAcquisition(t.TempDir())
	a.goos = goos
	a.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	a.probeDirs = nil
	return a
}

func TestLocateSearchPathHitSkipsProbe(t *testing.T) {
	probeDir := t.TempDir()
	probeCandidate := filepath.Join(probeDir, BinaryName)
	if err := os.WriteFile(probeCandidate, []byte("x"), 0755); err != nil {
		t.Fatalf("Failed to create probe candidate: %v", err)
	}

	a := newTestAcquisition(t, OSDarwin)
	a.lookPath = func(file string) (string, error) {
		return "/usr/local/bin/" + file, nil
	}
	a.probeDirs = []string{probeDir}

	a.Locate()

	state := a.State()
	if state.Status != model.RuntimeInstalled {
		t.Fatalf("Expected installed, got %s", state.Status)
	}
	if state.BinaryPath != "/usr/local/bin/"+BinaryName {
		t.Errorf("Expected search-path hit to win, got %s", state.BinaryPath)
	}
}

func TestLocateWellKnownDirProbe(t *testing.T) {
	probeDir := t.TempDir()
	candidate := filepath.Join(probeDir, BinaryName)
	if err := os.WriteFile(candidate, []byte("x"), 0755); err != nil {
		t.Fatalf("Failed to create candidate: %v", err)
	}

	a := newTestAcquisition(t, OSDarwin)
	a.probeDirs = []string{t.TempDir(), probeDir}

	a.Locate()

	state := a.State()
	if state.Status != model.RuntimeInstalled {
		t.Fatalf("Expected installed, got %s (message: %s)", state.Status, state.Message)
	}
	if state.BinaryPath != candidate {
		t.Errorf("Expected %s, got %s", candidate, state.BinaryPath)
	}
}

func TestLocateMissingOnUnixWithoutAcquisition(t *testing.T) {
	a := newTestAcquisition(t, "linux")

	a.Locate()

	state := a.State()
	if state.Status != model.RuntimeMissing {
		t.Fatalf("Expected missing, got %s", state.Status)
	}
	if state.BinaryPath != "" {
		t.Errorf("Expected no binary path, got %s", state.BinaryPath)
	}
	if state.Message == "" {
		t.Error("Expected a descriptive message for the missing state")
	}
}

func TestLocateAcquiresOnWindows(t *testing.T) {
	t.Setenv("PATH", os.Getenv("PATH"))

	archive := buildArchive(t, "ffmpeg-release/bin/"+WindowsBinaryName, "ffmpeg-release/README.txt")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	defer server.Close()

	a := newTestAcquisition(t, OSWindows)
	a.archiveURL = server.URL

	var percents []int
	a.SetProgressCallback(func(percent int) {
		percents = append(percents, percent)
	})

	a.Locate()

	state := a.State()
	if state.Status != model.RuntimeInstalled {
		t.Fatalf("Expected installed, got %s (message: %s)", state.Status, state.Message)
	}
	if filepath.Base(state.BinaryPath) != WindowsBinaryName {
		t.Errorf("Expected resolved path to end in %s, got %s", WindowsBinaryName, state.BinaryPath)
	}
	if _, err := os.Stat(state.BinaryPath); err != nil {
		t.Errorf("Expected resolved binary to exist: %v", err)
	}

	for _, p := range percents {
		if p < 0 || p > 100 {
			t.Errorf("Progress percent out of range: %d", p)
		}
	}
	if len(percents) == 0 || percents[len(percents)-1] != 100 {
		t.Errorf("Expected progress to end at 100, got %v", percents)
	}

	// The binary's directory is prepended to the session search path.
	if !strings.HasPrefix(os.Getenv("PATH"), filepath.Dir(state.BinaryPath)) {
		t.Error("Expected binary directory to be prepended to PATH")
	}
}

func TestLocateNetworkFailureLeavesNoPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	a := newTestAcquisition(t, OSWindows)
	a.archiveURL = server.URL

	rec := &stateRecorder{}
	rec.attach(a)

	a.Locate()

	state := a.State()
	if state.Status != model.RuntimeMissing {
		t.Fatalf("Expected missing after fetch failure, got %s", state.Status)
	}
	if state.BinaryPath != "" {
		t.Errorf("Expected no partial binary path, got %s", state.BinaryPath)
	}
	if state.Message == "" {
		t.Error("Expected the failure reason to be surfaced")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	expected := []string{"checking", "downloading", "missing"}
	if len(rec.states) != len(expected) {
		t.Fatalf("Expected transitions %v, got %v", expected, rec.states)
	}
	for i := range expected {
		if rec.states[i] != expected[i] {
			t.Errorf("Transition %d: expected %s, got %s", i, expected[i], rec.states[i])
		}
	}
}

func TestLocateArchiveWithoutBinary(t *testing.T) {
	archive := buildArchive(t, "ffmpeg-release/README.txt")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	defer server.Close()

	a := newTestAcquisition(t, OSWindows)
	a.archiveURL = server.URL

	a.Locate()

	state := a.State()
	if state.Status != model.RuntimeMissing {
		t.Fatalf("Expected missing, got %s", state.Status)
	}
	if state.BinaryPath != "" {
		t.Errorf("Expected no binary path, got %s", state.BinaryPath)
	}
}

func TestFindBinaryRecursive(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "bin")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("Failed to create tree: %v", err)
	}

	target := filepath.Join(nested, BinaryName)
	if err := os.WriteFile(target, []byte("x"), 0755); err != nil {
		t.Fatalf("Failed to create binary: %v", err)
	}

	found, err := findBinary(root, BinaryName)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if found != target {
		t.Errorf("Expected %s, got %s", target, found)
	}

	if _, err := findBinary(t.TempDir(), BinaryName); !errors.Is(err, ErrBinaryNotFound) {
		t.Errorf("Expected ErrBinaryNotFound, got %v", err)
	}
}

func TestExtractArchiveRejectsEscapingEntries(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("../evil.txt")
	if err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
	f.Write([]byte("x"))
	w.Close()

	dir := t.TempDir()
	archivePath := filepath.Join(dir, "evil.zip")
	if err := os.WriteFile(archivePath, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}

	if err := extractArchive(archivePath, filepath.Join(dir, "out")); err == nil {
		t.Error("Expected escaping entry to be rejected")
	}
}
