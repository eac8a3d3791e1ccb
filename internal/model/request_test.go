package model

import (
	"errors"
	"testing"
)

func TestNewDownloadRequest(t *testing.T) {
	req, err := NewDownloadRequest([]string{"https://x/1", "https://x/2"}, "/tmp/out", FormatAudioHigh)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(req.URLs) != 2 {
		t.Fatalf("Expected 2 URLs, got %d", len(req.URLs))
	}

	if req.URLs[0] != "https://x/1" || req.URLs[1] != "https://x/2" {
		t.Errorf("URL order not preserved: %v", req.URLs)
	}

	if req.DestinationDir != "/tmp/out" {
		t.Errorf("Expected destination '/tmp/out', got '%s'", req.DestinationDir)
	}

	if req.Format != FormatAudioHigh {
		t.Errorf("Expected format %s, got %s", FormatAudioHigh, req.Format)
	}
}

func TestNewDownloadRequestTrimsAndDropsBlankLines(t *testing.T) {
	raw := []string{"  https://x/1  ", "", "   ", "\thttps://x/2\n"}

	req, err := NewDownloadRequest(raw, "/tmp/out", FormatVideoBest)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(req.URLs) != 2 {
		t.Fatalf("Expected 2 URLs after filtering, got %d: %v", len(req.URLs), req.URLs)
	}

	if req.URLs[0] != "https://x/1" {
		t.Errorf("Expected trimmed URL 'https://x/1', got '%s'", req.URLs[0])
	}

	if req.URLs[1] != "https://x/2" {
		t.Errorf("Expected trimmed URL 'https://x/2', got '%s'", req.URLs[1])
	}
}

func TestNewDownloadRequestKeepsDuplicates(t *testing.T) {
	req, err := NewDownloadRequest([]string{"https://x/1", "https://x/1"}, "/tmp/out", FormatVideo720p)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(req.URLs) != 2 {
		t.Errorf("Expected duplicates to be kept, got %d URLs", len(req.URLs))
	}
}

func TestNewDownloadRequestRejectsEmptyInput(t *testing.T) {
	_, err := NewDownloadRequest([]string{"", "   "}, "/tmp/out", FormatAudioLow)
	if !errors.Is(err, ErrNoURLs) {
		t.Errorf("Expected ErrNoURLs, got %v", err)
	}

	_, err = NewDownloadRequest(nil, "/tmp/out", FormatAudioLow)
	if !errors.Is(err, ErrNoURLs) {
		t.Errorf("Expected ErrNoURLs for nil input, got %v", err)
	}
}

func TestNewDownloadRequestRejectsEmptyDestination(t *testing.T) {
	_, err := NewDownloadRequest([]string{"https://x/1"}, "  ", FormatAudioLow)
	if !errors.Is(err, ErrNoDestination) {
		t.Errorf("Expected ErrNoDestination, got %v", err)
	}
}

func TestNewDownloadRequestRejectsUnknownFormat(t *testing.T) {
	_, err := NewDownloadRequest([]string{"https://x/1"}, "/tmp/out", FormatSelector("mp5"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestFormatSelectorIsAudio(t *testing.T) {
	audioSelectors := []FormatSelector{FormatAudioLow, FormatAudioHigh}
	for _, fs := range audioSelectors {
		if !fs.IsAudio() {
			t.Errorf("Expected %s to be audio", fs)
		}
	}

	videoSelectors := []FormatSelector{FormatVideo720p, FormatVideo1080p, FormatVideoBest}
	for _, fs := range videoSelectors {
		if fs.IsAudio() {
			t.Errorf("Expected %s to not be audio", fs)
		}
	}
}

func TestFormatSelectorsAreValid(t *testing.T) {
	for _, fs := range FormatSelectors() {
		if !fs.IsValid() {
			t.Errorf("Expected %s to be valid", fs)
		}
	}

	if FormatSelector("").IsValid() {
		t.Error("Expected empty selector to be invalid")
	}
}

func TestRuntimeStatusIsResolved(t *testing.T) {
	if RuntimeChecking.IsResolved() || RuntimeDownloading.IsResolved() {
		t.Error("Expected checking and downloading to be unresolved")
	}

	if !RuntimeInstalled.IsResolved() || !RuntimeMissing.IsResolved() {
		t.Error("Expected installed and missing to be resolved")
	}
}
