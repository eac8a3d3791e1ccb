package model

import (
	"errors"
	"strings"
)

// FormatSelector identifies the output format for a batch.
type FormatSelector string

const (
	// FormatAudioLow extracts audio to MP3 at ~192 kbps
	FormatAudioLow FormatSelector = "audio_low"

	// FormatAudioHigh extracts audio to MP3 at ~320 kbps
	FormatAudioHigh FormatSelector = "audio_high"

	// FormatVideo720p merges best video up to 720p with best audio into MP4
	FormatVideo720p FormatSelector = "video_720p"

	// FormatVideo1080p merges best video up to 1080p with best audio into MP4
	FormatVideo1080p FormatSelector = "video_1080p"

	// FormatVideoBest merges best available video and audio into MP4
	FormatVideoBest FormatSelector = "video_best"
)

// Validation errors for DownloadRequest construction
var (
	ErrNoURLs        = errors.New("no URLs provided")
	ErrNoDestination = errors.New("destination directory is empty")
	ErrUnknownFormat = errors.New("unknown format selector")
)

// String returns the string representation of FormatSelector
func (fs FormatSelector) String() string {
	return string(fs)
}

// IsAudio returns true for the audio-only selectors
func (fs FormatSelector) IsAudio() bool {
	return fs == FormatAudioLow || fs == FormatAudioHigh
}

// IsValid returns true if the selector is one of the known values
func (fs FormatSelector) IsValid() bool {
	switch fs {
	case FormatAudioLow, FormatAudioHigh, FormatVideo720p, FormatVideo1080p, FormatVideoBest:
		return true
	}
	return false
}

// FormatSelectors returns all selectors in UI presentation order
func FormatSelectors() []FormatSelector {
	return []FormatSelector{
		FormatAudioLow,
		FormatAudioHigh,
		FormatVideo720p,
		FormatVideo1080p,
		FormatVideoBest,
	}
}

// DownloadRequest describes one user-initiated batch. It is built once per
// batch and owned exclusively by the worker that processes it.
type DownloadRequest struct {
	URLs           []string
	DestinationDir string
	Format         FormatSelector
}

// NewDownloadRequest builds a request from raw user input. Entries are
// trimmed and blank lines discarded; the remaining URLs keep their order and
// are not deduplicated. An empty result, an empty destination, or an unknown
// format selector is rejected.
func NewDownloadRequest(rawURLs []string, destinationDir string, format FormatSelector) (DownloadRequest, error) {
	urls := make([]string, 0, len(rawURLs))
	for _, raw := range rawURLs {
		url := strings.TrimSpace(raw)
		if url == "" {
			continue
		}
		urls = append(urls, url)
	}

	if len(urls) == 0 {
		return DownloadRequest{}, ErrNoURLs
	}
	if strings.TrimSpace(destinationDir) == "" {
		return DownloadRequest{}, ErrNoDestination
	}
	if !format.IsValid() {
		return DownloadRequest{}, ErrUnknownFormat
	}

	return DownloadRequest{
		URLs:           urls,
		DestinationDir: destinationDir,
		Format:         format,
	}, nil
}
