package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/mediadl/media-downloader/internal/model"
)

// Output and post-processing constants
const (
	OutputTemplate = "%(title)s.%(ext)s"

	AudioCodec     = "mp3"
	VideoContainer = "mp4"

	AudioBitrateLow  = "192K"
	AudioBitrateHigh = "320K"

	ConcurrentFragments = 8

	DefaultProgressInterval = 500 * time.Millisecond
)

// Format query strings handed to yt-dlp per selector
const (
	QueryBestAudio  = "bestaudio"
	QueryVideo720p  = "bv*[height<=720]+ba/b[height<=720]"
	QueryVideo1080p = "bv*[height<=1080]+ba/b[height<=1080]"
	QueryVideoBest  = "bv*+ba/b"
)

// FormatQuery maps a format selector to the yt-dlp format query string
func FormatQuery(fs model.FormatSelector) string {
	switch fs {
	case model.FormatAudioLow, model.FormatAudioHigh:
		return QueryBestAudio
	case model.FormatVideo720p:
		return QueryVideo720p
	case model.FormatVideo1080p:
		return QueryVideo1080p
	default:
		return QueryVideoBest
	}
}

// AudioBitrate maps an audio selector to the preferred transcode bitrate
func AudioBitrate(fs model.FormatSelector) string {
	if fs == model.FormatAudioHigh {
		return AudioBitrateHigh
	}
	return AudioBitrateLow
}

// YTDLPExtractor runs extractions through the yt-dlp wrapper.
type YTDLPExtractor struct {
	progressInterval time.Duration
}

// NewYTDLPExtractor creates a new extractor with the default progress interval
func NewYTDLPExtractor() *YTDLPExtractor {
	return &YTDLPExtractor{
		progressInterval: DefaultProgressInterval,
	}
}

// Extract downloads one URL with the format and post-processing pipeline
// derived from the request. Per-item errors inside the library are ignored;
// the returned error covers the invocation as a whole.
func (e *YTDLPExtractor) Extract(ctx context.Context, req Request, progress ProgressFunc) error {
	dl := ytdlp.New().
		Quiet().
		NoWarnings().
		IgnoreErrors().
		NoPlaylist().
		ConcurrentFragments(ConcurrentFragments).
		Format(FormatQuery(req.Format)).
		Output(filepath.Join(req.DestinationDir, OutputTemplate))

	if req.Format.IsAudio() {
		dl.ExtractAudio().
			AudioFormat(AudioCodec).
			AudioQuality(AudioBitrate(req.Format))
	} else {
		dl.MergeOutputFormat(VideoContainer)
	}

	if req.FFmpegPath != "" {
		dl.FFmpegLocation(req.FFmpegPath)
	}

	if progress != nil {
		dl.ProgressFunc(e.progressInterval, func(update ytdlp.ProgressUpdate) {
			if update.TotalBytes <= 0 {
				return
			}

			percent := float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100

			target := req.URL
			if update.Info != nil && update.Info.Title != nil && *update.Info.Title != "" {
				target = *update.Info.Title
			}

			progress(fmt.Sprintf("%.1f%%", percent), target)
		})
	}

	_, err := dl.Run(ctx, req.URL)
	return err
}
