package extract

import (
	"context"

	"github.com/mediadl/media-downloader/internal/model"
)

// ProgressFunc receives transfer progress for the current URL. The percent
// value is the raw string reported by the library (e.g. "42.3%"); parsing it
// is the caller's concern. Target names what is being transferred.
type ProgressFunc func(percent, target string)

// Request describes the extraction of a single URL.
type Request struct {
	URL            string
	DestinationDir string
	Format         model.FormatSelector
	FFmpegPath     string
}

// Extractor resolves a URL to downloadable media streams and performs the
// transfer and post-processing. Cancelling the context aborts an in-flight
// transfer on a best-effort basis.
type Extractor interface {
	Extract(ctx context.Context, req Request, progress ProgressFunc) error
}
