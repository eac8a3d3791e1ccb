package download

import (
	"github.com/mediadl/media-downloader/internal/model"
)

// BatchDownloader defines the interface the UI shell drives batches through.
type BatchDownloader interface {
	SetProgressCallback(func(model.ProgressEvent))
	SetCompletionCallback(func(batchID string))

	// StartBatch spawns the worker for a request and returns its handle.
	// It is rejected synchronously while the runtime binary is not installed
	// or another batch is still running.
	StartBatch(req model.DownloadRequest) (string, error)

	// Cancel requests cooperative cancellation of the batch and waits a
	// bounded interval for the worker to exit.
	Cancel(batchID string) error

	// ActiveBatch reports the handle of the running batch, if any.
	ActiveBatch() (string, bool)
}

// RuntimeStateProvider reports the current transcoding binary state.
type RuntimeStateProvider interface {
	State() model.RuntimeState
}
