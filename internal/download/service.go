package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/mediadl/media-downloader/internal/extract"
	"github.com/mediadl/media-downloader/internal/model"
)

// Worker behavior constants
const (
	// CancelWaitTimeout bounds how long Cancel blocks waiting for the worker
	CancelWaitTimeout = 2 * time.Second

	BatchIDPrefix = "batch-"

	FullPercent = 100
)

// Service errors
var (
	ErrRuntimeNotReady = errors.New("transcoding binary is not installed")
	ErrBatchRunning    = errors.New("another batch is already running")
	ErrUnknownBatch    = errors.New("no active batch with this handle")
)

// batch is the per-request worker state. A batch is terminal once its done
// channel closes; a new batch must be started for a new request.
type batch struct {
	id        string
	req       model.DownloadRequest
	binary    string
	cancelled atomic.Bool
	abort     context.CancelFunc
	done      chan struct{}
}

func (b *batch) finished() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// Service runs one batch download worker at a time.
type Service struct {
	extractor extract.Extractor
	runtime   RuntimeStateProvider

	mu     sync.Mutex
	active *batch

	onProgress func(model.ProgressEvent)
	onComplete func(batchID string)
}

// NewService creates a new download service
func NewService(extractor extract.Extractor, runtime RuntimeStateProvider) *Service {
	return &Service{
		extractor: extractor,
		runtime:   runtime,
	}
}

// SetProgressCallback sets the callback for progress events
func (s *Service) SetProgressCallback(callback func(model.ProgressEvent)) {
	s.onProgress = callback
}

// SetCompletionCallback sets the callback fired exactly once per batch,
// whether the URL list was exhausted or the batch was cancelled
func (s *Service) SetCompletionCallback(callback func(batchID string)) {
	s.onComplete = callback
}

// StartBatch starts a worker for the request. The runtime binary must be
// installed and no other batch may be running; both conditions are checked
// before any goroutine is created.
func (s *Service) StartBatch(req model.DownloadRequest) (string, error) {
	state := s.runtime.State()
	if state.Status != model.RuntimeInstalled {
		return "", fmt.Errorf("%w: runtime status is %s", ErrRuntimeNotReady, state.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil && !s.active.finished() {
		return "", ErrBatchRunning
	}

	ctx, abort := context.WithCancel(context.Background())
	b := &batch{
		id:     generateBatchID(),
		req:    req,
		binary: state.BinaryPath,
		abort:  abort,
		done:   make(chan struct{}),
	}
	s.active = b

	go s.run(ctx, b)

	return b.id, nil
}

// Cancel sets the cooperative flag, aborts any in-flight extraction, and
// waits up to CancelWaitTimeout for the worker to observe the flag. The
// worker may still finish the URL currently mid-transfer, but no further URL
// starts afterward.
func (s *Service) Cancel(batchID string) error {
	s.mu.Lock()
	b := s.active
	s.mu.Unlock()

	if b == nil || b.id != batchID {
		return ErrUnknownBatch
	}

	b.cancelled.Store(true)
	b.abort()

	select {
	case <-b.done:
	case <-time.After(CancelWaitTimeout):
		log.Printf("Batch %s did not stop within %v, proceeding", batchID, CancelWaitTimeout)
	}

	return nil
}

// ActiveBatch reports the handle of the running batch, if any
func (s *Service) ActiveBatch() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil || s.active.finished() {
		return "", false
	}
	return s.active.id, true
}

// run is the worker loop. URLs are processed strictly in order; the
// cancellation flag is checked at URL boundaries only.
func (s *Service) run(ctx context.Context, b *batch) {
	defer close(b.done)
	defer s.notifyComplete(b.id)
	defer b.abort()

	for _, url := range b.req.URLs {
		if b.cancelled.Load() {
			break
		}

		s.emit(model.ProgressEvent{
			Percent: 0,
			Phase:   model.PhaseProcessing,
			Text:    "Processing: " + url,
		})

		req := extract.Request{
			URL:            url,
			DestinationDir: b.req.DestinationDir,
			Format:         b.req.Format,
			FFmpegPath:     b.binary,
		}

		err := s.extractor.Extract(ctx, req, func(percent, target string) {
			s.relayProgress(percent, target)
		})
		if err != nil {
			if b.cancelled.Load() && ctx.Err() != nil {
				// Aborted mid-transfer; the loop check handles the exit.
				break
			}

			s.emit(model.ProgressEvent{
				Percent: 0,
				Phase:   model.PhaseFailed,
				Text:    "Error: " + err.Error(),
			})
			continue
		}

		s.emit(model.ProgressEvent{
			Percent: FullPercent,
			Phase:   model.PhaseSucceeded,
			Text:    "Finished: " + url,
		})
	}
}

// relayProgress converts a raw library percent string into a downloading
// event. Unparsable strings are dropped without an event; the library
// occasionally reports placeholders that are not numeric.
func (s *Service) relayProgress(percent, target string) {
	value, ok := parsePercent(percent)
	if !ok {
		return
	}

	s.emit(model.ProgressEvent{
		Percent: value,
		Phase:   model.PhaseDownloading,
		Text:    "Downloading: " + target,
	})
}

// parsePercent parses strings like "42.3%" into a clamped integer percentage
func parsePercent(raw string) (int, bool) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "%")

	value, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	if err != nil {
		return 0, false
	}

	if value < 0 {
		value = 0
	}
	if value > FullPercent {
		value = FullPercent
	}

	return int(value), true
}

// emit forwards a progress event to the shell if a callback is set
func (s *Service) emit(event model.ProgressEvent) {
	if s.onProgress != nil {
		s.onProgress(event)
	}
}

// notifyComplete fires the completion callback if set
func (s *Service) notifyComplete(batchID string) {
	if s.onComplete != nil {
		s.onComplete(batchID)
	}
}

// generateBatchID generates a unique batch handle using UUID v7 so handles
// sort chronologically
func generateBatchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(BatchIDPrefix+"%d", time.Now().UnixNano())
	}
	return BatchIDPrefix + id.String()
}
