package model

// ProgressPhase tags a progress event with the stage it reports on.
type ProgressPhase string

const (
	// PhaseProcessing means a URL has been picked up but transfer has not started
	PhaseProcessing ProgressPhase = "processing"

	// PhaseDownloading means the transfer for the current URL is running
	PhaseDownloading ProgressPhase = "downloading"

	// PhaseSucceeded means the current URL finished successfully
	PhaseSucceeded ProgressPhase = "succeeded"

	// PhaseFailed means the current URL failed; the batch continues
	PhaseFailed ProgressPhase = "failed"
)

// String returns the string representation of ProgressPhase
func (pp ProgressPhase) String() string {
	return string(pp)
}

// ProgressEvent is a transient message from the worker to the UI shell.
// It is consumed immediately and never persisted.
type ProgressEvent struct {
	Percent int // 0 to 100
	Phase   ProgressPhase
	Text    string
}
