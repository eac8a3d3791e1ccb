package download

// Package download implements the batch download worker. A batch processes
// its URLs one at a time through the extraction boundary, relays progress to
// the UI shell, tolerates per-URL failure, and supports cooperative
// cancellation with a bounded wait.
