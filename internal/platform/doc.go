package platform

// Package platform holds small OS-specific helpers for the UI shell:
// directory setup, the default Downloads location, and opening folders in
// the system file manager.
