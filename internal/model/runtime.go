package model

// RuntimeStatus is the install state of the external transcoding binary.
type RuntimeStatus string

const (
	// RuntimeChecking means the startup check has not finished yet
	RuntimeChecking RuntimeStatus = "checking"

	// RuntimeDownloading means an automated acquisition attempt is running
	RuntimeDownloading RuntimeStatus = "downloading"

	// RuntimeInstalled means a working binary was resolved
	RuntimeInstalled RuntimeStatus = "installed"

	// RuntimeMissing means no binary was found and acquisition failed or is unsupported
	RuntimeMissing RuntimeStatus = "missing"
)

// String returns the string representation of RuntimeStatus
func (rs RuntimeStatus) String() string {
	return string(rs)
}

// IsResolved returns true once the check reached a terminal state
func (rs RuntimeStatus) IsResolved() bool {
	return rs == RuntimeInstalled || rs == RuntimeMissing
}

// RuntimeState is a snapshot of the transcoding binary state. BinaryPath is
// set only while Status is RuntimeInstalled; Message carries the failure
// reason while Status is RuntimeMissing.
type RuntimeState struct {
	Status     RuntimeStatus
	BinaryPath string
	Message    string
}
