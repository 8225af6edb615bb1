package model

// LoadStatus represents the state of the card area
type LoadStatus string

const (
	// LoadStatusIdle means nothing has been requested yet
	LoadStatusIdle LoadStatus = "Idle"

	// LoadStatusLoading means a categories or media request is in flight
	LoadStatusLoading LoadStatus = "Loading"

	// LoadStatusReady means cards are rendered
	LoadStatusReady LoadStatus = "Ready"

	// LoadStatusEmpty means the request succeeded with zero items
	LoadStatusEmpty LoadStatus = "Empty"

	// LoadStatusFailed means the request failed and was logged
	LoadStatusFailed LoadStatus = "Failed"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsActive returns true while a request is in flight
func (ls LoadStatus) IsActive() bool {
	return ls == LoadStatusLoading
}

// StatusForItems picks the terminal status for a successfully fetched list.
func StatusForItems(n int) LoadStatus {
	if n == 0 {
		return LoadStatusEmpty
	}
	return LoadStatusReady
}
