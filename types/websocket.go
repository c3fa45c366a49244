package types

import "time"

// ScanEvent is pushed to connected shell clients whenever a scan operation
// completes, so the UI can reflect activity without polling
type ScanEvent struct {
	Type      string    `json:"type"`      // "scan" or "summary"
	Directory string    `json:"directory"` // original request string
	Count     int       `json:"count"`     // audio files (or subdirectories) found
	Timestamp time.Time `json:"timestamp"` // when the scan finished
}
