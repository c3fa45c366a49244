package types

// AudioFile represents a single audio file discovered during a directory scan
type AudioFile struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Size      uint64 `json:"size"`
	Extension string `json:"extension"` // lowercase, without the dot
}

// DirectoryContents is the result of scanning one directory for audio files.
// Directory holds the original request string, not the resolved location, so
// the shell can correlate responses with what it asked for.
type DirectoryContents struct {
	Directory string      `json:"directory"`
	Files     []AudioFile `json:"files"`
	Count     int         `json:"count"`
}

// AudioDirSummary describes one subdirectory of the bundled audio root and
// how many audio files it directly contains
type AudioDirSummary struct {
	Name      string `json:"name"`
	Path      string `json:"path"` // logical path, e.g. "/audio/ambient"
	FileCount int    `json:"file_count"`
}

// TrackInfo holds tag metadata for a single audio file
type TrackInfo struct {
	Title       string `json:"title,omitempty"`
	Artist      string `json:"artist,omitempty"`
	Album       string `json:"album,omitempty"`
	TrackNumber int    `json:"trackNumber,omitempty"`
}
