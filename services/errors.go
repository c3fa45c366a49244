package services

import "errors"

// Sentinel errors for the scan and storage operations. Handlers map these to
// HTTP status codes; the wrapped messages carry the human-readable detail the
// shell displays.
var (
	ErrDirectoryNotFound = errors.New("directory does not exist")
	ErrNotADirectory     = errors.New("path is not a directory")
	ErrDirectoryRead     = errors.New("failed to read directory")
	ErrRootNotFound      = errors.New("audio root does not exist")
	ErrFileNotFound      = errors.New("file does not exist")
	ErrNotAnAudioFile    = errors.New("not a supported audio file")
	ErrInvalidFilename   = errors.New("invalid filename")
)
