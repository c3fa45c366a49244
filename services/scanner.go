package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TheIanM/ucanduit/logger"
	"github.com/TheIanM/ucanduit/types"
)

// supportedExtensions is the fixed allow-list of audio formats the shell can
// play. Matching is exact string equality after lower-casing.
var supportedExtensions = []string{"mp3", "wav", "ogg", "m4a", "aac", "flac", "wma"}

// SupportedFormats returns the audio extension allow-list
func SupportedFormats() []string {
	formats := make([]string, len(supportedExtensions))
	copy(formats, supportedExtensions)
	return formats
}

// AudioScanner enumerates audio files for the shell. Every scan is a
// stateless unit of work; nothing is cached between calls.
type AudioScanner struct {
	resolver *PathResolver
	statFile func(path string) (os.FileInfo, error)
}

// NewAudioScanner creates a scanner that resolves directory references
// through the given resolver
func NewAudioScanner(resolver *PathResolver) *AudioScanner {
	return &AudioScanner{
		resolver: resolver,
		statFile: os.Stat,
	}
}

// ScanDirectory lists the audio files directly inside directoryPath. The
// reference is resolved first (see PathResolver); subdirectories are not
// entered. Error messages carry both the original request string and the
// resolved attempt so callers can tell which root was tried.
func (s *AudioScanner) ScanDirectory(directoryPath string) (*types.DirectoryContents, error) {
	resolved := s.resolver.Resolve(directoryPath)

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (resolved to: %s)", ErrDirectoryNotFound, directoryPath, resolved)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s (resolved to: %s)", ErrNotADirectory, directoryPath, resolved)
	}

	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryRead, err)
	}

	files := make([]types.AudioFile, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext, ok := matchExtension(entry.Name())
		if !ok {
			continue
		}
		path := filepath.Join(resolved, entry.Name())

		// Stat follows symlinks, so linked tracks are seen the way the
		// shell sees them. One unreadable file's metadata must not abort
		// the scan of its siblings; record size 0 and keep going.
		var size uint64
		info, err := s.statFile(path)
		if err != nil {
			// A dangling symlink is not a file at all; anything else is a
			// transient metadata failure and keeps the entry.
			if os.IsNotExist(err) {
				continue
			}
			logger.L().WithError(err).WithField("file", entry.Name()).
				Warn("could not stat audio file, recording size 0")
		} else if !info.Mode().IsRegular() {
			continue
		} else {
			size = uint64(info.Size())
		}

		files = append(files, types.AudioFile{
			Name:      entry.Name(),
			Path:      path,
			Size:      size,
			Extension: ext,
		})
	}

	logger.L().WithFields(map[string]interface{}{
		"directory": directoryPath,
		"count":     len(files),
	}).Info("scanned audio directory")

	return &types.DirectoryContents{
		Directory: directoryPath,
		Files:     files,
		Count:     len(files),
	}, nil
}

// ScanAudioRoot enumerates the subdirectories of the bundled audio root and
// counts the audio files each one directly contains. Subdirectories without
// any qualifying files are omitted.
func (s *AudioScanner) ScanAudioRoot(root string) ([]types.AudioDirSummary, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryRead, err)
	}

	summaries := make([]types.AudioDirSummary, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		count := s.countAudioFiles(filepath.Join(root, entry.Name()))
		if count == 0 {
			continue
		}
		summaries = append(summaries, types.AudioDirSummary{
			Name:      entry.Name(),
			Path:      "/audio/" + entry.Name(),
			FileCount: count,
		})
	}

	return summaries, nil
}

// countAudioFiles counts qualifying files directly under dir. Listing errors
// count as zero so one unreadable subdirectory does not sink the summary.
func (s *AudioScanner) countAudioFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.L().WithError(err).WithField("dir", dir).Warn("could not count audio files")
		return 0
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := matchExtension(entry.Name()); !ok {
			continue
		}
		info, err := s.statFile(filepath.Join(dir, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		count++
	}
	return count
}

// DirectoryExists reports whether the literal path exists. The shell uses
// this as a cheap precheck; any existing path counts, file or directory.
func DirectoryExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// matchExtension reports whether name carries a supported audio extension,
// returning the lower-cased extension without its dot. Files without an
// extension never match, and neither do dotfiles like ".mp3" where the
// leading dot marks a hidden name rather than an extension.
func matchExtension(name string) (string, bool) {
	ext := filepath.Ext(name)
	if ext == "" || ext == filepath.Base(name) {
		return "", false
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, supported := range supportedExtensions {
		if ext == supported {
			return ext, true
		}
	}
	return "", false
}
