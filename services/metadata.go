package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/dhowden/tag"

	"github.com/TheIanM/ucanduit/logger"
	"github.com/TheIanM/ucanduit/types"
)

// trackNumberPrefix matches filenames like "01 - Song" or "1. Song"
var trackNumberPrefix = regexp.MustCompile(`^(\d+)[\.\-\s]+(.+)`)

// TrackInfo reads tag metadata for a single audio file. Files without usable
// tags fall back to values derived from the path, so the shell always gets
// something displayable.
func (s *AudioScanner) TrackInfo(path string) (*types.TrackInfo, error) {
	resolved := s.resolver.Resolve(path)

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (resolved to: %s)", ErrFileNotFound, path, resolved)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotAnAudioFile, path)
	}
	if _, ok := matchExtension(resolved); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAnAudioFile, path)
	}

	meta := trackInfoFromPath(resolved)

	file, err := os.Open(resolved)
	if err != nil {
		logger.L().WithError(err).WithField("file", resolved).
			Warn("could not open audio file for tag parsing")
		return meta, nil
	}
	defer file.Close()

	parsed, err := tag.ReadFrom(file)
	if err != nil {
		logger.L().WithError(err).WithField("file", resolved).
			Debug("no parseable tags, using path-derived metadata")
		return meta, nil
	}

	if parsed.Title() != "" {
		meta.Title = parsed.Title()
	}
	if parsed.Artist() != "" {
		meta.Artist = parsed.Artist()
	}
	if parsed.Album() != "" {
		meta.Album = parsed.Album()
	}
	if track, _ := parsed.Track(); track != 0 {
		meta.TrackNumber = track
	}
	return meta, nil
}

// trackInfoFromPath derives metadata from an Artist/Album/Track.ext layout
func trackInfoFromPath(path string) *types.TrackInfo {
	meta := &types.TrackInfo{}

	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) >= 3 {
		meta.Artist = parts[len(parts)-3]
	}
	if len(parts) >= 2 {
		meta.Album = parts[len(parts)-2]
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if matches := trackNumberPrefix.FindStringSubmatch(title); len(matches) > 2 {
		title = matches[2]
		if trackNum, err := strconv.Atoi(matches[1]); err == nil {
			meta.TrackNumber = trackNum
		}
	}
	meta.Title = title

	return meta
}
