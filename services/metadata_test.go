package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrackInfoFromPath covers the path-derived fallback parsing for the
// Artist/Album/NN - Title layout
func TestTrackInfoFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		title    string
		artist   string
		album    string
		trackNum int
	}{
		{
			name:     "full layout with track prefix",
			path:     "/music/Iron Maiden/Powerslave/02 - Aces High.mp3",
			title:    "Aces High",
			artist:   "Iron Maiden",
			album:    "Powerslave",
			trackNum: 2,
		},
		{
			name:   "no track prefix",
			path:   "/music/Artist/Album/Song.flac",
			title:  "Song",
			artist: "Artist",
			album:  "Album",
		},
		{
			name:     "dot separated prefix",
			path:     "/a/b/1. Opener.ogg",
			title:    "Opener",
			artist:   "a",
			album:    "b",
			trackNum: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := trackInfoFromPath(tt.path)
			assert.Equal(t, tt.title, meta.Title)
			assert.Equal(t, tt.artist, meta.Artist)
			assert.Equal(t, tt.album, meta.Album)
			assert.Equal(t, tt.trackNum, meta.TrackNumber)
		})
	}
}

// TestTrackInfoFallback verifies files without parseable tags still return
// path-derived metadata instead of an error
func TestTrackInfoFallback(t *testing.T) {
	root := t.TempDir()
	album := filepath.Join(root, "Some Artist", "Some Album")
	require.NoError(t, os.MkdirAll(album, 0755))

	path := filepath.Join(album, "03 - Untagged.mp3")
	require.NoError(t, os.WriteFile(path, []byte("not a real mp3"), 0644))

	info, err := newTestScanner(t).TrackInfo(path)
	require.NoError(t, err)

	assert.Equal(t, "Untagged", info.Title)
	assert.Equal(t, "Some Artist", info.Artist)
	assert.Equal(t, "Some Album", info.Album)
	assert.Equal(t, 3, info.TrackNumber)
}

// TestTrackInfoErrors covers missing files, directories, and unsupported
// extensions
func TestTrackInfoErrors(t *testing.T) {
	scanner := newTestScanner(t)
	dir := t.TempDir()

	_, err := scanner.TrackInfo(filepath.Join(dir, "missing.mp3"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = scanner.TrackInfo(dir)
	assert.ErrorIs(t, err, ErrNotAnAudioFile)

	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("text"), 0644))
	_, err = scanner.TrackInfo(txt)
	assert.ErrorIs(t, err, ErrNotAnAudioFile)
}
