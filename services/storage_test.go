package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStoreRoundTrip verifies write-then-read returns a deep-equal value for
// representative JSON shapes
func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	tests := []struct {
		name  string
		value interface{}
	}{
		{
			name:  "object",
			value: map[string]interface{}{"theme": "dark", "volume": float64(80)},
		},
		{
			name:  "array",
			value: []interface{}{"a", "b", "c"},
		},
		{
			name:  "string",
			value: "hello",
		},
		{
			name:  "number",
			value: float64(42.5),
		},
		{
			name:  "null",
			value: nil,
		},
		{
			name: "nested",
			value: map[string]interface{}{
				"timers": []interface{}{
					map[string]interface{}{"label": "focus", "minutes": float64(25)},
					map[string]interface{}{"label": "break", "minutes": float64(5)},
				},
				"enabled": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filename := tt.name + ".json"
			require.NoError(t, store.WriteJSON(filename, tt.value))

			got, err := store.ReadJSON(filename)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

// TestStoreReadMissing verifies the file-not-found error class
func TestStoreReadMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.ReadJSON("absent.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Contains(t, err.Error(), "absent.json")
}

// TestStoreReadInvalidJSON verifies non-JSON contents surface a parse error
func TestStoreReadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))

	_, err := store.ReadJSON("broken.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

// TestStoreCreatesDirectory verifies the data directory is created on the
// first write
func TestStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "config", "ucanduit")
	store := NewStore(dir)

	require.NoError(t, store.WriteJSON("settings.json", map[string]interface{}{"x": float64(1)}))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// TestStoreOverwrites verifies writes replace existing documents
// unconditionally
func TestStoreOverwrites(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.WriteJSON("doc.json", "first"))
	require.NoError(t, store.WriteJSON("doc.json", "second"))

	got, err := store.ReadJSON("doc.json")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

// TestStorePrettyPrints verifies documents land on disk indented so users
// can hand-edit them
func TestStorePrettyPrints(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.WriteJSON("settings.json", map[string]interface{}{
		"theme":  "dark",
		"volume": float64(80),
	}))

	raw, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "\n  "), "expected indented JSON, got: %s", raw)
}

// TestStoreRejectsBadFilenames verifies names that would escape the store
// directory are refused on both paths
func TestStoreRejectsBadFilenames(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, name := range []string{"", "  ", "../escape.json", "a/b.json", `a\b.json`} {
		err := store.WriteJSON(name, "data")
		assert.ErrorIs(t, err, ErrInvalidFilename, "write %q", name)

		_, err = store.ReadJSON(name)
		assert.ErrorIs(t, err, ErrInvalidFilename, "read %q", name)
	}
}
