package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists small JSON documents for the shell in a single flat
// directory. Documents are written pretty-printed so users can inspect and
// hand-edit them.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily on
// the first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory documents are stored in
func (s *Store) Dir() string {
	return s.dir
}

// WriteJSON serializes v as indented JSON to <dir>/<filename>. Existing
// files are overwritten unconditionally.
func (s *Store) WriteJSON(filename string, v interface{}) error {
	if err := validateFilename(filename); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", filename, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// ReadJSON reads <dir>/<filename> and unmarshals its contents
func (s *Store) ReadJSON(filename string) (interface{}, error) {
	if err := validateFilename(filename); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filename)
		}
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return v, nil
}

// validateFilename rejects names that would escape the store directory
func validateFilename(filename string) error {
	if strings.TrimSpace(filename) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidFilename)
	}
	if strings.Contains(filename, "..") {
		return fmt.Errorf("%w: %s", ErrInvalidFilename, filename)
	}
	if strings.ContainsAny(filename, `/\`) {
		return fmt.Errorf("%w: %s", ErrInvalidFilename, filename)
	}
	return nil
}
