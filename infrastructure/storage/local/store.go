// ABOUTME: Local filesystem text store for downloaded document texts and digests
// ABOUTME: Writes through a temp file and rename so readers never see partial files

package local

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store implements the TextStore interface on the local filesystem
type Store struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// NewStore creates a filesystem store with 0755 directories and 0644 files
func NewStore() *Store {
	return &Store{
		dirPerm:  0o755,
		filePerm: 0o644,
	}
}

// EnsureDir creates dir and any missing parents
func (s *Store) EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, s.dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteText writes content as UTF-8 to path, replacing an existing file
func (s *Store) WriteText(path string, content string) error {
	dir := filepath.Dir(path)
	if err := s.EnsureDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, s.filePerm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}
