// Package images stores uploaded recipe images on disk under generated
// filenames.
package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes uploaded files into a single directory.
type Store struct {
	dir string
}

// NewStore creates the image directory if needed and returns a store for it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory served back as static files.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the uploaded file under a generated unique filename, keeping
// the original extension, and returns that filename.
func (s *Store) Save(file io.Reader, originalName string) (string, error) {
	filename := uuid.New().String() + filepath.Ext(originalName)

	dst, err := os.OpenFile(filepath.Join(s.dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return filename, nil
}
