package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ImageStore persists an uploaded recipe image under a public path.
type ImageStore interface {
	Save(name string, src io.Reader) error
}

// DiskImageStore writes uploads into a local directory served as
// static files. Files are stored verbatim; there is no image pipeline.
type DiskImageStore struct {
	Dir string
}

func NewDiskImageStore(dir string) *DiskImageStore {
	return &DiskImageStore{Dir: dir}
}

func (s *DiskImageStore) Save(name string, src io.Reader) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write upload file: %w", err)
	}
	return nil
}
