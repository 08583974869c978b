package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DirSaver writes downloaded documents into a directory without
// overwriting existing files.
type DirSaver struct {
	dir func() string
}

// NewDirSaver creates a saver for the directory returned by dir at save time
func NewDirSaver(dir func() string) *DirSaver {
	return &DirSaver{dir: dir}
}

// SaveFile copies src to a fresh file named after name and returns its path.
// A partially written file is removed.
func (s *DirSaver) SaveFile(ctx context.Context, name, _ string, src io.Reader) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	dir := s.dir()
	if dir == "" {
		return "", errors.New("download directory is not configured")
	}
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}

	path, err := UniquePath(dir, name)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := io.Copy(f, &contextReader{ctx: ctx, r: src}); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// contextReader stops a copy once ctx is done
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
