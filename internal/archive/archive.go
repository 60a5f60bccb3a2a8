package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Archive stores event snapshot files in a single directory on disk.
// Files are exclusively owned by the event record that references them;
// Remove exists only as the compensation step when the record insert fails.
type Archive struct {
	dir string
}

// New creates the captures directory if needed and returns an Archive over it.
func New(dir string) (*Archive, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive directory %s: %w", dir, err)
	}
	return &Archive{dir: dir}, nil
}

// Dir returns the directory the archive writes into.
func (a *Archive) Dir() string {
	return a.dir
}

// Save writes data to filename inside the archive directory. The file
// handle is closed on every exit path; a failed write leaves whatever
// partial file the OS produced, surfaced to the caller as an error.
func (a *Archive) Save(filename string, data []byte) error {
	path, err := a.path(filename)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Remove deletes a previously saved file. Missing files are not an error,
// so compensation after a partially failed save stays idempotent.
func (a *Archive) Remove(filename string) error {
	path, err := a.path(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// path joins filename onto the archive dir, rejecting anything that
// would escape it.
func (a *Archive) path(filename string) (string, error) {
	if filename == "" || strings.Contains(filename, "/") || strings.Contains(filename, "\\") || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid archive filename %q", filename)
	}
	return filepath.Join(a.dir, filename), nil
}
