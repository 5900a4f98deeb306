package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// DirBackend writes each artifact as a file in a single directory.
type DirBackend struct {
	dir string
}

// NewDirBackend creates the directory if needed
func NewDirBackend(dir string) (*DirBackend, error) {
	if dir == "" {
		return nil, errors.New("output directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &DirBackend{dir: dir}, nil
}

// Dir returns the output directory
func (d *DirBackend) Dir() string {
	return d.dir
}

// Put writes the artifact, truncating an existing file of the same name
func (d *DirBackend) Put(name string, data []byte) error {
	path, err := d.path(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Get reads an artifact back from disk
func (d *DirBackend) Get(name string) ([]byte, error) {
	path, err := d.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// ForEach visits every regular file in the directory. The directory may hold
// files that were not written by this backend (a previous run, the generator
// binary itself).
func (d *DirBackend) ForEach(fn func(name string, data []byte) error) error {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", d.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(d.dir, name))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := fn(name, data); err != nil {
			return err
		}
	}

	return nil
}

// Close is a no-op; every Put is already final
func (d *DirBackend) Close() error {
	return nil
}

func (d *DirBackend) path(name string) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid artifact name %q", name)
	}
	return filepath.Join(d.dir, name), nil
}
