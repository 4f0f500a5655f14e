// Package adapter contains filesystem and plot-output adapters for the
// regdump CLI.
package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	m "github.com/mouse-blink/regdump/internal/model"
)

// FS abstracts the filesystem operations the workflow relies on when
// loading dumps and CSV artifacts and when writing analysis outputs. It
// hides direct `os` access so the workflow logic can be tested without
// touching the disk.
type FS interface {
	// Open opens a file for reading. The caller owns the close.
	Open(path m.Path) (io.ReadCloser, error)

	// Create creates or truncates a file for writing. The caller owns the
	// close.
	Create(path m.Path) (io.WriteCloser, error)

	// Stat returns metadata for a path so the workflow can distinguish a
	// single artifact file from a directory of them.
	Stat(path m.Path) (os.FileInfo, error)

	// ListDir returns the plain-file names directly under dir, sorted.
	ListDir(dir m.Path) ([]string, error)

	// MkdirAll ensures an output directory exists.
	MkdirAll(path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalFS is the os-backed FS implementation wired into the real CLI.
type LocalFS struct{}

// NewLocalFS constructs a LocalFS instance ready to be wired into the
// workflow.
func NewLocalFS() *LocalFS {
	return &LocalFS{}
}

// Open opens a file for reading.
func (a *LocalFS) Open(path m.Path) (io.ReadCloser, error) {
	return os.Open(string(path))
}

// Create creates or truncates a file for writing.
func (a *LocalFS) Create(path m.Path) (io.WriteCloser, error) {
	return os.Create(string(path))
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalFS) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ListDir returns the sorted names of the plain files directly under dir.
// Subdirectories are not descended into; artifact layouts are flat.
func (a *LocalFS) ListDir(dir m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		names = append(names, e.Name())
	}

	sort.Strings(names)

	return names, nil
}

// MkdirAll ensures an output directory exists.
func (a *LocalFS) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// JoinPath joins path elements into a single path.
func (a *LocalFS) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
