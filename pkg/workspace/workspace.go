// Package workspace provides the filesystem surface for primer: a
// directory holding the optional .primer.yml configuration and the
// transient scratch files used by the file lessons.
package workspace

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mlotufo/primer/pkg/core"
)

// ErrInvalidScratchName is returned for scratch names that would
// escape the workspace root.
var ErrInvalidScratchName = errors.New("invalid scratch file name")

// Workspace represents a directory used for file demonstrations.
// It implements core.Scratch.
type Workspace struct {
	Path   string
	Logger *slog.Logger
	Config Config
}

// New creates a Workspace rooted at the given path.
// The path must already exist and be a directory.
func New(path string, logger *slog.Logger) (*Workspace, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("workspace path does not exist: %s", path)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace path is not a directory: %s", path)
	}

	if logger == nil {
		logger = slog.Default()
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	return &Workspace{
		Path:   path,
		Logger: logger,
		Config: cfg,
	}, nil
}

// scratchPath resolves a scratch name to an absolute path, rejecting
// anything that is not a plain file name inside the workspace root.
func (w *Workspace) scratchPath(name string) (string, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidScratchName)
	}
	return filepath.Join(w.Path, name), nil
}

// WriteScratch writes data to a scratch file atomically.
func (w *Workspace) WriteScratch(name string, data []byte) error {
	path, err := w.scratchPath(name)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return err
	}
	w.Logger.Debug("scratch written", "name", name, "bytes", len(data))
	return nil
}

// ReadScratch returns the full content of a scratch file.
func (w *Workspace) ReadScratch(name string) ([]byte, error) {
	path, err := w.scratchPath(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// ReadScratchLines returns the content of a scratch file split into
// lines, without line terminators.
func (w *Workspace) ReadScratchLines(name string) ([]string, error) {
	path, err := w.scratchPath(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return lines, nil
}

// RemoveScratch deletes a scratch file. A missing file is not an error.
func (w *Workspace) RemoveScratch(name string) error {
	path, err := w.scratchPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	w.Logger.Debug("scratch removed", "name", name)
	return nil
}

// ScratchExists reports whether a scratch file is present.
func (w *Workspace) ScratchExists(name string) bool {
	path, err := w.scratchPath(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

var _ core.Scratch = (*Workspace)(nil)
