// Package fsio is the restore engine's sole I/O seam. Components take the
// FileSystem interface so tests can substitute failing or recording
// implementations without touching the real disk.
package fsio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileSystem is the narrow file-service boundary the engine writes through.
type FileSystem interface {
	EnsureDir(dir string) error
	Exists(path string) bool
	ReadText(path string) (string, error)
	WriteText(path, content string) error
	// WriteTextAtomic writes via a sibling temp file and a single rename,
	// so no reader ever observes a partially written target.
	WriteTextAtomic(path, content string) error
	ReadJSON(path string, v any) error
	WriteJSON(path string, v any) error
	Remove(path string) error
}

// OS is the production FileSystem backed by the os package.
type OS struct {
	rename func(oldpath, newpath string) error
}

// NewOS returns a FileSystem backed by the real filesystem.
func NewOS() *OS {
	return &OS{rename: os.Rename}
}

func (o *OS) EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func (o *OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (o *OS) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (o *OS) WriteText(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func (o *OS) WriteTextAtomic(path, content string) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := o.rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func (o *OS) ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (o *OS) WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func (o *OS) Remove(path string) error {
	return os.Remove(path)
}
