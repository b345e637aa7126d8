package stack

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Commands-com/claude-stacks/internal/fsio"
)

// ErrNotFound indicates the resolved manifest path does not exist.
var ErrNotFound = errors.New("stack file not found")

// Loader resolves stack references to paths and parses manifest files.
type Loader struct {
	fs        fsio.FileSystem
	stacksDir string
}

// NewLoader creates a loader resolving bare references against stacksDir.
func NewLoader(fs fsio.FileSystem, stacksDir string) *Loader {
	return &Loader{fs: fs, stacksDir: stacksDir}
}

// Resolve turns a stack reference into a manifest path. A bare filename (no
// path separator, not absolute) resolves against the stacks directory;
// anything else is used as given.
func (l *Loader) Resolve(ref string) (string, error) {
	path := ref
	if !filepath.IsAbs(ref) && !strings.ContainsRune(ref, '/') && !strings.ContainsRune(ref, filepath.Separator) {
		path = filepath.Join(l.stacksDir, ref)
	}

	if !l.fs.Exists(path) {
		return "", fmt.Errorf("stack %q (%s): %w", ref, path, ErrNotFound)
	}
	return path, nil
}

// Load reads and parses a manifest. A malformed document is fatal.
func (l *Loader) Load(path string) (*Manifest, error) {
	data, err := l.fs.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("reading stack file %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		return nil, fmt.Errorf("parsing stack file %s: %w", path, err)
	}
	return &m, nil
}
