package restore

import (
	"fmt"
	"path/filepath"

	"github.com/Commands-com/claude-stacks/internal/fsio"
	"github.com/Commands-com/claude-stacks/internal/stack"
)

// ClaudeMdWriter writes a single documentation file at a scoped target path.
type ClaudeMdWriter struct {
	fs  fsio.FileSystem
	out Presenter
}

// NewClaudeMdWriter creates a documentation writer.
func NewClaudeMdWriter(fs fsio.FileSystem, out Presenter) *ClaudeMdWriter {
	return &ClaudeMdWriter{fs: fs, out: out}
}

// Apply writes doc.Content verbatim at targetPath. With overwrite false an
// existing target is skipped with a warning; skipped reports that outcome.
func (w *ClaudeMdWriter) Apply(doc *stack.ClaudeMdDoc, targetPath string, overwrite bool) (skipped bool, err error) {
	if doc == nil {
		return false, nil
	}

	if err := w.fs.EnsureDir(filepath.Dir(targetPath)); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", targetPath, err)
	}

	if !overwrite && w.fs.Exists(targetPath) {
		w.out.Warning("Skipped %s (already exists)", targetPath)
		return true, nil
	}

	if err := w.fs.WriteText(targetPath, doc.Content); err != nil {
		return false, fmt.Errorf("writing %s: %w", targetPath, err)
	}
	return false, nil
}
