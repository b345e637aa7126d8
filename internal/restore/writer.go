package restore

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Commands-com/claude-stacks/internal/fsio"
)

// FileItem is a single Markdown component to persist. Content is written
// verbatim, never transformed.
type FileItem struct {
	Name    string
	Content string
}

// WriteResult reports what a writer call did.
type WriteResult struct {
	Written int
	Skipped int
}

// FileWriter writes command and agent Markdown files into a target
// directory. Per-item writes within one call run concurrently; one item's
// failure never prevents sibling items from being attempted.
type FileWriter struct {
	fs  fsio.FileSystem
	out Presenter
}

// NewFileWriter creates a writer using the given file-service boundary.
func NewFileWriter(fs fsio.FileSystem, out Presenter) *FileWriter {
	return &FileWriter{fs: fs, out: out}
}

// Write persists items into targetDir. Failure to create targetDir is fatal
// for the whole call. With overwrite false, existing targets are skipped and
// counted, not treated as errors. After all items are attempted, the call
// fails if any item failed, carrying every collected error.
func (w *FileWriter) Write(items []FileItem, targetDir string, overwrite bool) (WriteResult, error) {
	var res WriteResult
	if len(items) == 0 {
		return res, nil
	}

	if err := w.fs.EnsureDir(targetDir); err != nil {
		return res, fmt.Errorf("creating %s: %w", targetDir, err)
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		itemErrs []error
	)

	for _, item := range items {
		wg.Add(1)
		go func(item FileItem) {
			defer wg.Done()

			fileName := componentFileName(item.Name)
			path := filepath.Join(targetDir, fileName)

			if !overwrite && w.fs.Exists(path) {
				w.out.Warning("Skipped %s (already exists)", fileName)
				mu.Lock()
				res.Skipped++
				mu.Unlock()
				return
			}

			if err := w.fs.WriteText(path, item.Content); err != nil {
				w.out.Error("Failed to write %s: %v", fileName, err)
				mu.Lock()
				itemErrs = append(itemErrs, fmt.Errorf("writing %s: %w", fileName, err))
				mu.Unlock()
				return
			}

			mu.Lock()
			res.Written++
			mu.Unlock()
		}(item)
	}
	wg.Wait()

	if len(itemErrs) > 0 {
		return res, fmt.Errorf("%d of %d files failed: %w", len(itemErrs), len(items), errors.Join(itemErrs...))
	}
	return res, nil
}

// componentFileName derives the output filename from a component name by
// stripping any trailing scope qualifier added on export.
func componentFileName(name string) string {
	name = strings.TrimSuffix(name, " (local)")
	name = strings.TrimSuffix(name, " (global)")
	return name + ".md"
}
