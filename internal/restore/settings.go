package restore

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/Commands-com/claude-stacks/internal/fsio"
)

// SettingsMerger writes a settings JSON document, either replacing the
// target or shallow-merging into it. The settings object is opaque: keys are
// handled generically and never interpreted.
type SettingsMerger struct {
	fs  fsio.FileSystem
	out Presenter
}

// NewSettingsMerger creates a settings merger.
func NewSettingsMerger(fs fsio.FileSystem, out Presenter) *SettingsMerger {
	return &SettingsMerger{fs: fs, out: out}
}

// Apply writes settings at targetPath. With overwrite, any existing file is
// replaced. Otherwise the existing document is read (an unreadable or
// corrupt one is tolerated as an empty object, with a warning) and the new
// top-level keys shallow-merge over it: no recursive merging, a new key
// replaces a same-named existing key wholesale.
func (s *SettingsMerger) Apply(settings map[string]json.RawMessage, targetPath string, overwrite bool) error {
	if len(settings) == 0 {
		return nil
	}

	if err := s.fs.EnsureDir(filepath.Dir(targetPath)); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	merged := settings
	if !overwrite {
		existing := make(map[string]json.RawMessage)
		if s.fs.Exists(targetPath) {
			text, err := s.fs.ReadText(targetPath)
			if err != nil {
				s.out.Warning("Could not read existing settings at %s (%v), treating as empty", targetPath, err)
			} else if err := json.Unmarshal([]byte(text), &existing); err != nil {
				s.out.Warning("Existing settings at %s are not valid JSON (%v), treating as empty", targetPath, err)
				existing = make(map[string]json.RawMessage)
			}
		}
		for k, v := range settings {
			existing[k] = v
		}
		merged = existing
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := s.fs.WriteText(targetPath, string(data)+"\n"); err != nil {
		return fmt.Errorf("writing settings to %s: %w", targetPath, err)
	}
	return nil
}
