package restore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Commands-com/claude-stacks/internal/fsio"
	"github.com/Commands-com/claude-stacks/internal/stack"
)

// Installer stages a remotely fetched manifest into a temporary file and
// delegates to the Orchestrator. The temporary copy is the only place the
// engine ever materializes a manifest it did not read from disk, and it is
// removed on every exit path.
type Installer struct {
	fs      fsio.FileSystem
	out     Presenter
	orch    *Orchestrator
	tempDir string
}

// NewInstaller creates an installer staging temp files under the system
// temp directory.
func NewInstaller(fs fsio.FileSystem, out Presenter, orch *Orchestrator) *Installer {
	return &Installer{fs: fs, out: out, orch: orch, tempDir: os.TempDir()}
}

// Install writes manifest to a uniquely named temp file, restores from it
// and removes it. Cleanup failures are swallowed; they never mask the
// restore result.
func (i *Installer) Install(manifest *stack.Manifest, source, ref string, opts Options) error {
	data, err := json.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encoding manifest for %s: %w", ref, err)
	}

	// Unique per invocation so concurrent installs of the same ref never
	// collide.
	name := fmt.Sprintf("claude-stacks-%s-%s.json", sanitizeRef(ref), uuid.NewString())
	tmpPath := filepath.Join(i.tempDir, name)

	if err := i.fs.WriteText(tmpPath, string(data)); err != nil {
		return fmt.Errorf("staging manifest for %s: %w", ref, err)
	}
	defer func() {
		_ = i.fs.Remove(tmpPath)
	}()

	i.out.Info("Installing %s from %s", ref, source)
	return i.orch.PerformRestore(tmpPath, opts)
}

// sanitizeRef reduces a stack reference to filename-safe characters.
func sanitizeRef(ref string) string {
	var b strings.Builder
	for _, r := range ref {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
