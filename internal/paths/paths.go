// Package paths resolves every filesystem location the restore engine
// touches: the global ~/.claude tree, a project's local .claude tree, the
// shared multi-project registry document and the stacks directory.
package paths

import (
	"os"
	"path/filepath"
)

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

// GlobalRoot returns the user-wide Claude config directory.
// CLAUDE_STACKS_HOME overrides it, which is how tests redirect the engine
// into a temp tree.
func GlobalRoot() string {
	if v := os.Getenv("CLAUDE_STACKS_HOME"); v != "" {
		return v
	}
	return filepath.Join(homeDir(), ".claude")
}

// RegistryFile returns the path of the shared multi-project registry
// document. It lives next to the global root, not inside it.
func RegistryFile() string {
	return filepath.Join(filepath.Dir(GlobalRoot()), ".claude.json")
}

// StacksDir returns the well-known directory bare stack references resolve
// against.
func StacksDir() string {
	return filepath.Join(GlobalRoot(), "stacks")
}

// ConfigFile returns the path of the CLI's own config file.
func ConfigFile() string {
	return filepath.Join(StacksDir(), "config.yml")
}

// Layout holds the resolved target locations for one restore operation.
// Threading it explicitly keeps the engine free of ambient cwd reads.
type Layout struct {
	StacksDir string

	GlobalCommandsDir  string
	GlobalAgentsDir    string
	GlobalSettingsFile string
	GlobalClaudeMdFile string

	LocalCommandsDir  string
	LocalAgentsDir    string
	LocalSettingsFile string
	LocalClaudeMdFile string

	// RegistryFile is the shared registry document path.
	RegistryFile string
	// ProjectPath is the absolute project path used as the registry key.
	ProjectPath string
}

// NewLayout builds a Layout for the given project directory. projectDir is
// made absolute so the registry key is stable regardless of how the caller
// spelled it.
func NewLayout(projectDir string) (Layout, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return Layout{}, err
	}

	global := GlobalRoot()
	local := filepath.Join(abs, ".claude")

	return Layout{
		StacksDir: StacksDir(),

		GlobalCommandsDir:  filepath.Join(global, "commands"),
		GlobalAgentsDir:    filepath.Join(global, "agents"),
		GlobalSettingsFile: filepath.Join(global, "settings.json"),
		GlobalClaudeMdFile: filepath.Join(global, "CLAUDE.md"),

		LocalCommandsDir:  filepath.Join(local, "commands"),
		LocalAgentsDir:    filepath.Join(local, "agents"),
		LocalSettingsFile: filepath.Join(local, "settings.local.json"),
		LocalClaudeMdFile: filepath.Join(local, "CLAUDE.md"),

		RegistryFile: RegistryFile(),
		ProjectPath:  abs,
	}, nil
}
