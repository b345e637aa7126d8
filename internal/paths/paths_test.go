package paths

import (
	"path/filepath"
	"testing"
)

func TestGlobalRootOverride(t *testing.T) {
	t.Setenv("CLAUDE_STACKS_HOME", "/tmp/claude-home/.claude")

	if got := GlobalRoot(); got != "/tmp/claude-home/.claude" {
		t.Errorf("GlobalRoot() = %q", got)
	}
	if got := RegistryFile(); got != "/tmp/claude-home/.claude.json" {
		t.Errorf("RegistryFile() = %q, want sibling of the global root", got)
	}
	if got := StacksDir(); got != "/tmp/claude-home/.claude/stacks" {
		t.Errorf("StacksDir() = %q", got)
	}
}

func TestGlobalRootDefault(t *testing.T) {
	t.Setenv("CLAUDE_STACKS_HOME", "")
	t.Setenv("HOME", "/home/dev")

	if got := GlobalRoot(); got != "/home/dev/.claude" {
		t.Errorf("GlobalRoot() = %q", got)
	}
	if got := RegistryFile(); got != "/home/dev/.claude.json" {
		t.Errorf("RegistryFile() = %q", got)
	}
}

func TestNewLayout(t *testing.T) {
	t.Setenv("CLAUDE_STACKS_HOME", "/tmp/claude-home/.claude")

	layout, err := NewLayout("/work/p1")
	if err != nil {
		t.Fatalf("NewLayout() error: %v", err)
	}

	if layout.ProjectPath != "/work/p1" {
		t.Errorf("ProjectPath = %q", layout.ProjectPath)
	}
	if layout.LocalCommandsDir != filepath.Join("/work/p1", ".claude", "commands") {
		t.Errorf("LocalCommandsDir = %q", layout.LocalCommandsDir)
	}
	if layout.LocalSettingsFile != filepath.Join("/work/p1", ".claude", "settings.local.json") {
		t.Errorf("LocalSettingsFile = %q", layout.LocalSettingsFile)
	}
	if layout.GlobalSettingsFile != "/tmp/claude-home/.claude/settings.json" {
		t.Errorf("GlobalSettingsFile = %q", layout.GlobalSettingsFile)
	}
}

func TestNewLayoutMakesProjectAbsolute(t *testing.T) {
	layout, err := NewLayout(".")
	if err != nil {
		t.Fatalf("NewLayout() error: %v", err)
	}
	if !filepath.IsAbs(layout.ProjectPath) {
		t.Errorf("ProjectPath = %q, want absolute", layout.ProjectPath)
	}
}
