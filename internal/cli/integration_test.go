package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Commands-com/claude-stacks/internal/paths"
)

const testStackJSON = `{
	"name": "dev-tools",
	"description": "shared dev tooling",
	"version": "1.0.0",
	"commands": [
		{"name": "a", "filePath": "./.claude/commands/a.md", "content": "local command"},
		{"name": "b", "filePath": "commands/b.md", "content": "global command"}
	],
	"agents": [],
	"mcpServers": [{"name": "fs", "type": "stdio", "command": "sh", "args": ["-c", "true"]}],
	"settings": {"theme": "dark"},
	"claudeMd": {"local": {"path": "CLAUDE.md", "content": "# Rules\n"}}
}`

// setupEnv redirects the global tree and project dir into temp dirs.
func setupEnv(t *testing.T) (home, project string) {
	t.Helper()
	home = t.TempDir()
	project = t.TempDir()
	t.Setenv("CLAUDE_STACKS_HOME", filepath.Join(home, ".claude"))
	t.Setenv("CLAUDE_STACKS_CI", "1")
	t.Setenv("NO_COLOR", "1")
	return home, project
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	app := NewApp("test", "none", "unknown")
	app.rootCmd.SetArgs(args)
	return app.Execute()
}

func TestRestoreCommandEndToEnd(t *testing.T) {
	home, project := setupEnv(t)

	stacksDir := paths.StacksDir()
	if err := os.MkdirAll(stacksDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(stacksDir, "dev-tools.json"), []byte(testStackJSON), 0644); err != nil {
		t.Fatal(err)
	}

	if err := run(t, "--dir", project, "restore", "dev-tools.json"); err != nil {
		t.Fatalf("restore: %v", err)
	}

	// Scope partition lands files on both trees.
	if _, err := os.Stat(filepath.Join(home, ".claude", "commands", "b.md")); err != nil {
		t.Errorf("global command missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(project, ".claude", "commands", "a.md")); err != nil {
		t.Errorf("local command missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(project, ".claude", "CLAUDE.md")); err != nil {
		t.Errorf("local CLAUDE.md missing: %v", err)
	}

	// Registry entry keyed by the absolute project path.
	data, err := os.ReadFile(filepath.Join(home, ".claude.json"))
	if err != nil {
		t.Fatalf("registry document missing: %v", err)
	}
	var doc struct {
		Projects map[string]struct {
			McpServers map[string]any `json:"mcpServers"`
		} `json:"projects"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parsing registry: %v", err)
	}
	abs, _ := filepath.EvalSymlinks(project)
	entry, ok := doc.Projects[project]
	if !ok {
		entry, ok = doc.Projects[abs]
	}
	if !ok {
		t.Fatalf("no project entry for %s in %v", project, doc.Projects)
	}
	if _, ok := entry.McpServers["fs"]; !ok {
		t.Errorf("mcpServers.fs missing: %v", entry.McpServers)
	}
}

func TestRestoreConflictingScopeFlags(t *testing.T) {
	setupEnv(t)

	err := run(t, "restore", "whatever.json", "--global-only", "--local-only")
	if err == nil {
		t.Fatal("expected usage error")
	}
}

func TestInstallCommandEndToEnd(t *testing.T) {
	home, project := setupEnv(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/stacks/acme/dev-tools" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(testStackJSON))
	}))
	defer server.Close()

	if err := run(t, "--dir", project, "--registry", server.URL, "install", "acme/dev-tools"); err != nil {
		t.Fatalf("install: %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, ".claude", "commands", "b.md")); err != nil {
		t.Errorf("global command missing after install: %v", err)
	}
}

func TestInstallInvalidRef(t *testing.T) {
	setupEnv(t)

	if err := run(t, "install", "not-a-ref"); err == nil {
		t.Fatal("expected usage error for ref without org")
	}
}
