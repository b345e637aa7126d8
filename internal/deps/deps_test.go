package deps

import (
	"errors"
	"testing"

	"github.com/Commands-com/claude-stacks/internal/stack"
)

func stubChecker(available ...string) *Checker {
	set := make(map[string]bool)
	for _, a := range available {
		set[a] = true
	}
	return &Checker{lookPath: func(file string) (string, error) {
		if set[file] {
			return "/usr/bin/" + file, nil
		}
		return "", errors.New("not found")
	}}
}

func TestCheckReportsMissingStdioCommands(t *testing.T) {
	m := &stack.Manifest{McpServers: []stack.McpServer{
		{Name: "fs", Type: stack.ServerTypeStdio, Command: "npx"},
		{Name: "db", Type: stack.ServerTypeStdio, Command: "pg-mcp"},
		{Name: "api", Type: stack.ServerTypeHTTP, URL: "https://example.com/mcp"},
	}}

	missing := stubChecker("npx").Check(m)
	if len(missing) != 1 {
		t.Fatalf("missing = %+v, want 1 entry", missing)
	}
	if missing[0].Server != "db" || missing[0].Command != "pg-mcp" {
		t.Errorf("missing[0] = %+v", missing[0])
	}
}

func TestCheckDeduplicatesCommands(t *testing.T) {
	m := &stack.Manifest{McpServers: []stack.McpServer{
		{Name: "a", Type: stack.ServerTypeStdio, Command: "npx"},
		{Name: "b", Type: stack.ServerTypeStdio, Command: "npx"},
	}}

	missing := stubChecker().Check(m)
	if len(missing) != 1 {
		t.Errorf("missing = %+v, want single entry per command", missing)
	}
}

func TestCheckAllPresent(t *testing.T) {
	m := &stack.Manifest{McpServers: []stack.McpServer{
		{Name: "fs", Type: stack.ServerTypeStdio, Command: "npx"},
	}}

	if missing := stubChecker("npx").Check(m); missing != nil {
		t.Errorf("missing = %+v, want nil", missing)
	}
}
