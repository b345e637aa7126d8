// Package deps checks whether the external programs a stack's MCP servers
// launch are actually installed. The check is advisory: the restore flow
// reports missing dependencies and continues.
package deps

import (
	"os/exec"

	"github.com/Commands-com/claude-stacks/internal/stack"
)

// Missing identifies a stdio server whose launch command is not on PATH.
type Missing struct {
	Server  string
	Command string
}

// Checker looks up MCP server commands in PATH.
type Checker struct {
	lookPath func(file string) (string, error)
}

// NewChecker creates a checker backed by exec.LookPath.
func NewChecker() *Checker {
	return &Checker{lookPath: exec.LookPath}
}

// Check returns the manifest's stdio servers whose commands cannot be found.
func (c *Checker) Check(m *stack.Manifest) []Missing {
	var missing []Missing
	seen := make(map[string]bool)

	for _, srv := range m.McpServers {
		if srv.Type != stack.ServerTypeStdio || srv.Command == "" {
			continue
		}
		if seen[srv.Command] {
			continue
		}
		seen[srv.Command] = true

		if _, err := c.lookPath(srv.Command); err != nil {
			missing = append(missing, Missing{Server: srv.Name, Command: srv.Command})
		}
	}
	return missing
}
