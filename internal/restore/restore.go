// Package restore is the stack restoration merge engine. It applies a
// previously exported stack manifest onto the global and local configuration
// scopes and merges MCP server entries into the shared multi-project
// registry document.
package restore

import (
	"github.com/Commands-com/claude-stacks/internal/deps"
	"github.com/Commands-com/claude-stacks/internal/stack"
)

// Presenter is the one-way notification sink the engine reports through.
// Implementations never affect control flow. internal/ui.Output satisfies it.
type Presenter interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
}

// DependencyChecker is the advisory dependency-existence collaborator.
// internal/deps.Checker satisfies it.
type DependencyChecker interface {
	Check(m *stack.Manifest) []deps.Missing
}

// Options controls one restore operation. Neither scope flag set means both
// scopes are processed.
type Options struct {
	Overwrite  bool
	GlobalOnly bool
	LocalOnly  bool
}
