package stack

import "strings"

// localScopePrefix is the export-time origin prefix marking a component as
// belonging to the project-local .claude tree. This is a string contract
// authored on export and trusted verbatim here; keeping it behind Classify
// lets a future typed scope tag replace it without touching callers.
const localScopePrefix = "./.claude"

// Scoped is any component carrying an export-time origin path.
type Scoped interface {
	Origin() string
}

// Origin returns the command's export-time origin path.
func (c Command) Origin() string { return c.FilePath }

// Origin returns the agent's export-time origin path.
func (a Agent) Origin() string { return a.FilePath }

// Partition is the result of splitting components by scope.
type Partition[T Scoped] struct {
	Global []T
	Local  []T
}

// Classify splits components into global and local subsets. A component is
// local iff its origin path starts with the local-scope prefix.
func Classify[T Scoped](items []T) Partition[T] {
	var p Partition[T]
	for _, item := range items {
		if strings.HasPrefix(item.Origin(), localScopePrefix) {
			p.Local = append(p.Local, item)
		} else {
			p.Global = append(p.Global, item)
		}
	}
	return p
}
