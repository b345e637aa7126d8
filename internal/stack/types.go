// Package stack defines the exported stack manifest format and the scope
// classification of its components.
package stack

import "encoding/json"

// MCP server transport types.
const (
	ServerTypeStdio = "stdio"
	ServerTypeHTTP  = "http"
	ServerTypeSSE   = "sse"
)

// Manifest is the exported bundle of developer-tool configuration. It is a
// read-only input to the restore engine; nothing in it is ever mutated.
type Manifest struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Version     string                     `json:"version,omitempty"`
	Commands    []Command                  `json:"commands"`
	Agents      []Agent                    `json:"agents"`
	McpServers  []McpServer                `json:"mcpServers"`
	Settings    map[string]json.RawMessage `json:"settings,omitempty"`
	ClaudeMd    *ClaudeMdSet               `json:"claudeMd,omitempty"`
	Metadata    map[string]any             `json:"metadata,omitempty"`
}

// Command is a slash command. FilePath is the export-time origin marker used
// only for scope classification; Content is persisted verbatim.
type Command struct {
	Name        string `json:"name"`
	FilePath    string `json:"filePath"`
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
}

// Agent is an agent definition with the same shape as Command.
type Agent struct {
	Name        string `json:"name"`
	FilePath    string `json:"filePath"`
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
}

// McpServer describes an external tool-integration process. Name is unique
// within one project's registry entry; uniqueness is enforced at merge time.
type McpServer struct {
	Name    string            `json:"name"`
	Type    string            `json:"type"`
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	URL     string            `json:"url,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// ClaudeMdSet holds the optional documentation files, one per scope.
type ClaudeMdSet struct {
	Global *ClaudeMdDoc `json:"global,omitempty"`
	Local  *ClaudeMdDoc `json:"local,omitempty"`
}

// ClaudeMdDoc is a single documentation file. Path is the export-time origin;
// the engine writes Content at the scope's fixed target path.
type ClaudeMdDoc struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}
