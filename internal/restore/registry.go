package restore

import (
	"encoding/json"
	"fmt"

	"github.com/Commands-com/claude-stacks/internal/fsio"
	"github.com/Commands-com/claude-stacks/internal/stack"
)

// RegistryMerger performs the read-modify-write merge of MCP server entries
// into the shared multi-project registry document. The document is shared
// with other tools and other projects, so every mutation must leave sibling
// project entries and all non-mcpServers fields of the touched entry
// untouched, and every write is all-or-nothing via an atomic rename.
//
// The engine provides no cross-process mutual exclusion: two concurrent
// invocations race at the rename and the last writer wins. That is a known
// limitation of the document's design, kept as is.
type RegistryMerger struct {
	fs   fsio.FileSystem
	out  Presenter
	path string
}

// MergeResult reports what a merge did.
type MergeResult struct {
	Added   int
	Skipped int
}

// serverConfig is the registry-side shape of one MCP server entry.
type serverConfig struct {
	Type    string            `json:"type"`
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	URL     string            `json:"url,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// NewRegistryMerger creates a merger for the registry document at path.
func NewRegistryMerger(fs fsio.FileSystem, out Presenter, path string) *RegistryMerger {
	return &RegistryMerger{fs: fs, out: out, path: path}
}

// Merge applies servers to the registry entry keyed by projectPath. With
// overwrite, the project's server map is replaced wholesale, dropping stale
// keys from earlier runs; otherwise new entries are inserted and same-named
// existing entries are skipped with a warning.
func (m *RegistryMerger) Merge(servers []stack.McpServer, projectPath string, overwrite bool) (MergeResult, error) {
	var res MergeResult

	doc := m.readDocument()

	// Unrelated fields of an existing project entry pass through as raw
	// bytes; only the mcpServers key is ever replaced.
	projects := rawObject(doc["projects"])
	entry := rawObject(projects[projectPath])
	if len(entry) == 0 {
		// Fresh entry: seed the minimal shape other consumers expect.
		entry["allowedTools"] = json.RawMessage(`[]`)
	}

	serverMap := make(map[string]json.RawMessage)
	if !overwrite {
		serverMap = rawObject(entry["mcpServers"])
	}

	for _, srv := range servers {
		if _, exists := serverMap[srv.Name]; exists && !overwrite {
			m.out.Warning("MCP server %q already configured for this project, skipping", srv.Name)
			res.Skipped++
			continue
		}

		raw, err := json.Marshal(serverConfig{
			Type:    srv.Type,
			Command: srv.Command,
			Args:    srv.Args,
			URL:     srv.URL,
			Env:     srv.Env,
		})
		if err != nil {
			return res, fmt.Errorf("encoding MCP server %q: %w", srv.Name, err)
		}
		serverMap[srv.Name] = raw
		res.Added++
	}

	var err error
	if entry["mcpServers"], err = json.Marshal(serverMap); err != nil {
		return res, fmt.Errorf("encoding server map: %w", err)
	}
	if projects[projectPath], err = json.Marshal(entry); err != nil {
		return res, fmt.Errorf("encoding project entry: %w", err)
	}
	if doc["projects"], err = json.Marshal(projects); err != nil {
		return res, fmt.Errorf("encoding projects: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return res, fmt.Errorf("encoding registry document: %w", err)
	}

	if err := m.fs.WriteTextAtomic(m.path, string(data)+"\n"); err != nil {
		return res, fmt.Errorf("saving registry: %w", err)
	}
	return res, nil
}

// readDocument loads the registry document. A missing file starts fresh; an
// unparsable one is downgraded to a warning and also starts fresh. A corrupt
// shared document must never make a restore fatal.
func (m *RegistryMerger) readDocument() map[string]json.RawMessage {
	doc := make(map[string]json.RawMessage)
	if !m.fs.Exists(m.path) {
		return doc
	}

	text, err := m.fs.ReadText(m.path)
	if err != nil {
		m.out.Warning("Could not read registry at %s (%v), starting fresh", m.path, err)
		return doc
	}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		m.out.Warning("Registry at %s is not valid JSON (%v), starting fresh", m.path, err)
		return make(map[string]json.RawMessage)
	}
	return doc
}

// rawObject decodes a JSON object value into a raw-message map. Absent or
// non-object values yield an empty map.
func rawObject(raw json.RawMessage) map[string]json.RawMessage {
	obj := make(map[string]json.RawMessage)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &obj); err != nil {
			return make(map[string]json.RawMessage)
		}
	}
	return obj
}
