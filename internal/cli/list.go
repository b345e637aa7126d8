package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Commands-com/claude-stacks/internal/fsio"
	"github.com/Commands-com/claude-stacks/internal/paths"
	"github.com/Commands-com/claude-stacks/internal/stack"
)

func (a *App) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stacks in the local stacks directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList()
		},
	}
}

func (a *App) runList() error {
	stacksDir := paths.StacksDir()
	entries, err := os.ReadDir(stacksDir)
	if err != nil {
		if os.IsNotExist(err) {
			a.output.Info("No stacks found in %s", stacksDir)
			return nil
		}
		return fmt.Errorf("reading stacks directory: %w", err)
	}

	loader := stack.NewLoader(fsio.NewOS(), stacksDir)

	var rows [][]string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		m, err := loader.Load(filepath.Join(stacksDir, entry.Name()))
		if err != nil {
			a.output.Warning("Skipping %s: %v", entry.Name(), err)
			continue
		}

		version := m.Version
		if version == "" {
			version = "-"
		}
		rows = append(rows, []string{
			strings.TrimSuffix(entry.Name(), ".json"),
			version,
			fmt.Sprintf("%d", len(m.Commands)),
			fmt.Sprintf("%d", len(m.Agents)),
			fmt.Sprintf("%d", len(m.McpServers)),
			m.Description,
		})
	}

	if len(rows) == 0 {
		a.output.Info("No stacks found in %s", stacksDir)
		return nil
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	a.output.Table([]string{"NAME", "VERSION", "COMMANDS", "AGENTS", "MCP", "DESCRIPTION"}, rows)
	return nil
}
