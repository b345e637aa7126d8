package restore

import (
	"fmt"

	"github.com/Commands-com/claude-stacks/internal/fsio"
	"github.com/Commands-com/claude-stacks/internal/logging"
	"github.com/Commands-com/claude-stacks/internal/paths"
	"github.com/Commands-com/claude-stacks/internal/stack"
)

// Orchestrator sequences the restore phases. Phases run strictly in order
// and a phase failure aborts everything after it; per-item failures inside
// one phase are tolerated until that phase completes, then fail the phase.
type Orchestrator struct {
	fs      fsio.FileSystem
	out     Presenter
	log     *logging.Logger
	checker DependencyChecker
	layout  paths.Layout

	loader   *stack.Loader
	writer   *FileWriter
	registry *RegistryMerger
	settings *SettingsMerger
	claudeMd *ClaudeMdWriter
}

// summary accumulates per-category counts for the final report.
type summary struct {
	commands WriteResult
	agents   WriteResult
	servers  MergeResult
	settings bool
	docs     int
}

// NewOrchestrator wires the engine's components against one layout.
func NewOrchestrator(fs fsio.FileSystem, out Presenter, log *logging.Logger, checker DependencyChecker, layout paths.Layout) *Orchestrator {
	return &Orchestrator{
		fs:      fs,
		out:     out,
		log:     log.Component("restore"),
		checker: checker,
		layout:  layout,

		loader:   stack.NewLoader(fs, layout.StacksDir),
		writer:   NewFileWriter(fs, out),
		registry: NewRegistryMerger(fs, out, layout.RegistryFile),
		settings: NewSettingsMerger(fs, out),
		claudeMd: NewClaudeMdWriter(fs, out),
	}
}

// PerformRestore resolves, loads and applies a stack reference.
func (o *Orchestrator) PerformRestore(ref string, opts Options) error {
	path, err := o.loader.Resolve(ref)
	if err != nil {
		return err
	}

	manifest, err := o.loader.Load(path)
	if err != nil {
		return err
	}

	o.log.Debug().Str("stack", manifest.Name).Str("path", path).
		Bool("overwrite", opts.Overwrite).Msg("starting restore")
	o.out.Info("Restoring stack: %s", manifest.Name)

	// Advisory only: report missing tools, never block the restore.
	for _, d := range o.checker.Check(manifest) {
		o.out.Warning("MCP server %q needs %q, which was not found on PATH", d.Server, d.Command)
	}

	var sum summary

	cmds := stack.Classify(manifest.Commands)
	sum.commands, err = o.restoreCategory(commandItems(cmds.Global), commandItems(cmds.Local), o.layout.GlobalCommandsDir, o.layout.LocalCommandsDir, opts)
	if err != nil {
		return fmt.Errorf("restoring commands: %w", err)
	}

	agents := stack.Classify(manifest.Agents)
	sum.agents, err = o.restoreCategory(agentItems(agents.Global), agentItems(agents.Local), o.layout.GlobalAgentsDir, o.layout.LocalAgentsDir, opts)
	if err != nil {
		return fmt.Errorf("restoring agents: %w", err)
	}

	if len(manifest.McpServers) > 0 {
		sum.servers, err = o.registry.Merge(manifest.McpServers, o.layout.ProjectPath, opts.Overwrite)
		if err != nil {
			return fmt.Errorf("restoring MCP servers: %w", err)
		}
	}

	if len(manifest.Settings) > 0 {
		target := o.layout.LocalSettingsFile
		if opts.GlobalOnly {
			target = o.layout.GlobalSettingsFile
		}
		if err := o.settings.Apply(manifest.Settings, target, opts.Overwrite); err != nil {
			return fmt.Errorf("restoring settings: %w", err)
		}
		sum.settings = true
	}

	if manifest.ClaudeMd != nil {
		if !opts.LocalOnly {
			skipped, err := o.claudeMd.Apply(manifest.ClaudeMd.Global, o.layout.GlobalClaudeMdFile, opts.Overwrite)
			if err != nil {
				return fmt.Errorf("restoring global CLAUDE.md: %w", err)
			}
			if manifest.ClaudeMd.Global != nil && !skipped {
				sum.docs++
			}
		}
		if !opts.GlobalOnly {
			skipped, err := o.claudeMd.Apply(manifest.ClaudeMd.Local, o.layout.LocalClaudeMdFile, opts.Overwrite)
			if err != nil {
				return fmt.Errorf("restoring local CLAUDE.md: %w", err)
			}
			if manifest.ClaudeMd.Local != nil && !skipped {
				sum.docs++
			}
		}
	}

	o.summarize(manifest.Name, sum)
	return nil
}

// restoreCategory runs the global and local sub-writes for one component
// category. Each sub-write is independent and is skipped entirely when its
// scope is excluded by the options.
func (o *Orchestrator) restoreCategory(global, local []FileItem, globalDir, localDir string, opts Options) (WriteResult, error) {
	var total WriteResult
	if !opts.LocalOnly {
		res, err := o.writer.Write(global, globalDir, opts.Overwrite)
		total.Written += res.Written
		total.Skipped += res.Skipped
		if err != nil {
			return total, err
		}
	}
	if !opts.GlobalOnly {
		res, err := o.writer.Write(local, localDir, opts.Overwrite)
		total.Written += res.Written
		total.Skipped += res.Skipped
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func commandItems(cmds []stack.Command) []FileItem {
	items := make([]FileItem, 0, len(cmds))
	for _, c := range cmds {
		items = append(items, FileItem{Name: c.Name, Content: c.Content})
	}
	return items
}

func agentItems(agents []stack.Agent) []FileItem {
	items := make([]FileItem, 0, len(agents))
	for _, a := range agents {
		items = append(items, FileItem{Name: a.Name, Content: a.Content})
	}
	return items
}

// summarize reports per-category counts. It runs only after every phase
// succeeded.
func (o *Orchestrator) summarize(name string, sum summary) {
	o.out.Success("Restored stack %q", name)
	o.out.Info("  commands: %d written, %d skipped", sum.commands.Written, sum.commands.Skipped)
	o.out.Info("  agents:   %d written, %d skipped", sum.agents.Written, sum.agents.Skipped)
	o.out.Info("  servers:  %d added, %d skipped", sum.servers.Added, sum.servers.Skipped)
	if sum.settings {
		o.out.Info("  settings: applied")
	}
	if sum.docs > 0 {
		o.out.Info("  docs:     %d written", sum.docs)
	}
}
