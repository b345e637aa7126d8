package cli

import (
	"github.com/spf13/cobra"

	"github.com/Commands-com/claude-stacks/internal/restore"
)

func (a *App) newRestoreCmd() *cobra.Command {
	var opts restore.Options

	cmd := &cobra.Command{
		Use:   "restore <stack>",
		Short: "Restore a stack from a local stack file",
		Long:  "Applies an exported stack file onto the global ~/.claude tree and the project's .claude tree. A bare name resolves against the stacks directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRestore(args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "overwrite existing files and MCP server entries")
	cmd.Flags().BoolVar(&opts.GlobalOnly, "global-only", false, "restore only global components")
	cmd.Flags().BoolVar(&opts.LocalOnly, "local-only", false, "restore only project-local components")
	return cmd
}

func (a *App) runRestore(ref string, opts restore.Options) error {
	if opts.GlobalOnly && opts.LocalOnly {
		return &ExitError{Code: exitUsage, Message: "--global-only and --local-only are mutually exclusive"}
	}

	orch, err := a.newOrchestrator()
	if err != nil {
		return err
	}

	if err := orch.PerformRestore(ref, opts); err != nil {
		return &ExitError{Code: exitRestore, Message: err.Error()}
	}
	return nil
}
